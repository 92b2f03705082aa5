package logging

// Structured field keys.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldPaths  = "paths"
	FieldFiles  = "files"
	FieldOutput = "output"
	FieldFormat = "format"
	FieldJobs   = "jobs"

	// Configuration.
	FieldConfig   = "config"
	FieldSource   = "source"
	FieldVariable = "variable"

	// Render statistics.
	FieldRunes    = "runes"
	FieldRanges   = "ranges"
	FieldLinks    = "links"
	FieldDuration = "duration"
	FieldFailed   = "failed"

	// Version.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
