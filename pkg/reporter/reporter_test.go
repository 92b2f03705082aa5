package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdspan/pkg/reporter"
	"github.com/yaklabco/mdspan/pkg/runner"
	"github.com/yaklabco/mdspan/pkg/style"
)

func sheet(t *testing.T) *style.StyleSheet {
	t.Helper()

	s, err := style.Configure(style.DefaultOptions())
	require.NoError(t, err)
	return s
}

func result(t *testing.T, files map[string]string, order ...string) *runner.Result {
	t.Helper()

	res := &runner.Result{}
	for _, name := range order {
		outcome := runner.RenderSource(name, []byte(files[name]), sheet(t))
		res.Files = append(res.Files, outcome)
		res.Stats.FilesDiscovered++
		res.Stats.FilesRendered++
		res.Stats.Ranges += len(outcome.Buffer.Ranges())
		res.Stats.Links += len(outcome.Buffer.Links())
	}
	return res
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "ranges", input: "ranges", want: reporter.FormatRanges},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "reference", input: "reference", want: reporter.FormatReference},
		{name: "unknown format", input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, format := range []reporter.Format{"", reporter.FormatText, reporter.FormatRanges, reporter.FormatJSON, reporter.FormatReference} {
		rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: format})
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, rep)
	}

	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "xml"})
	require.Error(t, err)
}

func TestTextReporter_SingleFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &out, Color: "never", Width: -1})

	n, err := rep.Report(context.Background(), result(t, map[string]string{"a.md": "# Title\n\n- one\n- two"}, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Title\n• one\n• two\n", out.String())
}

func TestTextReporter_MultipleFilesAndErrors(t *testing.T) {
	t.Parallel()

	res := result(t, map[string]string{"a.md": "alpha", "b.md": "beta"}, "a.md", "b.md")
	res.Files = append(res.Files, runner.FileOutcome{Path: "c.md", Error: errors.New("boom")})

	var out, errOut bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &out,
		ErrorWriter: &errOut,
		Color:       "never",
		Width:       -1,
		ShowSummary: true,
	})

	n, err := rep.Report(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "a.md (5 chars)\nalpha\n\nb.md (4 chars)\nbeta\nc.md: error: boom\n", out.String())
	assert.Contains(t, errOut.String(), "2 files rendered")
}

func TestRangesReporter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	rep := reporter.NewRangesReporter(reporter.Options{Writer: &out, Color: "never"})

	_, err := rep.Report(context.Background(), result(t, map[string]string{"a.md": "[x](http://x)"}, "a.md"))
	require.NoError(t, err)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "a.md (1 char)\n"), got)
	assert.Contains(t, got, "document")
	assert.Contains(t, got, "link")
	assert.Contains(t, got, "http://x")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &out})

	res := result(t, map[string]string{"a.md": "see [docs](https://example.com)\n\n```go\nx := 1\n```"}, "a.md")
	n, err := rep.Report(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, reporter.SchemaVersion, decoded.Version)
	require.Len(t, decoded.Files, 1)
	file := decoded.Files[0]
	assert.Equal(t, "see docs\nx := 1", file.Text)
	assert.Equal(t, []reporter.JSONLink{{Kind: "link", URI: "https://example.com", Start: 4, End: 8}}, file.Links)

	var code *reporter.JSONRange
	for i := range file.Ranges {
		if file.Ranges[i].Kind == "code_block" {
			code = &file.Ranges[i]
		}
	}
	require.NotNil(t, code)
	assert.Equal(t, "go", code.Language)
	assert.Equal(t, "monospace", code.Attributes.Typeface)
	assert.Equal(t, "#888888", code.Attributes.Foreground)

	assert.Equal(t, 1, decoded.Summary.FilesRendered)
	assert.Equal(t, 1, decoded.Summary.Links)
	assert.Equal(t, len(file.Ranges), decoded.Summary.Ranges)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &out, Compact: true})

	_, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, `{"version":"1.0.0","files":[],"summary":{"filesRendered":0,"filesErrored":0,"runes":0,"ranges":0,"links":0}}`+"\n", out.String())
}

func TestExportFile_Error(t *testing.T) {
	t.Parallel()

	file := reporter.ExportFile(runner.FileOutcome{Path: "x.md", Error: errors.New("unreadable")})
	assert.Equal(t, "unreadable", file.Error)
	assert.Empty(t, file.Ranges)
	assert.NotNil(t, file.Ranges)
}

func TestReferenceReporter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	rep := reporter.NewReferenceReporter(reporter.Options{Writer: &out, Color: "never", Width: 60})

	n, err := rep.Report(context.Background(), result(t, map[string]string{"a.md": "# Title\n\nSome **bold** text."}, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), "a.md")
	assert.Contains(t, out.String(), "Title")
	assert.Contains(t, out.String(), "bold")
}
