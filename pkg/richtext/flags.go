package richtext

// Flags control how a span's endpoints move when text is inserted exactly
// at them. The first word refers to the start point, the second to the end.
type Flags uint8

// Span flags.
const (
	// ExclusiveExclusive spans do not grow at either end and are removed
	// when a deletion leaves them empty.
	ExclusiveExclusive Flags = iota
	InclusiveExclusive
	ExclusiveInclusive
	InclusiveInclusive
)

var flagNames = [...]string{
	ExclusiveExclusive: "exclusive-exclusive",
	InclusiveExclusive: "inclusive-exclusive",
	ExclusiveInclusive: "exclusive-inclusive",
	InclusiveInclusive: "inclusive-inclusive",
}

func (f Flags) String() string {
	if int(f) < len(flagNames) {
		return flagNames[f]
	}
	return "invalid"
}

func (f Flags) startInclusive() bool {
	return f == InclusiveExclusive || f == InclusiveInclusive
}

func (f Flags) endInclusive() bool {
	return f == ExclusiveInclusive || f == InclusiveInclusive
}
