package chart

// Type identifies the chart kind an assembly pass emits. The assembler
// dispatches on it, so a further kind adds a case to that switch rather than
// a second traversal.
type Type string

const (
	// TypeBarClustered is a 2-D clustered bar chart with one category
	// axis and one value axis. It is the only kind supported so far.
	TypeBarClustered Type = "barClustered"
)

// String returns the schema name of the chart kind.
func (t Type) String() string {
	return string(t)
}
