package legendfmt

type cellKind int

const (
	kindBlank cellKind = iota
	kindText
	kindNumber
)

// Cell is one entry of a legend column: a text label, a numeric value,
// or blank. The zero value is blank. A blank cell still occupies its
// column's reserved width when rendered.
type Cell struct {
	kind cellKind
	text string
	num  float64
}

// Blank is the empty cell.
var Blank = Cell{}

// Text returns a text cell. Empty strings render as blank.
func Text(s string) Cell { return Cell{kind: kindText, text: s} }

// Number returns a numeric cell. Zero is a real value, not a blank.
func Number(v float64) Cell { return Cell{kind: kindNumber, num: v} }

// IsBlank reports whether the cell renders as a run of spaces.
func (c Cell) IsBlank() bool {
	return c.kind == kindBlank || (c.kind == kindText && c.text == "")
}
