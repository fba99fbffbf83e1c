package legendfmt

// Measurement is one labeled value with its uncertainty. Name and
// Symbol may embed $-delimited TeX markup. A nil Value or Err renders
// as a blank cell; empty strings are blank labels.
type Measurement struct {
	Name   string   `json:"name" yaml:"name"`
	Symbol string   `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Value  *float64 `json:"value" yaml:"value"`
	Err    *float64 `json:"error,omitempty" yaml:"error,omitempty"`
	Unit   string   `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Float builds an optional numeric field in place.
func Float(v float64) *float64 { return &v }

// Header returns the column titles used by CSV, Table, and Markdown output.
func Header() []string { return []string{"Name", "Symbol", "Value", "Error", "Unit"} }

// Row renders the measurement as raw, unaligned cells. Nil numbers
// render empty.
func (m Measurement) Row(rounding int) []string {
	row := []string{m.Name, m.Symbol, "", "", m.Unit}
	if m.Value != nil {
		row[2] = formatNumber(*m.Value, rounding)
	}
	if m.Err != nil {
		row[3] = formatNumber(*m.Err, rounding)
	}
	return row
}

// ColumnsOf splits the measurements into the five parallel legend columns.
func ColumnsOf(ms []Measurement) Columns {
	c := Columns{
		Names:   make([]Cell, len(ms)),
		Symbols: make([]Cell, len(ms)),
		Values:  make([]Cell, len(ms)),
		Errors:  make([]Cell, len(ms)),
		Units:   make([]Cell, len(ms)),
	}
	for i, m := range ms {
		c.Names[i] = Text(m.Name)
		c.Symbols[i] = Text(m.Symbol)
		c.Units[i] = Text(m.Unit)
		if m.Value != nil {
			c.Values[i] = Number(*m.Value)
		}
		if m.Err != nil {
			c.Errors[i] = Number(*m.Err)
		}
	}
	return c
}

// Render formats the measurements as an aligned legend block, one line
// per measurement.
func Render(ms []Measurement, rounding int) (string, error) {
	return Align(ColumnsOf(ms), rounding)
}
