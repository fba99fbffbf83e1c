package legendfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRounding is the decimal precision applied to value and error
// cells when the caller has no preference.
const DefaultRounding = 3

// Columns holds the five parallel columns of a legend block. A nil or
// empty column renders as zero-width blanks on every row; non-empty
// columns must all share one length.
type Columns struct {
	Names   []Cell
	Symbols []Cell
	Values  []Cell
	Errors  []Cell
	Units   []Cell
}

// Column positions, in render order.
const (
	colNames = iota
	colSymbols
	colValues
	colErrors
	colUnits
	colCount
)

var colLabels = [colCount]string{"names", "symbols", "values", "errors", "units"}

// numericCol reports whether the column holds numbers rather than text.
func numericCol(col int) bool { return col == colValues || col == colErrors }

// Align renders the columns as one aligned line per row:
//
//	Altitude: [Alt] =  0.988 ±   0.001  cm
//	Height  : [H]   =  0.326 ±   0.001   m
//	Width   : [Wid] = 52.322 ±  12.001  km
//
// Names are left-justified, symbols are wrapped in brackets and
// left-justified, values, errors, and units are right-justified.
// Numeric cells are rounded half-to-even to rounding decimal places
// before measuring. Column widths account for $-delimited TeX markup
// via [Width], so math-labeled rows line up once rendered.
//
// Align is pure: identical inputs produce byte-identical output, and
// concurrent calls need no coordination.
func Align(c Columns, rounding int) (string, error) {
	cols := [colCount][]Cell{c.Names, c.Symbols, c.Values, c.Errors, c.Units}

	rowCount, err := validate(cols)
	if err != nil {
		return "", err
	}

	// Stage one: raw cell text and per-column maximum rendered width.
	text := [colCount][]string{}
	widths := [colCount]int{}
	for col, cells := range cols {
		text[col] = make([]string, rowCount)
		for r, cell := range cells {
			text[col][r] = cellText(cell, rounding)
			if w := Width(text[col][r]); w > widths[col] {
				widths[col] = w
			}
		}
	}

	// Stage two: pad every cell to its column width.
	padded := [colCount][]string{}
	for col := range cols {
		padded[col] = make([]string, rowCount)
		for r := range padded[col] {
			padded[col][r] = padCell(col, text[col][r], widths[col])
		}
	}

	rows := make([]string, rowCount)
	for r := range rows {
		var b strings.Builder
		if name := padded[colNames][r]; strings.Trim(name, " ") == "" {
			b.WriteString(name + "  ")
		} else {
			b.WriteString(name + ": ")
		}
		b.WriteString(padded[colSymbols][r] + " =")
		b.WriteString(" " + padded[colValues][r] + " ± ")
		b.WriteString(" " + padded[colErrors][r] + " ")
		b.WriteString(" " + padded[colUnits][r])
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n"), nil
}

// validate checks cell kinds against their column and returns the shared
// row count. Non-empty columns of unequal length are rejected rather
// than padded or truncated.
func validate(cols [colCount][]Cell) (int, error) {
	rowCount := 0
	for col, cells := range cols {
		if len(cells) == 0 {
			continue
		}
		if rowCount == 0 {
			rowCount = len(cells)
		} else if len(cells) != rowCount {
			return 0, fmt.Errorf("%w: column %q has %d rows, want %d", ErrColumnLength, colLabels[col], len(cells), rowCount)
		}
		for _, cell := range cells {
			switch {
			case cell.kind == kindNumber && !numericCol(col):
				return 0, fmt.Errorf("%w: column %q holds text, got a number", ErrColumnType, colLabels[col])
			case cell.kind == kindText && numericCol(col):
				return 0, fmt.Errorf("%w: column %q holds numbers, got text %q", ErrColumnType, colLabels[col], cell.text)
			}
		}
	}
	return rowCount, nil
}

// cellText renders a cell's unpadded content. Blank cells render empty;
// out-of-range rows of an absent column fall through to "" as well.
func cellText(c Cell, rounding int) string {
	switch c.kind {
	case kindText:
		return c.text
	case kindNumber:
		return formatNumber(c.num, rounding)
	default:
		return ""
	}
}

func padCell(col int, s string, width int) string {
	if col == colSymbols {
		if s == "" {
			return spaces(width + 2)
		}
		return "[" + s + "]" + spaces(width-Width(s))
	}
	if s == "" {
		return spaces(width)
	}
	if col == colNames {
		return s + spaces(width-Width(s))
	}
	return spaces(width-Width(s)) + s
}

func spaces(n int) string { return strings.Repeat(" ", n) }

// formatNumber rounds half-to-even to rounding decimal places and
// drops trailing zeros, so 52.0 prints as 52 and 0.5 as 0.5.
// Rounding happens in decimal against the exact stored value: scaling
// by a power of ten first would manufacture ties out of representation
// error (2.675 is stored below the midpoint and must print as 2.67).
func formatNumber(v float64, rounding int) string {
	if rounding < 0 {
		rounding = 0
	}
	s := strconv.FormatFloat(v, 'f', rounding, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
