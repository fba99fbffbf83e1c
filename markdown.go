package legendfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown renders a GitHub-flavored Markdown table. Widths use
// raw display columns, not TeX-aware widths: the markup stays visible
// in Markdown source, so the source cells are what need to line up.
func writeMarkdown(w io.Writer, ms []Measurement, rounding int) error {
	if len(ms) == 0 {
		return nil
	}
	header := Header()
	rows := make([][]string, len(ms))
	for i, m := range ms {
		rows[i] = m.Row(rounding)
	}

	// Minimum 3 for the alignment markers.
	widths := make([]int, len(header))
	for i, col := range header {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	aligns := columnAligns()
	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		pad := width - runewidth.StringWidth(cells[i])
		switch aligns[i] {
		case AlignRight:
			padded[i] = strings.Repeat(" ", pad) + cells[i]
		default:
			padded[i] = cells[i] + strings.Repeat(" ", pad)
		}
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
