// Package legendfmt renders labeled numeric measurements as aligned
// monospaced text blocks, the kind that end up in plot legends and
// fit-report annotations.
//
// A measurement is a name, a short symbol, a value, an uncertainty, and
// a unit. [Render] lays a set of them out as one line per measurement
// with every column starting at the same visual offset:
//
//	Altitude: [Alt] =  0.988 ±   0.001  cm
//	Height  : [H]   =  0.326 ±   0.001   m
//	Width   : [Wid] = 52.322 ±  12.001  km
//
// # TeX-aware widths
//
// Names and symbols may embed $-delimited inline TeX math, which
// renders far narrower than its raw character count ($\chi^{2}$ is ten
// characters but displays as two glyphs). [Width] estimates the
// rendered glyph count — braces and the $ toggles vanish, ^ and _ take
// no width, each \command collapses to one symbol — and every column
// width in this package is computed from it, so math-labeled rows line
// up once the consumer renders them in a monospaced or width-faithful
// font.
//
// # Column input
//
// [Align] is the core: five parallel [Cell] columns, each cell a text
// label, a number, or [Blank]. Columns are typed at the boundary —
// a number in a text column fails with [ErrColumnType], non-empty
// columns of unequal length with [ErrColumnLength]. Nil columns render
// as zero-width blanks. Values and errors are rounded half-to-even to a
// caller-chosen number of decimal places (default [DefaultRounding]).
//
// # Formats
//
// [Write] and [Marshal] render a []Measurement in any [Format]:
//
//   - [Legend] — the aligned block above
//   - [Table] — bordered table, border styles via [BorderStyle]
//   - [JSON], [YAML] — the record set itself
//   - [CSV] — header row plus one record per measurement
//   - [Markdown] — GitHub-flavored table
//
// Use [ParseFormat] to convert a CLI flag string into a [Format].
//
// # Metrics labels
//
// [MetricLabels] is a thin convenience for goodness-of-fit legends: the
// caller supplies already-computed R², χ², and RMSE values and gets one
// aligned label block per sample. No statistics are computed here.
//
// All functions are pure and safe for concurrent use; nothing in the
// package touches files, the network, or the environment.
package legendfmt
