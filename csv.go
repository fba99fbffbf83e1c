package legendfmt

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, ms []Measurement, rounding int) error {
	if len(ms) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for _, m := range ms {
		if err := cw.Write(m.Row(rounding)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
