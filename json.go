package legendfmt

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, ms []Measurement) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(ms)
}
