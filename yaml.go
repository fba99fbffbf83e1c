package legendfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, ms []Measurement) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(ms); err != nil {
		return err
	}
	return enc.Close()
}
