// Command legendfmt reads a measurement set from a YAML or JSON file
// (or stdin) and renders it in any format the legendfmt package
// supports.
//
//	legendfmt measurements.yaml
//	legendfmt -f table -b ascii measurements.json
//	cat measurements.yaml | legendfmt -f csv -r 2
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/legendfmt"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		formatName string
		borderName string
		rounding   int
	)
	cmd := &cobra.Command{
		Use:   "legendfmt [file]",
		Short: "Render labeled measurements as aligned legend text",
		Long: "legendfmt reads a list of measurements (name, symbol, value, error,\n" +
			"unit) from a YAML or JSON file, or stdin when no file is given, and\n" +
			"renders it as an aligned legend block, a table, or a data format.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			// YAML is a superset of JSON, so one decoder covers both.
			var ms []legendfmt.Measurement
			if err := yaml.Unmarshal(data, &ms); err != nil {
				return fmt.Errorf("parse input: %w", err)
			}
			f, err := legendfmt.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if f == legendfmt.Table {
				border, err := legendfmt.ParseBorder(borderName)
				if err != nil {
					return err
				}
				return legendfmt.WriteTable(cmd.OutOrStdout(), ms, rounding, border)
			}
			return legendfmt.Write(cmd.OutOrStdout(), f, ms, rounding)
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", legendfmt.Legend.String(), "output format: "+formatNames())
	cmd.Flags().StringVarP(&borderName, "border", "b", "rounded", "table border: rounded, ascii, heavy, double, none")
	cmd.Flags().IntVarP(&rounding, "rounding", "r", legendfmt.DefaultRounding, "decimal places for values and errors")
	return cmd
}

func formatNames() string {
	fs := legendfmt.Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}
