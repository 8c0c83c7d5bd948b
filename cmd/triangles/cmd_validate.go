package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"triangles/internal/triangle"
)

// validateCmd parses and validates an input file without writing anything
var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Parse and validate an incremental triangle file",
	Long: `Reads the input file, runs all structural checks (required columns,
numeric types, triangle shape) and reports what was found. No output file
is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	input := args[0]
	logger.Debug("validating", zap.String("input", input))

	reader, err := triangle.NewReader(input)
	if err != nil {
		return err
	}
	ds, err := reader.Read()
	if err != nil {
		if pe, ok := triangle.AsParseError(err); ok {
			return fmt.Errorf("%s: %w", input, pe)
		}
		return err
	}
	if _, err := triangle.NewAccumulator(ds); err != nil {
		return err
	}

	fmt.Printf("%s: OK\n", input)
	fmt.Printf("  records:           %d\n", ds.Len())
	fmt.Printf("  products:          %d\n", len(ds.Products))
	fmt.Printf("  origin years:      %d-%d\n", ds.MinOriginYear, ds.MaxOriginYear)
	fmt.Printf("  development years: %d\n", ds.MaxOriginYear-ds.MinOriginYear+1)
	return nil
}
