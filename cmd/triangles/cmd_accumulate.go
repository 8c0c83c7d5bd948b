package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"triangles/internal/triangle"
)

// accumulateCmd runs the full read/accumulate/write pipeline
var accumulateCmd = &cobra.Command{
	Use:   "accumulate <input> <output>",
	Short: "Accumulate an incremental triangle file into a cumulative one",
	Long: `Reads incremental triangle data from the input file, computes the
running sums across development years for every product and writes the
cumulative triangle to the output file.

Example:
  triangles accumulate claims.txt accumulated.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runAccumulate,
}

func runAccumulate(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	logger.Debug("accumulating", zap.String("input", input), zap.String("output", output))

	return triangle.Run(input, output, triangle.Options{
		Precision: cfg.Precision,
		NoClobber: cfg.NoClobber,
		Logger:    logger,
	})
}
