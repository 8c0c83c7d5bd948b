package triangle

import "go.uber.org/zap"

// Options tunes the accumulation pipeline.
type Options struct {
	// Precision for numeric output; negative means minimal representation.
	Precision int
	// NoClobber refuses to overwrite an existing output file.
	NoClobber bool
	// Logger; nil disables logging.
	Logger *zap.Logger
}

// AccumulateIncrementalData reads incremental triangle data from input,
// accumulates it and writes the cumulative triangle to output. The output
// file is created or overwritten.
func AccumulateIncrementalData(input, output string) error {
	return Run(input, output, Options{Precision: -1})
}

// Run is AccumulateIncrementalData with explicit options.
func Run(input, output string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reader, err := NewReader(input)
	if err != nil {
		return err
	}
	writer, err := NewWriter(output)
	if err != nil {
		return err
	}
	writer.NoClobber = opts.NoClobber
	writer.Precision = opts.Precision

	ds, err := reader.Read()
	if err != nil {
		return err
	}
	logger.Debug("parsed incremental data",
		zap.Int("records", ds.Len()),
		zap.Int("products", len(ds.Products)),
		zap.Int("min_origin_year", ds.MinOriginYear),
		zap.Int("max_origin_year", ds.MaxOriginYear))

	acc, err := NewAccumulator(ds)
	if err != nil {
		return err
	}
	data := acc.Accumulate()

	if err := writer.Write(data); err != nil {
		return err
	}
	logger.Info("accumulated incremental data",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("products", len(data.Products)),
		zap.Int("development_years", data.NDevelopmentYears))
	return nil
}
