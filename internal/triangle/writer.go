package triangle

import (
	"bufio"
	"fmt"
	"os"
)

// Writer writes accumulated data to a text file.
type Writer struct {
	path string

	// NoClobber refuses to overwrite an existing output file.
	NoClobber bool
	// Precision for numeric output; negative means minimal representation.
	Precision int
}

// NewWriter validates the output path and returns a Writer. By default the
// output file is created or overwritten.
func NewWriter(path string) (*Writer, error) {
	if err := checkTxtPath(path); err != nil {
		return nil, err
	}
	return &Writer{path: path, Precision: -1}, nil
}

// Write renders data and writes it to the output file, one row per line.
func (w *Writer) Write(data *AccumulatedData) error {
	if w.NoClobber {
		if _, err := os.Stat(w.path); err == nil {
			return &ValidationError{Reason: fmt.Sprintf("%s already exists", w.path)}
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	bw := bufio.NewWriter(f)
	for _, row := range data.Rows(w.Precision) {
		if _, err := bw.WriteString(row + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
