package triangle

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Required input columns, in canonical order.
const (
	ColumnProduct         = "Product"
	ColumnOriginYear      = "Origin Year"
	ColumnDevelopmentYear = "Development Year"
	ColumnIncremental     = "Incremental Value"
)

var requiredColumns = []string{
	ColumnProduct,
	ColumnOriginYear,
	ColumnDevelopmentYear,
	ColumnIncremental,
}

// Reader parses a comma-separated text file of incremental triangle records.
type Reader struct {
	path string
}

// NewReader validates the input path and returns a Reader.
// The file must exist and carry a single .txt extension.
func NewReader(path string) (*Reader, error) {
	if err := checkTxtPath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}
	return &Reader{path: path}, nil
}

// Read parses the file and returns the records sorted and split by product.
// Extra columns are ignored; missing required columns fail validation.
func (r *Reader) Read() (*Dataset, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := parseRecords(f)
	if err != nil {
		return nil, err
	}
	return NewDataset(records), nil
}

func parseRecords(f io.Reader) ([]Record, error) {
	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ValidationError{Reason: "input file is empty"}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("missing required column %q", col)}
		}
	}

	var records []Record
	line := 1 // header
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, &ValidationError{Reason: "input file has no data rows"}
	}
	for _, rec := range records {
		if rec.DevelopmentYear < rec.OriginYear {
			return nil, &ValidationError{Reason: fmt.Sprintf(
				"product %q: development year %d precedes origin year %d",
				rec.Product, rec.DevelopmentYear, rec.OriginYear)}
		}
	}
	return records, nil
}

func parseRow(row []string, index map[string]int, line int) (Record, error) {
	cell := func(col string) (string, error) {
		i := index[col]
		if i >= len(row) {
			return "", &ValidationError{Reason: fmt.Sprintf("line %d: missing value for column %q", line, col)}
		}
		return strings.TrimSpace(row[i]), nil
	}

	var rec Record
	var err error

	if rec.Product, err = cell(ColumnProduct); err != nil {
		return rec, err
	}

	for _, col := range []string{ColumnOriginYear, ColumnDevelopmentYear} {
		raw, err := cell(col)
		if err != nil {
			return rec, err
		}
		year, err := strconv.Atoi(raw)
		if err != nil {
			return rec, &ParseError{Line: line, Column: col, Value: raw, Err: err}
		}
		if col == ColumnOriginYear {
			rec.OriginYear = year
		} else {
			rec.DevelopmentYear = year
		}
	}

	raw, err := cell(ColumnIncremental)
	if err != nil {
		return rec, err
	}
	rec.Value, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return rec, &ParseError{Line: line, Column: ColumnIncremental, Value: raw, Err: err}
	}

	return rec, nil
}

// checkTxtPath enforces a single .txt extension, matching the file contract
// on both the input and output side.
func checkTxtPath(path string) error {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".txt" {
		return &ValidationError{Reason: fmt.Sprintf("%s: expected a .txt file", path)}
	}
	rest := strings.TrimSuffix(base, ext)
	if strings.Contains(rest, ".") {
		return &ValidationError{Reason: fmt.Sprintf("%s: expected a single file extension", path)}
	}
	return nil
}
