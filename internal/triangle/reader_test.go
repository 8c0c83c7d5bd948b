package triangle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewReader(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewReader(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.csv")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		_, err := NewReader(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".txt")
	})

	t.Run("double extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.tar.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		_, err := NewReader(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "single file extension")
	})
}

func TestReaderRead(t *testing.T) {
	path := writeInput(t, strings.Join([]string{
		"Product,Origin Year,Development Year,Incremental Value",
		"b,2001,2001,20",
		"a,2000,2000,1.5",
		"a,2001,2001,3",
		"a,2000,2001,2",
		"b,2000,2000,10",
		"b,2000,2001,15",
	}, "\n"))

	r, err := NewReader(path)
	require.NoError(t, err)

	ds, err := r.Read()
	require.NoError(t, err)

	// first-appearance product order
	assert.Equal(t, []string{"b", "a"}, ds.Products)
	assert.Equal(t, 6, ds.Len())
	assert.Equal(t, 2000, ds.MinOriginYear)
	assert.Equal(t, 2001, ds.MaxOriginYear)
	assert.Equal(t, 2001, ds.MaxDevelopmentYear)

	// records sorted by origin then development year
	a := ds.Records["a"]
	require.Len(t, a, 3)
	assert.Equal(t, Record{Product: "a", OriginYear: 2000, DevelopmentYear: 2000, Value: 1.5}, a[0])
	assert.Equal(t, Record{Product: "a", OriginYear: 2000, DevelopmentYear: 2001, Value: 2}, a[1])
	assert.Equal(t, Record{Product: "a", OriginYear: 2001, DevelopmentYear: 2001, Value: 3}, a[2])
}

func TestReaderReadExtraColumnsIgnored(t *testing.T) {
	path := writeInput(t, strings.Join([]string{
		"Region,Product,Origin Year,Development Year,Incremental Value,Notes",
		"north,a,2000,2000,5,ok",
	}, "\n"))

	r, err := NewReader(path)
	require.NoError(t, err)

	ds, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, 5.0, ds.Records["a"][0].Value)
}

func TestReaderReadMissingColumns(t *testing.T) {
	full := map[string]string{
		ColumnProduct:         "a",
		ColumnOriginYear:      "2000",
		ColumnDevelopmentYear: "2000",
		ColumnIncremental:     "5",
	}

	for _, missing := range requiredColumns {
		t.Run(missing, func(t *testing.T) {
			var header, row []string
			for _, col := range requiredColumns {
				if col == missing {
					continue
				}
				header = append(header, col)
				row = append(row, full[col])
			}
			path := writeInput(t, strings.Join(header, ",")+"\n"+strings.Join(row, ","))

			r, err := NewReader(path)
			require.NoError(t, err)

			_, err = r.Read()
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestReaderReadParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		column string
	}{
		{"bad origin year", "a,19x0,1990,5", ColumnOriginYear},
		{"non-integer origin year", "a,1990.5,1990,5", ColumnOriginYear},
		{"bad development year", "a,1990,hello,5", ColumnDevelopmentYear},
		{"bad incremental value", "a,1990,1990,abc", ColumnIncremental},
	}

	header := "Product,Origin Year,Development Year,Incremental Value"
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeInput(t, header+"\n"+tc.row)

			r, err := NewReader(path)
			require.NoError(t, err)

			_, err = r.Read()
			require.Error(t, err)

			pe, ok := AsParseError(err)
			require.True(t, ok, "expected a *ParseError, got %v", err)
			assert.Equal(t, 2, pe.Line)
			assert.Equal(t, tc.column, pe.Column)
		})
	}
}

func TestReaderReadStructuralErrors(t *testing.T) {
	header := "Product,Origin Year,Development Year,Incremental Value"

	t.Run("empty file", func(t *testing.T) {
		r, err := NewReader(writeInput(t, ""))
		require.NoError(t, err)
		_, err = r.Read()
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("header only", func(t *testing.T) {
		r, err := NewReader(writeInput(t, header))
		require.NoError(t, err)
		_, err = r.Read()
		assert.ErrorContains(t, err, "no data rows")
	})

	t.Run("development before origin", func(t *testing.T) {
		r, err := NewReader(writeInput(t, header+"\na,2001,2000,5"))
		require.NoError(t, err)
		_, err = r.Read()
		assert.ErrorContains(t, err, "precedes origin year")
	})
}
