package triangle

import (
	"fmt"
	"strconv"
	"strings"
)

// AccumulatedData is the cumulative triangle in output form: per product, the
// flattened running sums. For each origin year o the development years run
// o..maxYear, so with n origin years a product holds n*(n+1)/2 values.
type AccumulatedData struct {
	MinOriginYear     int
	NDevelopmentYears int

	// Products in output order (first appearance in the input).
	Products []string
	Values   map[string][]float64
}

// Rows renders the output lines: a header row "minOriginYear,nDevelopmentYears"
// followed by one row per product. precision < 0 emits the minimal decimal
// representation of each value.
func (a *AccumulatedData) Rows(precision int) []string {
	rows := make([]string, 0, len(a.Products)+1)
	rows = append(rows, fmt.Sprintf("%d,%d", a.MinOriginYear, a.NDevelopmentYears))

	for _, product := range a.Products {
		var sb strings.Builder
		sb.WriteString(product)
		for _, v := range a.Values[product] {
			sb.WriteByte(',')
			sb.WriteString(FormatValue(v, precision))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// FormatValue renders one cumulative value. precision < 0 means minimal
// representation.
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Triangle unflattens a product's cumulative values into one row per origin
// year. Row i holds the values for development years minYear+i..maxYear.
func (a *AccumulatedData) Triangle(product string) [][]float64 {
	flat := a.Values[product]
	n := a.NDevelopmentYears

	rows := make([][]float64, 0, n)
	offset := 0
	for i := 0; i < n; i++ {
		width := n - i
		rows = append(rows, flat[offset:offset+width])
		offset += width
	}
	return rows
}

// Accumulator computes the cumulative triangle from a parsed dataset.
type Accumulator struct {
	ds *Dataset
}

// NewAccumulator validates the triangle shape of ds. The latest development
// year must equal the latest origin year, otherwise the grid is not a
// development triangle.
func NewAccumulator(ds *Dataset) (*Accumulator, error) {
	if len(ds.Products) == 0 {
		return nil, &ValidationError{Reason: "dataset has no records"}
	}
	if ds.MaxOriginYear != ds.MaxDevelopmentYear {
		return nil, &ValidationError{Reason: fmt.Sprintf(
			"expected max origin and development years to be equal, got %d and %d",
			ds.MaxOriginYear, ds.MaxDevelopmentYear)}
	}
	return &Accumulator{ds: ds}, nil
}

// Accumulate computes running sums across development years for every product.
// Cells with no record contribute zero; duplicate cells sum together.
func (a *Accumulator) Accumulate() *AccumulatedData {
	out := &AccumulatedData{
		MinOriginYear:     a.ds.MinOriginYear,
		NDevelopmentYears: a.ds.MaxOriginYear - a.ds.MinOriginYear + 1,
		Products:          a.ds.Products,
		Values:            make(map[string][]float64, len(a.ds.Products)),
	}

	for _, product := range a.ds.Products {
		out.Values[product] = a.accumulateProduct(a.ds.Records[product])
	}
	return out
}

func (a *Accumulator) accumulateProduct(records []Record) []float64 {
	cells := make(map[[2]int]float64, len(records))
	for _, r := range records {
		cells[[2]int{r.OriginYear, r.DevelopmentYear}] += r.Value
	}

	n := a.ds.MaxOriginYear - a.ds.MinOriginYear + 1
	values := make([]float64, 0, n*(n+1)/2)

	for origin := a.ds.MinOriginYear; origin <= a.ds.MaxOriginYear; origin++ {
		running := 0.0
		for dev := origin; dev <= a.ds.MaxOriginYear; dev++ {
			running += cells[[2]int{origin, dev}]
			values = append(values, running)
		}
	}
	return values
}
