// Package triangle reads incremental actuarial triangle data, accumulates it
// across development years and writes the cumulative result.
package triangle

import "sort"

// Record is a single incremental observation: the amount paid for claims of
// one product, originating in OriginYear, during DevelopmentYear.
type Record struct {
	Product         string
	OriginYear      int
	DevelopmentYear int
	Value           float64
}

// Dataset holds the parsed input, sorted and split by product.
type Dataset struct {
	// Products in order of first appearance in the input file.
	Products []string
	// Records per product, sorted by (origin year, development year).
	Records map[string][]Record

	MinOriginYear      int
	MaxOriginYear      int
	MaxDevelopmentYear int
}

// NewDataset builds a Dataset from raw records, preserving first-appearance
// product order and sorting each product's records.
func NewDataset(records []Record) *Dataset {
	ds := &Dataset{Records: make(map[string][]Record)}

	for i, r := range records {
		if _, seen := ds.Records[r.Product]; !seen {
			ds.Products = append(ds.Products, r.Product)
		}
		ds.Records[r.Product] = append(ds.Records[r.Product], r)

		if i == 0 {
			ds.MinOriginYear = r.OriginYear
			ds.MaxOriginYear = r.OriginYear
			ds.MaxDevelopmentYear = r.DevelopmentYear
			continue
		}
		if r.OriginYear < ds.MinOriginYear {
			ds.MinOriginYear = r.OriginYear
		}
		if r.OriginYear > ds.MaxOriginYear {
			ds.MaxOriginYear = r.OriginYear
		}
		if r.DevelopmentYear > ds.MaxDevelopmentYear {
			ds.MaxDevelopmentYear = r.DevelopmentYear
		}
	}

	for product := range ds.Records {
		rs := ds.Records[product]
		sort.SliceStable(rs, func(i, j int) bool {
			if rs[i].OriginYear != rs[j].OriginYear {
				return rs[i].OriginYear < rs[j].OriginYear
			}
			return rs[i].DevelopmentYear < rs[j].DevelopmentYear
		})
	}

	return ds
}

// Len returns the total number of records across all products.
func (ds *Dataset) Len() int {
	n := 0
	for _, rs := range ds.Records {
		n += len(rs)
	}
	return n
}
