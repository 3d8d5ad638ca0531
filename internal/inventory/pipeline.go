package inventory

import (
	"cmp"
	"slices"
	"strings"
)

// SortMode selects price ordering of the view list.
type SortMode string

const (
	SortNone SortMode = ""
	SortAsc  SortMode = "low-to-high"
	SortDesc SortMode = "high-to-low"
)

// ParseSortMode accepts the dashboard option values ("", "low-to-high",
// "high-to-low") and the CLI spellings none/asc/desc.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "select":
		return SortNone, nil
	case "asc", "ascending", "low-to-high":
		return SortAsc, nil
	case "desc", "descending", "high-to-low":
		return SortDesc, nil
	}
	return SortNone, &Error{Type: ErrTypeValidation, Op: "sort", Value: s, Err: ErrInvalidSort}
}

// Next cycles none → asc → desc → none.
func (m SortMode) Next() SortMode {
	switch m {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// Label is the text shown in the sort selector.
func (m SortMode) Label() string {
	switch m {
	case SortAsc:
		return "Low to High"
	case SortDesc:
		return "High to Low"
	default:
		return "Select"
	}
}

// Query holds the dashboard's search and filter inputs.
type Query struct {
	Search   string
	Category string
	Sort     SortMode
}

// IsZero reports whether the query keeps every record in store order.
func (q Query) IsZero() bool {
	return q.Search == "" && q.Category == "" && q.Sort == SortNone
}

// Matches applies the search and category steps to one record.
func (q Query) Matches(p Product) bool {
	if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(q.Search)) {
		return false
	}
	if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
		return false
	}
	return true
}

// Apply derives the view list. It never modifies products and always
// returns a new slice:
//
//  1. keep titles containing q.Search, case-insensitively;
//  2. if q.Category is set, keep exact case-insensitive category matches;
//  3. stable-sort by numeric price for SortAsc/SortDesc.
func Apply(products []Product, q Query) []Product {
	view := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Matches(p) {
			view = append(view, p)
		}
	}

	switch q.Sort {
	case SortAsc:
		slices.SortStableFunc(view, func(a, b Product) int { return comparePrices(a, b, false) })
	case SortDesc:
		slices.SortStableFunc(view, func(a, b Product) int { return comparePrices(a, b, true) })
	}

	return view
}

// comparePrices orders priced records by value and puts unpriced records
// last regardless of direction.
func comparePrices(a, b Product, desc bool) int {
	pa, okA := a.PriceValue()
	pb, okB := b.PriceValue()

	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	case desc:
		return cmp.Compare(pb, pa)
	default:
		return cmp.Compare(pa, pb)
	}
}
