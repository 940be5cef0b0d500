package offer

import (
	"fmt"
	"sort"
)

// SortType selects the display order for a list of offers.
type SortType string

const (
	SortPopular       SortType = "popular"
	SortPriceAsc      SortType = "price-asc"
	SortPriceDesc     SortType = "price-desc"
	SortTopRatedFirst SortType = "top-rated"
)

// Label returns the human-readable name for a sort order.
func (s SortType) Label() string {
	switch s {
	case SortPopular:
		return "Popular"
	case SortPriceAsc:
		return "Price: low to high"
	case SortPriceDesc:
		return "Price: high to low"
	case SortTopRatedFirst:
		return "Top rated first"
	}
	return string(s)
}

// ParseSort validates a sort name from user input.
func ParseSort(name string) (SortType, error) {
	switch SortType(name) {
	case SortPopular, SortPriceAsc, SortPriceDesc, SortTopRatedFirst:
		return SortType(name), nil
	}
	return "", fmt.Errorf("unknown sort %q (popular|price-asc|price-desc|top-rated)", name)
}

// Sort returns a copy of offers in the given order. Popular keeps the
// server order. The input is never mutated.
func Sort(offers []Offer, s SortType) []Offer {
	sorted := make([]Offer, len(offers))
	copy(sorted, offers)

	switch s {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortTopRatedFirst:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	}

	return sorted
}
