package listing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LevelThreePlus is the sentinel level choice meaning "3 or more".
const LevelThreePlus = 4

// FilterCriteria is the active set of catalog constraints. A nil or empty
// criterion never excludes a record. Multi-valued count criteria are
// minimum thresholds combined with OR; criteria combine with AND.
type FilterCriteria struct {
	PriceMin     *decimal.Decimal `json:"priceMin,omitempty"`
	PriceMax     *decimal.Decimal `json:"priceMax,omitempty"`
	FloorAreaMin *float64         `json:"floorAreaMin,omitempty"`
	FloorAreaMax *float64         `json:"floorAreaMax,omitempty"`
	Bedrooms     []int            `json:"bedrooms,omitempty"`
	Bathrooms    []int            `json:"bathrooms,omitempty"`
	Garage       []int            `json:"garage,omitempty"`
	Levels       []int            `json:"levels,omitempty"`
	Styles       []string         `json:"styles,omitempty"`
}

func anyThresholdMet(count int, thresholds []int) bool {
	for _, t := range thresholds {
		if count >= t {
			return true
		}
	}
	return false
}

// Match reports whether l passes every active criterion.
func (f *FilterCriteria) Match(l *Listing) bool {
	if f.PriceMin != nil && l.Price.LessThan(*f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && l.Price.GreaterThan(*f.PriceMax) {
		return false
	}
	if f.FloorAreaMin != nil && l.FloorArea < *f.FloorAreaMin {
		return false
	}
	if f.FloorAreaMax != nil && l.FloorArea > *f.FloorAreaMax {
		return false
	}
	if len(f.Bedrooms) > 0 && !anyThresholdMet(l.Bedrooms, f.Bedrooms) {
		return false
	}
	if len(f.Bathrooms) > 0 && !anyThresholdMet(l.Bathrooms, f.Bathrooms) {
		return false
	}
	if len(f.Garage) > 0 && !anyThresholdMet(l.Garage, f.Garage) {
		return false
	}
	if len(f.Levels) > 0 && !f.matchLevels(l.Levels) {
		return false
	}
	if len(f.Styles) > 0 && !f.matchStyles(l.Styles) {
		return false
	}
	return true
}

// matchLevels matches exact level counts, with LevelThreePlus standing in
// for "3 or more".
func (f *FilterCriteria) matchLevels(levels int) bool {
	for _, level := range f.Levels {
		if level == LevelThreePlus {
			if levels >= 3 {
				return true
			}
			continue
		}
		if levels == level {
			return true
		}
	}
	return false
}

func (f *FilterCriteria) matchStyles(styles []string) bool {
	for _, s := range styles {
		for _, want := range f.Styles {
			if s == want {
				return true
			}
		}
	}
	return false
}

// MatchSearch is the trimmed, case-insensitive title substring predicate.
// An empty search string matches everything.
func MatchSearch(l *Listing, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), strings.ToLower(search))
}

// SortKey orders the filtered set. The flag driven keys are stable
// partitions, not total orders: flagged records move to one side and ties
// keep their previous relative order.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceHigh SortKey = "price-high"
	SortPriceLow  SortKey = "price-low"
	SortPopular   SortKey = "popular"
)

// Less reports whether a must sort strictly before b under k. Returning
// false for ties is what keeps sort.SliceStable deterministic.
func (k SortKey) Less(a, b *Listing) bool {
	switch k {
	case SortNewest:
		return a.IsNew && !b.IsNew
	case SortOldest:
		return !a.IsNew && b.IsNew
	case SortPriceHigh:
		return a.Price.GreaterThan(b.Price)
	case SortPriceLow:
		return a.Price.LessThan(b.Price)
	case SortPopular:
		return a.IsPopular && !b.IsPopular
	default:
		return false
	}
}
