package catalog

// SortKey names the supported orderings for the browse endpoint.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	SortPopularity SortKey = "popularity"
	SortName       SortKey = "name"
)

// ParseSortKey maps a query value onto a known sort key. Unknown or empty
// values fall back to relevance, mirroring the degrade-gracefully contract
// of the filter parameters.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortPriceLow, SortPriceHigh, SortRating, SortPopularity, SortName:
		return SortKey(value)
	}
	return SortRelevance
}

// ListParams describe the filter/sort knobs for the browse endpoint. Zero
// values mean "no constraint".
type ListParams struct {
	Search      string
	PriceMin    *int64
	PriceMax    *int64
	Categories  []string
	MinRatings  []float64
	InStockOnly bool
	SortBy      SortKey
}
