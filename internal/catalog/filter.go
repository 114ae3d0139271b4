package catalog

// DefaultPriceMax mirrors the upper bound of the storefront price slider.
const DefaultPriceMax = 15000

// FilterState is the transient set of narrowing predicates chosen in the
// storefront sidebar. It is never persisted; a reload starts fresh.
type FilterState struct {
	Category  string `json:"category"`
	PriceMin  int    `json:"price_min"`
	PriceMax  int    `json:"price_max"`
	MinRating int    `json:"min_rating"`
}

// NewFilterState returns the filter the storefront starts with: every
// category, the full price range, any rating.
func NewFilterState() FilterState {
	return FilterState{PriceMax: DefaultPriceMax}
}

// Matches reports whether the product passes every active predicate.
func (f FilterState) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if f.MinRating > 0 && p.Rating < float64(f.MinRating) {
		return false
	}
	return true
}

// Apply returns the subset of products passing the filter, preserving input
// order. A stable filter, not a sort; an empty result is valid and renders
// as "0 products found".
func Apply(products []Product, f FilterState) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
