package catalog_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pehchaan/marketplace-demo/internal/catalog"
)

func TestApply(t *testing.T) {
	store := catalog.NewStore()
	all := store.List()

	tests := []struct {
		name    string
		filter  catalog.FilterState
		wantIDs []string
	}{
		{
			name:    "no_active_predicates",
			filter:  catalog.NewFilterState(),
			wantIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "11", "12"},
		},
		{
			name:    "category_only",
			filter:  catalog.FilterState{Category: "Pottery", PriceMax: catalog.DefaultPriceMax},
			wantIDs: []string{"1", "11"},
		},
		{
			name:    "price_max_1000_excludes_1450_vase",
			filter:  catalog.FilterState{PriceMax: 1000},
			wantIDs: []string{"3", "6", "9", "11"},
		},
		{
			name:    "price_max_1500_includes_1450_vase",
			filter:  catalog.FilterState{PriceMax: 1500},
			wantIDs: []string{"1", "3", "6", "8", "9", "11"},
		},
		{
			name:    "min_rating",
			filter:  catalog.FilterState{PriceMax: catalog.DefaultPriceMax, MinRating: 5},
			wantIDs: []string{},
		},
		{
			name:    "conjunction_of_predicates",
			filter:  catalog.FilterState{Category: "Textiles", PriceMax: 3500, MinRating: 4},
			wantIDs: []string{"2", "9"},
		},
		{
			name:    "price_min",
			filter:  catalog.FilterState{PriceMin: 10000, PriceMax: 20000},
			wantIDs: []string{"4", "10"},
		},
		{
			name:    "empty_result_is_valid",
			filter:  catalog.FilterState{Category: "Carpets", PriceMax: 100},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Apply(all, tt.filter)

			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

// Every filtered product must satisfy all active predicates, and the output
// must be an order-preserving subset of the input.
func TestApply_PredicateConjunction(t *testing.T) {
	faker := gofakeit.New(42)

	products := make([]catalog.Product, 100)
	for i := range products {
		products[i] = catalog.Product{
			ID:       faker.UUID(),
			Name:     faker.ProductName(),
			Price:    faker.Number(100, 20000),
			Rating:   faker.Float64Range(0, 5),
			Category: faker.RandomString([]string{"Pottery", "Textiles", "Metalware", "Jewelry"}),
			Stock:    faker.Number(0, 50),
		}
	}

	filters := []catalog.FilterState{
		{PriceMax: 5000},
		{Category: "Textiles", PriceMax: 20000},
		{PriceMin: 1000, PriceMax: 10000, MinRating: 3},
		{Category: "Pottery", PriceMax: 2000, MinRating: 4},
	}

	for _, f := range filters {
		got := catalog.Apply(products, f)

		lastIdx := -1
		for _, p := range got {
			require.True(t, f.Matches(p), "product %s violates filter %+v", p.ID, f)

			idx := indexOf(products, p.ID)
			require.Greater(t, idx, lastIdx, "output order must follow input order")
			lastIdx = idx
		}

		// Nothing that matches may be dropped.
		wantLen := 0
		for _, p := range products {
			if f.Matches(p) {
				wantLen++
			}
		}
		assert.Len(t, got, wantLen)
	}
}

func indexOf(products []catalog.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
