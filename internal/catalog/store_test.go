package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pehchaan/marketplace-demo/internal/catalog"
)

func TestStore_List(t *testing.T) {
	store := catalog.NewStore()

	products := store.List()
	require.Len(t, products, 12)

	// Stable seed order.
	assert.Equal(t, "Jaipur Blue Pottery Vase", products[0].Name)
	assert.Equal(t, "Silver Filigree Earrings", products[11].Name)

	// Mutating the returned slice must not touch the catalog.
	products[0].Price = 1
	fresh, err := store.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, 1450, fresh.Price)
}

func TestStore_FindByID(t *testing.T) {
	store := catalog.NewStore()

	p, err := store.FindByID("4")
	require.NoError(t, err)
	assert.Equal(t, "Handwoven Agra Carpet", p.Name)
	assert.Equal(t, 12500, p.Price)

	_, err = store.FindByID("no-such-product")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestStore_Search(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "by_name", query: "pashmina", wantIDs: []string{"2"}},
		{name: "by_seller", query: "agra", wantIDs: []string{"4", "10"}},
		{name: "by_category", query: "metalware", wantIDs: []string{"3", "8"}},
		{name: "no_match", query: "zzz", wantIDs: nil},
	}

	store := catalog.NewStore()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.Search(tt.query)

			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}

			if tt.wantIDs == nil {
				assert.Empty(t, gotIDs)
				return
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}

	assert.Len(t, store.Search("  "), 12, "blank query returns the full catalog")
}

func TestStore_ReviewsFor(t *testing.T) {
	store := catalog.NewStore()

	reviews := store.ReviewsFor("1")
	require.Len(t, reviews, 2)
	assert.Equal(t, "Priya Sharma", reviews[0].User)

	assert.Empty(t, store.ReviewsFor("2"))
}

func TestStore_Categories(t *testing.T) {
	store := catalog.NewStore()

	assert.Equal(t, []string{"Pottery", "Textiles", "Metalware", "Carpets", "Woodwork", "Paintings", "Jewelry"}, store.Categories())
}
