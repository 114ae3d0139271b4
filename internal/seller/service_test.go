package seller_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pehchaan/marketplace-demo/internal/cart"
	"github.com/pehchaan/marketplace-demo/internal/catalog"
	"github.com/pehchaan/marketplace-demo/internal/checkout"
	"github.com/pehchaan/marketplace-demo/internal/localstore"
	"github.com/pehchaan/marketplace-demo/internal/seller"
)

type staticOrders struct {
	orders []checkout.Order
}

func (s *staticOrders) Orders() []checkout.Order {
	return s.orders
}

func TestService_Listings(t *testing.T) {
	store := localstore.NewMemory()
	svc := seller.NewService(catalog.NewStore(), &staticOrders{}, store)

	listings := svc.Listings()
	require.Len(t, listings, 6, "dashboard starts with the first six catalog products")
	assert.Equal(t, "Jaipur Blue Pottery Vase", listings[0].Name)

	added := svc.AddListing(seller.ListingForm{
		Name:     "Terracotta Tea Set",
		Category: "Pottery",
		Price:    950,
		Stock:    10,
	}, "Rajasthan Blue Pottery Co.")

	assert.NotEmpty(t, added.ID)
	assert.True(t, added.IsNew)

	listings = svc.Listings()
	require.Len(t, listings, 7)
	assert.Equal(t, "Terracotta Tea Set", listings[6].Name)

	// Additions survive a reload, the catalog seed stays untouched.
	reloaded := seller.NewService(catalog.NewStore(), &staticOrders{}, store)
	assert.Len(t, reloaded.Listings(), 7)
	assert.Len(t, catalog.NewStore().List(), 12)
}

func TestService_AddListing_DistinctIDs(t *testing.T) {
	svc := seller.NewService(catalog.NewStore(), &staticOrders{}, localstore.NewMemory())

	form := seller.ListingForm{Name: "Terracotta Tea Set", Category: "Pottery", Price: 950, Stock: 10}

	// Back-to-back additions land within the same millisecond; their IDs
	// must still differ or the dashboard stats key ambiguously.
	first := svc.AddListing(form, "Rajasthan Blue Pottery Co.")
	second := svc.AddListing(form, "Rajasthan Blue Pottery Co.")

	assert.True(t, strings.HasPrefix(first.ID, "prod_"))
	assert.True(t, strings.HasPrefix(second.ID, "prod_"))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_Stats(t *testing.T) {
	store := localstore.NewMemory()
	cat := catalog.NewStore()

	vase, err := cat.FindByID("1")
	require.NoError(t, err)
	diyas, err := cat.FindByID("3")
	require.NoError(t, err)

	orders := &staticOrders{orders: []checkout.Order{
		{
			Items: []cart.Line{
				{Product: vase, Quantity: 2},
				{Product: diyas, Quantity: 1},
			},
			Status: checkout.StatusSuccess,
		},
		{
			Items:  []cart.Line{{Product: vase, Quantity: 1}},
			Status: checkout.StatusProcessing,
		},
	}}

	svc := seller.NewService(cat, orders, store)

	stats := svc.Stats()
	require.Len(t, stats, 6)

	assert.Equal(t, "1", stats[0].ProductID)
	assert.Equal(t, 3, stats[0].UnitsSold)
	assert.Equal(t, 3*1450, stats[0].Revenue)

	assert.Equal(t, "3", stats[2].ProductID)
	assert.Equal(t, 1, stats[2].UnitsSold)
	assert.Equal(t, 650, stats[2].Revenue)

	// Listings with no orders report zeros, not gaps.
	assert.Equal(t, 0, stats[1].UnitsSold)
	assert.Equal(t, 0, stats[1].Revenue)
}
