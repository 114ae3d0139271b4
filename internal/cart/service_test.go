package cart_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pehchaan/marketplace-demo/internal/cart"
	"github.com/pehchaan/marketplace-demo/internal/localstore"
)

// failingStore rejects every write, simulating a disabled or full storage.
type failingStore struct {
	localstore.Store
}

func (f *failingStore) Put(key string, v any) error {
	return errors.New("quota exceeded")
}

func TestService_PersistsAfterEveryMutation(t *testing.T) {
	store := localstore.NewMemory()
	svc := cart.NewService(store)

	svc.Add(product("1", 1450, 15), 2)
	svc.Add(product("2", 3200, 8), 1)
	svc.Remove("2")

	var lines []cart.Line
	found, err := store.Get("pehchaan_cart", &lines)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestService_RoundTrip(t *testing.T) {
	store := localstore.NewMemory()

	svc := cart.NewService(store)
	svc.Add(product("1", 1450, 15), 3)
	svc.Add(product("5", 2100, 18), 1)
	want := svc.Get()

	// A fresh service over the same store is the page reload.
	reloaded := cart.NewService(store)
	got := reloaded.Get()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cart round-trip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want.Total(), got.Total())
}

func TestService_RestoreDropsInvalidLines(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, store.Put("pehchaan_cart", []cart.Line{
		{Product: product("1", 1450, 15), Quantity: 2},
		{Quantity: 3},                                    // missing product id
		{Product: product("2", 3200, 8), Quantity: 0},    // quantity below one
	}))

	svc := cart.NewService(store)
	got := svc.Get()

	require.Len(t, got.Lines, 1)
	assert.Equal(t, "1", got.Lines[0].Product.ID)
}

func TestService_RestoreMalformedSnapshot(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, store.Put("pehchaan_cart", "not-a-cart"))

	svc := cart.NewService(store)

	assert.Empty(t, svc.Get().Lines, "malformed snapshot falls back to an empty cart")
}

func TestService_PersistFailureIsSwallowed(t *testing.T) {
	svc := cart.NewService(&failingStore{Store: localstore.NewMemory()})

	// A failed write must not surface; memory stays authoritative.
	got := svc.Add(product("1", 1450, 15), 2)

	assert.Equal(t, 2, got.Count())
	assert.Equal(t, 2900, got.Total())
}

func TestService_SetQuantity(t *testing.T) {
	svc := cart.NewService(localstore.NewMemory())
	svc.Add(product("4", 12500, 3), 1)

	got, ok := svc.SetQuantity("4", 7)
	assert.True(t, ok)
	assert.Equal(t, 3, got.Lines[0].Quantity, "clamped to stock")

	_, ok = svc.SetQuantity("absent", 2)
	assert.False(t, ok)
}
