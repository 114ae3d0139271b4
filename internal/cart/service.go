package cart

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/catalog"
	"github.com/pehchaan/marketplace-demo/internal/localstore"
)

// storageKey matches the key the original storefront used in localStorage.
const storageKey = "pehchaan_cart"

// Service owns the live cart. It is the only writer of cart state; every
// mutation is persisted best-effort so a restart restores the cart.
type Service struct {
	mu    sync.Mutex
	cart  Cart
	store localstore.Store
}

func NewService(store localstore.Store) *Service {
	s := &Service{store: store}
	s.restore()
	return s
}

func (s *Service) restore() {
	var lines []Line

	found, err := s.store.Get(storageKey, &lines)
	if err != nil {
		// A malformed snapshot falls back to an empty cart; persistence is a
		// convenience, not a correctness requirement.
		log.Warn().Err(err).Msg("cart: failed to restore snapshot, starting empty")
		return
	}
	if !found {
		return
	}

	for _, line := range lines {
		if line.Product.ID == "" || line.Quantity < 1 {
			log.Warn().Str("product_id", line.Product.ID).Int("quantity", line.Quantity).Msg("cart: dropping invalid snapshot line")
			continue
		}
		s.cart.Add(line.Product, line.Quantity)
	}
}

// persist writes the snapshot after a mutation. Failures are logged and
// swallowed; the in-memory cart stays authoritative for the session.
func (s *Service) persist() {
	if err := s.store.Put(storageKey, s.cart.Lines); err != nil {
		log.Warn().Err(err).Msg("cart: failed to persist snapshot")
	}
}

func (s *Service) Add(p catalog.Product, quantity int) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(p, quantity)
	s.persist()

	log.Info().Str("product_id", p.ID).Int("quantity", quantity).Int("count", s.cart.Count()).Msg("cart: item added")

	return s.cart.Clone()
}

func (s *Service) Remove(productID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Remove(productID)
	s.persist()

	return s.cart.Clone()
}

func (s *Service) SetQuantity(productID string, quantity int) (Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.cart.SetQuantity(productID, quantity)
	if ok {
		s.persist()
	}

	return s.cart.Clone(), ok
}

func (s *Service) Get() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

// Snapshot returns a copy of the lines, for order creation.
func (s *Service) Snapshot() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone().Lines
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.persist()
}
