package seller

import (
	"sync"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/catalog"
	"github.com/pehchaan/marketplace-demo/internal/checkout"
	"github.com/pehchaan/marketplace-demo/internal/localstore"
)

// listingsKey matches the key the original dashboard used in localStorage.
const listingsKey = "pehchaan_products"

// seedListingCount mirrors the original dashboard, which manages the first
// six catalog products as the demo seller's own listings.
const seedListingCount = 6

// ListingForm is the add-product form, validated at the boundary.
type ListingForm struct {
	Name        string `json:"name" validate:"required,min=2"`
	Category    string `json:"category" validate:"required"`
	Price       int    `json:"price" validate:"required,gt=0"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Description string `json:"description"`
}

// ProductStats aggregates the order log per product, replacing the
// original's hard-coded dashboard numbers with real sums.
type ProductStats struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
	Revenue   int    `json:"revenue"`
}

// OrderLog is the slice of the checkout stepper the dashboard reads.
type OrderLog interface {
	Orders() []checkout.Order
}

// Service manages the demo seller's listings and dashboard stats. The
// catalog seed stays immutable; added listings live only in local
// persistence and are merged into the dashboard view.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Store
	orders  OrderLog
	store   localstore.Store
}

func NewService(cat *catalog.Store, orders OrderLog, store localstore.Store) *Service {
	return &Service{catalog: cat, orders: orders, store: store}
}

// Listings returns the dashboard products: the seed listings followed by
// persisted additions, in added order.
func (s *Service) Listings() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := s.catalog.List()
	if len(seed) > seedListingCount {
		seed = seed[:seedListingCount]
	}

	return append(seed, s.readAddedLocked()...)
}

// AddListing creates a product from the form and persists it under the
// listings key. Added products do not join the storefront catalog; the demo
// dashboard is their only reader, as in the original.
func (s *Service) AddListing(form ListingForm, sellerName string) catalog.Product {
	id, err := uuid.NewV4()
	if err != nil {
		log.Error().Err(err).Msg("seller: failed to generate listing id")
	}

	p := catalog.Product{
		ID:          "prod_" + id.String(),
		Name:        form.Name,
		Seller:      sellerName,
		Price:       form.Price,
		Category:    form.Category,
		Description: form.Description,
		Stock:       form.Stock,
		IsNew:       true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := append(s.readAddedLocked(), p)
	if err := s.store.Put(listingsKey, added); err != nil {
		log.Warn().Err(err).Str("product_id", p.ID).Msg("seller: failed to persist listings")
	}

	log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("seller: listing added")

	return p
}

// Stats sums units and revenue per product over the placed-order log,
// keyed to the current listings, in listing order.
func (s *Service) Stats() []ProductStats {
	listings := s.Listings()

	units := make(map[string]int)
	revenue := make(map[string]int)
	for _, order := range s.orders.Orders() {
		for _, line := range order.Items {
			units[line.Product.ID] += line.Quantity
			revenue[line.Product.ID] += line.Product.Price * line.Quantity
		}
	}

	stats := make([]ProductStats, 0, len(listings))
	for _, p := range listings {
		stats = append(stats, ProductStats{
			ProductID: p.ID,
			Name:      p.Name,
			UnitsSold: units[p.ID],
			Revenue:   revenue[p.ID],
		})
	}

	return stats
}

func (s *Service) readAddedLocked() []catalog.Product {
	var added []catalog.Product
	if _, err := s.store.Get(listingsKey, &added); err != nil {
		log.Warn().Err(err).Msg("seller: failed to read listings, showing seed only")
		return nil
	}
	return added
}
