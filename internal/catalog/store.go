package catalog

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("catalog: product not found")

// Store holds the read-only catalog. All queries return copies, so callers
// cannot mutate the seed records.
type Store struct {
	products []Product
	byID     map[string]Product
	reviews  map[string][]Review
	stories  []ArtisanStory
}

func NewStore() *Store {
	s := &Store{
		products: seedProducts,
		byID:     make(map[string]Product, len(seedProducts)),
		reviews:  make(map[string][]Review),
		stories:  seedStories,
	}

	for _, p := range seedProducts {
		s.byID[p.ID] = p
	}
	for _, r := range seedReviews {
		s.reviews[r.ProductID] = append(s.reviews[r.ProductID], r)
	}

	return s
}

// List returns every product in seed order.
func (s *Store) List() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) FindByID(id string) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) Categories() []string {
	out := make([]string, len(seedCategories))
	copy(out, seedCategories)
	return out
}

// Search matches the query against product name, seller, artisan and
// category, case-insensitively. An empty query returns the full catalog.
func (s *Store) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.List()
	}

	var out []Product
	for _, p := range s.products {
		haystack := strings.ToLower(p.Name + " " + p.Seller + " " + p.Artisan + " " + p.Category)
		if strings.Contains(haystack, query) {
			out = append(out, p)
		}
	}

	return out
}

func (s *Store) ReviewsFor(productID string) []Review {
	reviews := s.reviews[productID]
	out := make([]Review, len(reviews))
	copy(out, reviews)
	return out
}

func (s *Store) ArtisanStories() []ArtisanStory {
	out := make([]ArtisanStory, len(s.stories))
	copy(out, s.stories)
	return out
}
