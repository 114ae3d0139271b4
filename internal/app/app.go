package app

import (
	"errors"
	"sync"

	"github.com/pehchaan/marketplace-demo/internal/cart"
	"github.com/pehchaan/marketplace-demo/internal/catalog"
	"github.com/pehchaan/marketplace-demo/internal/checkout"
	"github.com/pehchaan/marketplace-demo/internal/localstore"
	"github.com/pehchaan/marketplace-demo/internal/seller"
	"github.com/pehchaan/marketplace-demo/internal/session"
)

// Page names the demo's views. Navigation state lives here, in the explicit
// application-state object, not in ambient globals.
type Page string

const (
	PageMarketplace     Page = "marketplace"
	PageProduct         Page = "product"
	PageCheckout        Page = "checkout"
	PageSellerDashboard Page = "seller-dashboard"
	PageBuyerProfile    Page = "buyer-profile"
	PageCategories      Page = "categories"
	PageAbout           Page = "about"
)

var validPages = map[Page]bool{
	PageMarketplace:     true,
	PageProduct:         true,
	PageCheckout:        true,
	PageSellerDashboard: true,
	PageBuyerProfile:    true,
	PageCategories:      true,
	PageAbout:           true,
}

var ErrUnknownPage = errors.New("app: unknown page")

// App wires every service behind one injected state object: catalog, cart,
// checkout stepper, session and seller dashboard share the same local store.
type App struct {
	Catalog  *catalog.Store
	Cart     *cart.Service
	Checkout *checkout.Stepper
	Session  *session.Service
	Seller   *seller.Service

	mu       sync.Mutex
	page     Page
	selected string
}

func New(store localstore.Store, settlement checkout.SettlementProvider) *App {
	cat := catalog.NewStore()
	cartSvc := cart.NewService(store)
	stepper := checkout.NewStepper(cartSvc, settlement, store)

	return &App{
		Catalog:  cat,
		Cart:     cartSvc,
		Checkout: stepper,
		Session:  session.NewService(store),
		Seller:   seller.NewService(cat, stepper, store),
		page:     PageMarketplace,
	}
}

// Navigate moves to a page, optionally selecting a product for the detail
// view. Selecting an unknown product is allowed; the detail view resolves it
// later and renders nothing. Navigating away from a processing checkout is
// permitted and simply abandons the pending view.
func (a *App) Navigate(page Page, productID string) error {
	if !validPages[page] {
		return ErrUnknownPage
	}

	a.mu.Lock()
	a.page = page
	if page == PageProduct {
		a.selected = productID
	} else {
		a.selected = ""
	}
	a.mu.Unlock()

	return nil
}

// Location returns the current page and, on the detail view, the selected
// product ID.
func (a *App) Location() (Page, string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.page, a.selected
}
