package checkout

import (
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/cart"
	"github.com/pehchaan/marketplace-demo/internal/localstore"
)

// ordersKey matches the key the original storefront used in localStorage.
const ordersKey = "pehchaan_orders"

type Step string

const (
	StepMethod     Step = "method"
	StepProcessing Step = "processing"
	StepSuccess    Step = "success"
)

// CartSource is the slice of the cart service the stepper needs: a snapshot
// at submission time and a clear afterwards.
type CartSource interface {
	Snapshot() []cart.Line
	Clear()
}

// Stepper drives the checkout sequence method -> processing -> success,
// strictly forward. Submission snapshots the cart into an Order, clears the
// live cart and waits for settlement. A second submission while processing
// is ignored, and there is no cancellation once processing begins.
type Stepper struct {
	mu         sync.Mutex
	step       Step
	current    *Order
	cart       CartSource
	settlement SettlementProvider
	store      localstore.Store
}

func NewStepper(cartSource CartSource, settlement SettlementProvider, store localstore.Store) *Stepper {
	return &Stepper{
		step:       StepMethod,
		cart:       cartSource,
		settlement: settlement,
		store:      store,
	}
}

func (st *Stepper) State() Step {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.step
}

// Current returns a copy of the order in flight (or just settled). The
// boolean is false before the first submission and after a reset.
func (st *Stepper) Current() (Order, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.current == nil {
		return Order{}, false
	}
	return *st.current, true
}

// Submit places the order. The boolean is false when the submission was
// ignored because a checkout is already processing or settled; the returned
// order is then the one in flight.
func (st *Stepper) Submit(method PaymentMethod, shipping ShippingAddress) (Order, bool) {
	st.mu.Lock()

	if st.step != StepMethod {
		log.Info().Str("step", string(st.step)).Msg("checkout: submission ignored, checkout already in progress")
		var current Order
		if st.current != nil {
			current = *st.current
		}
		st.mu.Unlock()
		return current, false
	}

	id, err := uuid.NewV4()
	if err != nil {
		// uuid.NewV4 only fails when the entropy source does; fall back to
		// the nil id rather than abort a demo checkout.
		log.Error().Err(err).Msg("checkout: failed to generate order id")
	}

	items := st.cart.Snapshot()
	total := 0
	for _, line := range items {
		total += line.Product.Price * line.Quantity
	}

	// An empty cart still goes through; the original storefront has no guard
	// against it.
	order := Order{
		ID:            id,
		Items:         items,
		Total:         total,
		PaymentMethod: method,
		Shipping:      shipping,
		PlacedAt:      time.Now().UTC(),
		Status:        StatusProcessing,
	}

	st.appendOrderLocked(order)
	st.cart.Clear()
	st.current = &order
	st.step = StepProcessing

	st.mu.Unlock()

	log.Info().Stringer("order_id", id).Int("total", total).Int("items", len(items)).Msg("checkout: order placed, awaiting settlement")

	st.settlement.Settle(id, func() { st.complete(id) })

	return order, true
}

// complete moves processing -> success once settlement confirms. A stale
// callback (after a reset started a new checkout) is dropped.
func (st *Stepper) complete(orderID uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.step != StepProcessing || st.current == nil || st.current.ID != orderID {
		log.Warn().Stringer("order_id", orderID).Str("step", string(st.step)).Msg("checkout: dropping stale settlement")
		return
	}

	st.current.Status = StatusSuccess
	st.step = StepSuccess
	st.updateOrderStatusLocked(orderID, StatusSuccess)

	log.Info().Stringer("order_id", orderID).Msg("checkout: order settled")
}

// Reset starts a new checkout after a settled one. Resetting while
// processing is ignored: no cancellation once processing begins.
func (st *Stepper) Reset() bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.step == StepProcessing {
		return false
	}

	st.step = StepMethod
	st.current = nil
	return true
}

// Orders returns the persisted order log, oldest first.
func (st *Stepper) Orders() []Order {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.readLogLocked()
}

func (st *Stepper) readLogLocked() []Order {
	var orders []Order
	if _, err := st.store.Get(ordersKey, &orders); err != nil {
		log.Warn().Err(err).Msg("checkout: failed to read order log")
		return nil
	}
	return orders
}

// appendOrderLocked writes the order to the persisted log. Best-effort: a
// failed write is logged and swallowed.
func (st *Stepper) appendOrderLocked(order Order) {
	orders := append(st.readLogLocked(), order)
	if err := st.store.Put(ordersKey, orders); err != nil {
		log.Warn().Err(err).Stringer("order_id", order.ID).Msg("checkout: failed to persist order log")
	}
}

func (st *Stepper) updateOrderStatusLocked(orderID uuid.UUID, status Status) {
	orders := st.readLogLocked()
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
		}
	}
	if err := st.store.Put(ordersKey, orders); err != nil {
		log.Warn().Err(err).Stringer("order_id", orderID).Msg("checkout: failed to persist order status")
	}
}
