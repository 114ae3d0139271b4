package checkout

import (
	"sync"
	"time"

	"github.com/gofrs/uuid"
)

// SettlementProvider abstracts the asynchronous confirmation that a placed
// order has settled. There is no payment gateway in this demo; in a real
// system the implementation would be an external confirmation callback.
type SettlementProvider interface {
	// Settle schedules done to run once settlement for the order completes.
	// It must not block.
	Settle(orderID uuid.UUID, done func())
}

// TimerSettlement settles every order after a fixed simulated delay.
type TimerSettlement struct {
	Delay time.Duration
}

func NewTimerSettlement(delay time.Duration) *TimerSettlement {
	return &TimerSettlement{Delay: delay}
}

func (t *TimerSettlement) Settle(_ uuid.UUID, done func()) {
	time.AfterFunc(t.Delay, done)
}

// ManualSettlement holds every settlement until Release is called. It is the
// swappable test implementation of the port.
type ManualSettlement struct {
	mu      sync.Mutex
	pending map[uuid.UUID]func()
}

func NewManualSettlement() *ManualSettlement {
	return &ManualSettlement{pending: make(map[uuid.UUID]func())}
}

func (m *ManualSettlement) Settle(orderID uuid.UUID, done func()) {
	m.mu.Lock()
	m.pending[orderID] = done
	m.mu.Unlock()
}

// Release completes the pending settlement for the order. Returns false when
// none is pending.
func (m *ManualSettlement) Release(orderID uuid.UUID) bool {
	m.mu.Lock()
	done, ok := m.pending[orderID]
	delete(m.pending, orderID)
	m.mu.Unlock()

	if ok {
		done()
	}
	return ok
}
