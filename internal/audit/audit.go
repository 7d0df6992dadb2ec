package audit

import (
	"context"
	"sync"
	"time"
)

const (
	ActionCustomerRegistered      = "customer_registered"
	ActionBookingCreated          = "booking_created"
	ActionReviewCreated           = "review_created"
	ActionServiceDeleted          = "service_deleted"
	ActionStylistDeleted          = "stylist_deleted"
	ActionPaymentInitiated        = "payment_initiated"
	ActionPaymentCallbackReceived = "payment_callback_received"
)

type Event struct {
	CustomerID *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Sink records events synchronously. Implementations never fail the caller.
type Sink interface {
	Dispatch(ctx context.Context, ev Event)
}

// Memory keeps events in process; used by the in-memory store and tests.
type Memory struct {
	mu     sync.Mutex
	events []Event
	times  []time.Time
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Dispatch(_ context.Context, ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	m.times = append(m.times, time.Now())
}

func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Actions lists recorded actions in order.
func (m *Memory) Actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, ev := range m.events {
		out = append(out, ev.Action)
	}
	return out
}
