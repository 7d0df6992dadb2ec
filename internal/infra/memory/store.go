// Package memory is an in-process implementation of every repository. It
// backs DATABASE_URL=memory:// and the use case tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type link struct {
	stylistID uint
	serviceID uint
}

type data struct {
	customers map[uint]models.Customer
	services  map[uint]models.Service
	stylists  map[uint]models.Stylist
	links     map[link]struct{}
	bookings  map[uint]models.Booking
	reviews   map[uint]models.Review

	seq map[string]uint
}

func newData() data {
	return data{
		customers: map[uint]models.Customer{},
		services:  map[uint]models.Service{},
		stylists:  map[uint]models.Stylist{},
		links:     map[link]struct{}{},
		bookings:  map[uint]models.Booking{},
		reviews:   map[uint]models.Review{},
		seq:       map[string]uint{},
	}
}

// Store holds all tables behind one mutex. Stored rows never carry loaded
// relations; reads attach them on the way out.
type Store struct {
	mu  sync.Mutex
	d   data
	now func() time.Time

	// txMu serialises units of work.
	txMu sync.Mutex
}

func NewStore() *Store {
	return &Store{d: newData(), now: time.Now}
}

type txKey struct{}

// journal holds the inverse of every write made through one unit of work's
// context. Writes made with any other context are never reverted.
type journal struct {
	undo []func()
}

func journalOf(ctx context.Context) *journal {
	j, _ := ctx.Value(txKey{}).(*journal)
	return j
}

// put and del must be called with mu held.
func put[K comparable, V any](ctx context.Context, m map[K]V, k K, v V) {
	if j := journalOf(ctx); j != nil {
		prev, had := m[k]
		j.undo = append(j.undo, func() {
			if had {
				m[k] = prev
			} else {
				delete(m, k)
			}
		})
	}
	m[k] = v
}

func del[K comparable, V any](ctx context.Context, m map[K]V, k K) {
	prev, had := m[k]
	if !had {
		return
	}
	if j := journalOf(ctx); j != nil {
		j.undo = append(j.undo, func() { m[k] = prev })
	}
	delete(m, k)
}

// WithinTx runs fn as one unit of work. If fn fails, the writes it made
// through the context it was handed are undone in reverse order. Ids are
// not handed back.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if journalOf(ctx) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	j := &journal{}
	if err := fn(context.WithValue(ctx, txKey{}, j)); err != nil {
		s.mu.Lock()
		for i := len(j.undo) - 1; i >= 0; i-- {
			j.undo[i]()
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) nextID(table string) uint {
	s.d.seq[table]++
	return s.d.seq[table]
}

func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{s: s} }
func (s *Store) Catalog() *CatalogRepository    { return &CatalogRepository{s: s} }
func (s *Store) Bookings() *BookingRepository   { return &BookingRepository{s: s} }
func (s *Store) Reviews() *ReviewRepository     { return &ReviewRepository{s: s} }
func (s *Store) Analytics() *AnalyticsRepository {
	return &AnalyticsRepository{s: s}
}

var _ domain.Transactor = (*Store)(nil)
