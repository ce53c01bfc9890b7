// Package memory is the demo-mode fallback store: a per-process,
// per-entity list that stands in for the database when it is
// unreachable. Nothing written here is ever reconciled back.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository"
)

type Store[T any, PT interface {
	*T
	repository.Entity
}] struct {
	mu     sync.Mutex
	rows   []PT
	nextID uint64
	now    func() time.Time
}

// NewStore builds a fallback store, optionally seeded with demo rows.
// Locally assigned ids continue past the highest seeded id.
func NewStore[T any, PT interface {
	*T
	repository.Entity
}](seed ...PT) *Store[T, PT] {
	s := &Store[T, PT]{nextID: 1, now: time.Now}
	for _, e := range seed {
		if e.GetID() >= s.nextID {
			s.nextID = e.GetID() + 1
		}
		s.rows = append(s.rows, e)
	}
	return s
}

func clone[T any, PT interface {
	*T
	repository.Entity
}](e PT) PT {
	c := *(*T)(e)
	return PT(&c)
}

func deleted(e any) bool {
	if sd, ok := e.(repository.SoftDeletable); ok {
		return sd.IsDeleted()
	}
	return false
}

func (s *Store[T, PT]) List(ctx context.Context) ([]PT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PT, 0, len(s.rows))
	for _, e := range s.rows {
		if deleted(e) {
			continue
		}
		out = append(out, clone[T, PT](e))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].GetCreatedAt(), out[j].GetCreatedAt()
		if a.Equal(b) {
			return out[i].GetID() > out[j].GetID()
		}
		return a.After(b)
	})
	return out, nil
}

func (s *Store[T, PT]) Get(ctx context.Context, id uint64) (PT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, i := s.find(id); i >= 0 {
		return clone[T, PT](e), nil
	}
	var zero PT
	return zero, domain.ErrNotFound
}

func (s *Store[T, PT]) Create(ctx context.Context, e PT) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.SetID(s.nextID)
	s.nextID++
	e.StampCreated(s.now())
	s.rows = append(s.rows, clone[T, PT](e))
	return nil
}

func (s *Store[T, PT]) Save(ctx context.Context, e PT) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, i := s.find(e.GetID())
	if i < 0 {
		return domain.ErrNotFound
	}
	e.StampUpdated(s.now())
	s.rows[i] = clone[T, PT](e)
	return nil
}

func (s *Store[T, PT]) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, i := s.find(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	if sd, ok := any(e).(repository.SoftDeletable); ok {
		sd.MarkDeleted(s.now())
		return nil
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

// find returns the live row with the given id, or index -1. Callers
// hold mu.
func (s *Store[T, PT]) find(id uint64) (PT, int) {
	for i, e := range s.rows {
		if e.GetID() == id && !deleted(e) {
			return e, i
		}
	}
	var zero PT
	return zero, -1
}

// OrderItemStore mirrors the database store's by-order read for demo
// mode.
type OrderItemStore struct {
	*Store[domain.OrderItem, *domain.OrderItem]
}

func NewOrderItemStore(seed ...*domain.OrderItem) *OrderItemStore {
	return &OrderItemStore{Store: NewStore[domain.OrderItem](seed...)}
}

func (s *OrderItemStore) ListByOrder(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.OrderItem
	for _, e := range s.rows {
		if e.OrderID == orderID && !deleted(e) {
			out = append(out, clone[domain.OrderItem](e))
		}
	}
	return out, nil
}

// ProfileStore mirrors the database store's email lookup for demo mode.
type ProfileStore struct {
	*Store[domain.Profile, *domain.Profile]
}

func NewProfileStore(seed ...*domain.Profile) *ProfileStore {
	return &ProfileStore{Store: NewStore[domain.Profile](seed...)}
}

func (s *ProfileStore) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.rows {
		if strings.EqualFold(e.Email, email) && !deleted(e) {
			return clone[domain.Profile](e), nil
		}
	}
	return nil, domain.ErrNotFound
}

var (
	_ repository.Store[*domain.Product] = (*Store[domain.Product, *domain.Product])(nil)
	_ repository.OrderItemStore         = (*OrderItemStore)(nil)
	_ repository.ProfileStore           = (*ProfileStore)(nil)
)
