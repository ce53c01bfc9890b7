// Package failover selects between the database-backed store and the
// in-memory demo store. A shared Breaker holds the choice: closed means
// the database, open means demo mode. The breaker trips on the startup
// ping or on the first transport error from any call and stays open for
// the rest of the process; demo-mode writes are never reconciled back.
package failover

import (
	"context"
	"errors"
	"sync"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository"

	"go.uber.org/zap"
)

type Breaker struct {
	mu   sync.Mutex
	open bool
	ping func(ctx context.Context) error
	log  *zap.Logger
}

func NewBreaker(ping func(ctx context.Context) error, log *zap.Logger) *Breaker {
	return &Breaker{ping: ping, log: log}
}

// Probe checks backend reachability once, typically at startup. A
// failed probe opens the breaker immediately.
func (b *Breaker) Probe(ctx context.Context) {
	if b.ping == nil {
		b.Trip(errors.New("no database configured"))
		return
	}
	if err := b.ping(ctx); err != nil {
		b.Trip(err)
	}
}

func (b *Breaker) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Trip switches to demo mode. NotFound and validation failures are
// caller errors, not transport errors, and leave the breaker alone.
func (b *Breaker) Trip(cause error) {
	if cause == nil || errors.Is(cause, domain.ErrNotFound) || domain.IsValidation(cause) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open {
		return
	}
	b.open = true
	b.log.Warn("backend unreachable, switching to demo mode", zap.Error(cause))
}

// Store routes each call to the database store while the breaker is
// closed. A transport error trips the breaker and the call is replayed
// against the demo store, so the caller sees demo-mode behavior rather
// than the failure.
type Store[E repository.Entity] struct {
	remote repository.Store[E]
	local  repository.Store[E]
	br     *Breaker
}

func NewStore[E repository.Entity](remote, local repository.Store[E], br *Breaker) *Store[E] {
	return &Store[E]{remote: remote, local: local, br: br}
}

func (s *Store[E]) List(ctx context.Context) ([]E, error) {
	if s.br.Open() {
		return s.local.List(ctx)
	}
	out, err := s.remote.List(ctx)
	if transport(err) {
		s.br.Trip(err)
		return s.local.List(ctx)
	}
	return out, err
}

func (s *Store[E]) Get(ctx context.Context, id uint64) (E, error) {
	if s.br.Open() {
		return s.local.Get(ctx, id)
	}
	out, err := s.remote.Get(ctx, id)
	if transport(err) {
		s.br.Trip(err)
		return s.local.Get(ctx, id)
	}
	return out, err
}

func (s *Store[E]) Create(ctx context.Context, e E) error {
	if s.br.Open() {
		return s.local.Create(ctx, e)
	}
	if err := s.remote.Create(ctx, e); transport(err) {
		s.br.Trip(err)
		return s.local.Create(ctx, e)
	} else {
		return err
	}
}

func (s *Store[E]) Save(ctx context.Context, e E) error {
	if s.br.Open() {
		return s.local.Save(ctx, e)
	}
	if err := s.remote.Save(ctx, e); transport(err) {
		s.br.Trip(err)
		return s.local.Save(ctx, e)
	} else {
		return err
	}
}

func (s *Store[E]) Delete(ctx context.Context, id uint64) error {
	if s.br.Open() {
		return s.local.Delete(ctx, id)
	}
	if err := s.remote.Delete(ctx, id); transport(err) {
		s.br.Trip(err)
		return s.local.Delete(ctx, id)
	} else {
		return err
	}
}

func transport(err error) bool {
	return err != nil && !errors.Is(err, domain.ErrNotFound) && !domain.IsValidation(err)
}

// OrderItemStore pairs database and demo order-item stores behind the
// same breaker.
type OrderItemStore struct {
	Store[*domain.OrderItem]
	remote repository.OrderItemStore
	local  repository.OrderItemStore
}

func NewOrderItemStore(remote, local repository.OrderItemStore, br *Breaker) *OrderItemStore {
	return &OrderItemStore{
		Store:  Store[*domain.OrderItem]{remote: remote, local: local, br: br},
		remote: remote,
		local:  local,
	}
}

func (s *OrderItemStore) ListByOrder(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error) {
	if s.br.Open() {
		return s.local.ListByOrder(ctx, orderID)
	}
	out, err := s.remote.ListByOrder(ctx, orderID)
	if transport(err) {
		s.br.Trip(err)
		return s.local.ListByOrder(ctx, orderID)
	}
	return out, err
}

// ProfileStore pairs database and demo profile stores behind the same
// breaker.
type ProfileStore struct {
	Store[*domain.Profile]
	remote repository.ProfileStore
	local  repository.ProfileStore
}

func NewProfileStore(remote, local repository.ProfileStore, br *Breaker) *ProfileStore {
	return &ProfileStore{
		Store:  Store[*domain.Profile]{remote: remote, local: local, br: br},
		remote: remote,
		local:  local,
	}
}

func (s *ProfileStore) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if s.br.Open() {
		return s.local.FindByEmail(ctx, email)
	}
	out, err := s.remote.FindByEmail(ctx, email)
	if transport(err) {
		s.br.Trip(err)
		return s.local.FindByEmail(ctx, email)
	}
	return out, err
}

// OrderBackend gives the order placement flow a stable store pair for
// the whole two-step insert, so the order row and its line items cannot
// end up in different backends mid-flow.
type OrderBackend struct {
	br          *Breaker
	remote      repository.Store[*domain.Order]
	local       repository.Store[*domain.Order]
	remoteItems repository.OrderItemStore
	localItems  repository.OrderItemStore
}

func NewOrderBackend(br *Breaker, remote, local repository.Store[*domain.Order], remoteItems, localItems repository.OrderItemStore) *OrderBackend {
	return &OrderBackend{br: br, remote: remote, local: local, remoteItems: remoteItems, localItems: localItems}
}

func (b *OrderBackend) Pick() (repository.Store[*domain.Order], repository.OrderItemStore) {
	if b.br.Open() {
		return b.local, b.localItems
	}
	return b.remote, b.remoteItems
}

func (b *OrderBackend) Trip(cause error) { b.br.Trip(cause) }

var (
	_ repository.Store[*domain.Order] = (*Store[*domain.Order])(nil)
	_ repository.OrderItemStore       = (*OrderItemStore)(nil)
	_ repository.ProfileStore         = (*ProfileStore)(nil)
)
