package failover

import (
	"context"
	"errors"
	"testing"

	"coffeepos/internal/domain"
	"coffeepos/internal/mocks"
	"coffeepos/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBreaker_ProbeFailureOpens(t *testing.T) {
	ping := func(ctx context.Context) error { return errors.New("dial tcp: connection refused") }
	br := NewBreaker(ping, zap.NewNop())
	br.Probe(context.Background())
	assert.True(t, br.Open())
}

func TestBreaker_NoPingOpens(t *testing.T) {
	br := NewBreaker(nil, zap.NewNop())
	br.Probe(context.Background())
	assert.True(t, br.Open())
}

func TestBreaker_ProbeSuccessStaysClosed(t *testing.T) {
	ping := func(ctx context.Context) error { return nil }
	br := NewBreaker(ping, zap.NewNop())
	br.Probe(context.Background())
	assert.False(t, br.Open())
}

func TestBreaker_CallerErrorsDoNotTrip(t *testing.T) {
	br := NewBreaker(nil, zap.NewNop())

	br.Trip(nil)
	assert.False(t, br.Open())
	br.Trip(domain.ErrNotFound)
	assert.False(t, br.Open())
	br.Trip(&domain.ValidationError{Field: "email", Reason: "invalid"})
	assert.False(t, br.Open())

	br.Trip(errors.New("driver: bad connection"))
	assert.True(t, br.Open())
}

func TestStore_TransportErrorFallsBackToDemo(t *testing.T) {
	ctx := context.Background()
	br := NewBreaker(func(ctx context.Context) error { return nil }, zap.NewNop())

	remote := new(mocks.MockOrderStore)
	remote.On("Create", ctx, mock.Anything).Return(errors.New("driver: bad connection")).Once()

	local := memory.NewStore[domain.Order]()
	store := NewStore[*domain.Order](remote, local, br)

	o := &domain.Order{OrderNumber: "ORD-1", Status: domain.OrderPending}
	require.NoError(t, store.Create(ctx, o))

	// Replayed against the demo store, so the row exists locally.
	assert.True(t, br.Open())
	got, err := local.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", got.OrderNumber)

	// Later calls never touch the remote again.
	_, err = store.Get(ctx, o.ID)
	require.NoError(t, err)
	remote.AssertExpectations(t)
}

func TestStore_NotFoundPassesThrough(t *testing.T) {
	ctx := context.Background()
	br := NewBreaker(func(ctx context.Context) error { return nil }, zap.NewNop())

	remote := new(mocks.MockOrderStore)
	remote.On("Get", ctx, uint64(99)).Return(nil, domain.ErrNotFound)

	store := NewStore[*domain.Order](remote, memory.NewStore[domain.Order](), br)

	_, err := store.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, br.Open())
}

func TestOrderBackend_PickFollowsBreaker(t *testing.T) {
	br := NewBreaker(func(ctx context.Context) error { return nil }, zap.NewNop())

	remote := new(mocks.MockOrderStore)
	remoteItems := new(mocks.MockOrderItemStore)
	local := memory.NewStore[domain.Order]()
	localItems := memory.NewOrderItemStore()

	backend := NewOrderBackend(br, remote, local, remoteItems, localItems)

	orders, items := backend.Pick()
	assert.Same(t, remote, orders)
	assert.Same(t, remoteItems, items)

	backend.Trip(errors.New("driver: bad connection"))

	orders, items = backend.Pick()
	assert.Same(t, local, orders)
	assert.Same(t, localItems, items)
}
