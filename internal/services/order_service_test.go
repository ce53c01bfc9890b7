package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"coffeepos/internal/domain"
	"coffeepos/internal/mocks"
	"coffeepos/internal/repository"
	"coffeepos/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryBackend struct {
	orders repository.Store[*domain.Order]
	items  repository.OrderItemStore
}

func (b *memoryBackend) Pick() (repository.Store[*domain.Order], repository.OrderItemStore) {
	return b.orders, b.items
}

func (b *memoryBackend) Trip(cause error) {}

func newMemoryOrderService(points repository.Store[*domain.CustomerPoint]) (*OrderService, *memory.Store[domain.Order, *domain.Order], *memory.OrderItemStore) {
	orders := memory.NewStore[domain.Order]()
	items := memory.NewOrderItemStore()
	if points == nil {
		points = memory.NewStore[domain.CustomerPoint]()
	}
	backend := &memoryBackend{orders: orders, items: items}
	svc := NewOrderService(orders, items, backend, points, nil, zap.NewNop())
	return svc, orders, items
}

func TestOrderService_PlaceComputesTotal(t *testing.T) {
	svc, _, items := newMemoryOrderService(nil)
	ctx := context.Background()

	order, err := svc.Place(ctx, PlaceOrderInput{
		Items: []ItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: 2.50},
			{ProductID: 2, Quantity: 1, UnitPrice: 3.00},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 8.00, order.TotalAmount, 1e-9)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.PaymentUnpaid, order.PaymentStatus)
	assert.NotEmpty(t, order.OrderNumber)
	require.Len(t, order.Items, 2)

	stored, err := items.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestOrderService_PlaceValidatesInput(t *testing.T) {
	svc, _, _ := newMemoryOrderService(nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input PlaceOrderInput
	}{
		{"no items", PlaceOrderInput{}},
		{"zero quantity", PlaceOrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 0, UnitPrice: 2.50}}}},
		{"negative price", PlaceOrderInput{Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: -0.50}}}},
		{"unknown status", PlaceOrderInput{Status: "teleported", Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 2.50}}}},
		{"unknown payment status", PlaceOrderInput{PaymentStatus: "iou", Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 2.50}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Place(ctx, tc.input)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestOrderService_PlaceItemFailureRollsBackOrder(t *testing.T) {
	ctx := context.Background()

	orderStore := new(mocks.MockOrderStore)
	itemStore := new(mocks.MockOrderItemStore)
	backend := &mocks.MockBackend{Orders: orderStore, Items: itemStore}

	insertErr := errors.New("driver: bad connection")
	orderStore.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 7
	}).Return(nil).Once()
	itemStore.On("Create", ctx, mock.Anything).Return(insertErr).Once()
	orderStore.On("Delete", ctx, uint64(7)).Return(nil).Once()
	backend.On("Trip", insertErr).Return().Once()

	svc := NewOrderService(orderStore, itemStore, backend, memory.NewStore[domain.CustomerPoint](), nil, zap.NewNop())

	_, err := svc.Place(ctx, PlaceOrderInput{
		Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 3.00}},
	})
	assert.ErrorIs(t, err, domain.ErrOrderCreationFailed)

	orderStore.AssertExpectations(t)
	itemStore.AssertExpectations(t)
	backend.AssertExpectations(t)
}

func TestOrderService_PlaceFailureLeavesNoOrderBehind(t *testing.T) {
	ctx := context.Background()

	orders := memory.NewStore[domain.Order]()
	items := new(mocks.MockOrderItemStore)
	items.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

	backend := &mocks.MockBackend{Orders: orders, Items: items}
	backend.On("Trip", mock.Anything).Return()

	svc := NewOrderService(orders, items, backend, memory.NewStore[domain.CustomerPoint](), nil, zap.NewNop())

	_, err := svc.Place(ctx, PlaceOrderInput{
		Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 3.00}},
	})
	assert.ErrorIs(t, err, domain.ErrOrderCreationFailed)

	all, err := orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrderService_PlaceAwardsPoints(t *testing.T) {
	points := memory.NewStore[domain.CustomerPoint]()
	svc, _, _ := newMemoryOrderService(points)
	ctx := context.Background()

	customer := uint64(12)
	order, err := svc.Place(ctx, PlaceOrderInput{
		CustomerID: &customer,
		Items: []ItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: 2.50, Points: 5},
			{ProductID: 2, Quantity: 1, UnitPrice: 3.00, Points: 3},
		},
	})
	require.NoError(t, err)

	entries, err := points.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, customer, entries[0].ProfileID)
	assert.Equal(t, 8, entries[0].Points)
	require.NotNil(t, entries[0].OrderID)
	assert.Equal(t, order.ID, *entries[0].OrderID)
}

func TestOrderService_PlacePublishesCreatedEvent(t *testing.T) {
	orders := memory.NewStore[domain.Order]()
	items := memory.NewOrderItemStore()
	backend := &memoryBackend{orders: orders, items: items}

	publisher := new(mocks.MockPublisher)
	publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil)

	svc := NewOrderService(orders, items, backend, memory.NewStore[domain.CustomerPoint](), publisher, zap.NewNop())

	_, err := svc.Place(context.Background(), PlaceOrderInput{
		Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 3.00}},
	})
	require.NoError(t, err)

	// Publish runs on its own goroutine.
	time.Sleep(100 * time.Millisecond)
	publisher.AssertExpectations(t)
}

func TestOrderService_GetAssemblesItems(t *testing.T) {
	svc, _, _ := newMemoryOrderService(nil)
	ctx := context.Background()

	placed, err := svc.Place(ctx, PlaceOrderInput{
		Items: []ItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: 2.50},
			{ProductID: 3, Quantity: 1, UnitPrice: 4.25},
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, placed.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.InDelta(t, 9.25, got.TotalAmount, 1e-9)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc, _, _ := newMemoryOrderService(nil)
	ctx := context.Background()

	placed, err := svc.Place(ctx, PlaceOrderInput{
		Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 3.00}},
	})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, placed.ID, domain.OrderServed)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderServed, got.Status)

	_, err = svc.UpdateStatus(ctx, placed.ID, "teleported")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.UpdateStatus(ctx, 999, domain.OrderServed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderService_Cancel(t *testing.T) {
	svc, orders, _ := newMemoryOrderService(nil)
	ctx := context.Background()

	placed, err := svc.Place(ctx, PlaceOrderInput{
		Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 3.00}},
	})
	require.NoError(t, err)

	got, err := svc.Cancel(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)

	stored, err := orders.Get(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, stored.Status)
}
