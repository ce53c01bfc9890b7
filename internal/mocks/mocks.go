package mocks

import (
	"context"
	"io"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) List(ctx context.Context) ([]*domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderStore) Get(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderStore) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) Save(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderItemStore struct {
	mock.Mock
}

func (m *MockOrderItemStore) List(ctx context.Context) ([]*domain.OrderItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemStore) Get(ctx context.Context, id uint64) (*domain.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemStore) Create(ctx context.Context, it *domain.OrderItem) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockOrderItemStore) Save(ctx context.Context, it *domain.OrderItem) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockOrderItemStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderItemStore) ListByOrder(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OrderItem), args.Error(1)
}

// MockBackend pins the placement flow to the mocked store pair.
type MockBackend struct {
	mock.Mock
	Orders repository.Store[*domain.Order]
	Items  repository.OrderItemStore
}

func (m *MockBackend) Pick() (repository.Store[*domain.Order], repository.OrderItemStore) {
	return m.Orders, m.Items
}

func (m *MockBackend) Trip(cause error) {
	m.Called(cause)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, folder, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, folder, filename, content)
	return args.String(0), args.Error(1)
}
