package services

import (
	"context"
	"fmt"
	"time"

	"coffeepos/internal/domain"
	rabbit "coffeepos/internal/infra/rabbitmq"
	"coffeepos/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlacementBackend hands the placement flow one stable store pair for
// the whole order + line-item insert sequence.
type PlacementBackend interface {
	Pick() (repository.Store[*domain.Order], repository.OrderItemStore)
	Trip(cause error)
}

type ItemInput struct {
	ProductID uint64
	Quantity  int
	UnitPrice float64
	Points    int
}

type PlaceOrderInput struct {
	CustomerID    *uint64
	Items         []ItemInput
	Status        domain.OrderStatus
	PaymentStatus domain.PaymentStatus
	VoucherID     *uint64
	DiscountID    *uint64
}

type OrderService struct {
	orders    repository.Store[*domain.Order]
	items     repository.OrderItemStore
	backend   PlacementBackend
	points    repository.Store[*domain.CustomerPoint]
	publisher rabbit.PublisherInterface
	log       *zap.Logger
}

func NewOrderService(
	orders repository.Store[*domain.Order],
	items repository.OrderItemStore,
	backend PlacementBackend,
	points repository.Store[*domain.CustomerPoint],
	publisher rabbit.PublisherInterface,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		items:     items,
		backend:   backend,
		points:    points,
		publisher: publisher,
		log:       log,
	}
}

// Place inserts one order row and one line-item row per input tuple.
// When a line-item insert fails the order row is deleted best-effort
// and the cause comes back wrapped in domain.ErrOrderCreationFailed;
// callers must treat any failure as "order not placed" and keep their
// cart for retry. The backend pair is picked once at entry so both
// steps land in the same store.
func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "at least one line item is required")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.NewValidationError("quantity", "must be positive")
		}
		if it.UnitPrice < 0 {
			return nil, domain.NewValidationError("unitPrice", "must not be negative")
		}
	}
	switch in.Status {
	case "", domain.OrderPending, domain.OrderProcessing, domain.OrderServed, domain.OrderCancelled:
	default:
		return nil, domain.NewValidationError("status", "unknown order status")
	}
	switch in.PaymentStatus {
	case "", domain.PaymentUnpaid, domain.PaymentPaid, domain.PaymentRefunded:
	default:
		return nil, domain.NewValidationError("paymentStatus", "unknown payment status")
	}

	orders, items := s.backend.Pick()

	order := &domain.Order{
		OrderNumber:   uuid.NewString(),
		CustomerID:    in.CustomerID,
		Status:        in.Status,
		PaymentStatus: in.PaymentStatus,
		VoucherID:     in.VoucherID,
		DiscountID:    in.DiscountID,
	}
	if order.Status == "" {
		order.Status = domain.OrderPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = domain.PaymentUnpaid
	}
	for _, it := range in.Items {
		order.TotalAmount += it.UnitPrice * float64(it.Quantity)
	}

	if err := orders.Create(ctx, order); err != nil {
		s.backend.Trip(err)
		return nil, fmt.Errorf("%w: insert order: %w", domain.ErrOrderCreationFailed, err)
	}

	for _, it := range in.Items {
		item := &domain.OrderItem{
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Points:    it.Points,
		}
		if err := items.Create(ctx, item); err != nil {
			s.compensate(ctx, orders, order.ID)
			s.backend.Trip(err)
			return nil, fmt.Errorf("%w: insert line items: %w", domain.ErrOrderCreationFailed, err)
		}
		order.Items = append(order.Items, *item)
	}

	s.awardPoints(ctx, order)

	if s.publisher != nil {
		go s.publishCreated(context.Background(), order)
	}

	return order, nil
}

// compensate removes the order row after a failed line-item insert.
// Best-effort only: if the delete itself fails the order is orphaned
// and the caller still just learns "order not placed".
func (s *OrderService) compensate(ctx context.Context, orders repository.Store[*domain.Order], orderID uint64) {
	if err := orders.Delete(ctx, orderID); err != nil {
		s.log.Error("compensating delete failed, order row orphaned",
			zap.Uint64("orderId", orderID), zap.Error(err))
	}
}

func (s *OrderService) awardPoints(ctx context.Context, order *domain.Order) {
	if order.CustomerID == nil {
		return
	}
	total := 0
	for _, it := range order.Items {
		total += it.Points
	}
	if total <= 0 {
		return
	}
	entry := &domain.CustomerPoint{ProfileID: *order.CustomerID, OrderID: &order.ID, Points: total}
	if err := s.points.Create(ctx, entry); err != nil {
		s.log.Warn("failed to award loyalty points",
			zap.Uint64("orderId", order.ID), zap.Error(err))
	}
}

func (s *OrderService) publishCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		s.log.Warn("failed to publish order.created", zap.Uint64("orderId", order.ID), zap.Error(err))
	}
}

func (s *OrderService) Get(ctx context.Context, id uint64) (*domain.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = order.Items[:0]
	for _, it := range items {
		order.Items = append(order.Items, *it)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	switch status {
	case domain.OrderPending, domain.OrderProcessing, domain.OrderServed, domain.OrderCancelled:
	default:
		return nil, domain.NewValidationError("status", "unknown order status")
	}
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) MarkPaid(ctx context.Context, id uint64, status domain.PaymentStatus) (*domain.Order, error) {
	switch status {
	case domain.PaymentUnpaid, domain.PaymentPaid, domain.PaymentRefunded:
	default:
		return nil, domain.NewValidationError("paymentStatus", "unknown payment status")
	}
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	order.PaymentStatus = status
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Cancel(ctx context.Context, id uint64) (*domain.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	order.Status = domain.OrderCancelled
	order.CancelledAt = &now
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		evt := domain.OrderCancelledEvent{OrderID: order.ID, OrderNumber: order.OrderNumber, CancelledAt: now}
		go func() {
			if err := s.publisher.Publish(context.Background(), "order.cancelled", evt); err != nil {
				s.log.Warn("failed to publish order.cancelled", zap.Uint64("orderId", order.ID), zap.Error(err))
			}
		}()
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint64) error {
	return s.orders.Delete(ctx, id)
}
