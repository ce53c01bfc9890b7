package services

import (
	"context"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository"

	"go.uber.org/zap"
)

type InventoryInput struct {
	Name      string
	Unit      string
	Quantity  *float64
	Threshold *float64
}

type InventoryService struct {
	items repository.Store[*domain.InventoryItem]
	log   *zap.Logger
}

func NewInventoryService(items repository.Store[*domain.InventoryItem], log *zap.Logger) *InventoryService {
	return &InventoryService{items: items, log: log}
}

func (s *InventoryService) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.items.List(ctx)
}

// ListLowStock returns items at or below their restock threshold.
func (s *InventoryService) ListLowStock(ctx context.Context) ([]*domain.InventoryItem, error) {
	all, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.InventoryItem, 0)
	for _, it := range all {
		if it.LowStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *InventoryService) Create(ctx context.Context, in InventoryInput) (*domain.InventoryItem, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "must not be negative")
	}
	it := &domain.InventoryItem{Name: in.Name, Unit: in.Unit}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.Threshold != nil {
		it.Threshold = *in.Threshold
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *InventoryService) Update(ctx context.Context, id uint64, in InventoryInput) (*domain.InventoryItem, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		it.Name = in.Name
	}
	if in.Unit != "" {
		it.Unit = in.Unit
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.NewValidationError("quantity", "must not be negative")
		}
		it.Quantity = *in.Quantity
	}
	if in.Threshold != nil {
		it.Threshold = *in.Threshold
	}
	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Adjust shifts the on-hand quantity by delta, flooring at zero.
func (s *InventoryService) Adjust(ctx context.Context, id uint64, delta float64) (*domain.InventoryItem, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	it.Quantity += delta
	if it.Quantity < 0 {
		it.Quantity = 0
	}
	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}
	if it.LowStock() {
		s.log.Info("inventory item low on stock",
			zap.Uint64("itemId", it.ID), zap.String("name", it.Name), zap.Float64("quantity", it.Quantity))
	}
	return it, nil
}

func (s *InventoryService) Delete(ctx context.Context, id uint64) error {
	return s.items.Delete(ctx, id)
}
