package services

import (
	"context"
	"time"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository"

	"go.uber.org/zap"
)

type VoucherInput struct {
	Code      string
	Amount    float64
	ExpiresAt *time.Time
}

type DiscountInput struct {
	Name    string
	Percent float64
	Active  *bool
}

// PromoService owns vouchers and discounts. Vouchers are the one entity
// the backend hard-deletes.
type PromoService struct {
	vouchers  repository.Store[*domain.Voucher]
	discounts repository.Store[*domain.Discount]
	log       *zap.Logger
}

func NewPromoService(vouchers repository.Store[*domain.Voucher], discounts repository.Store[*domain.Discount], log *zap.Logger) *PromoService {
	return &PromoService{vouchers: vouchers, discounts: discounts, log: log}
}

func (s *PromoService) ListVouchers(ctx context.Context) ([]*domain.Voucher, error) {
	return s.vouchers.List(ctx)
}

func (s *PromoService) CreateVoucher(ctx context.Context, in VoucherInput) (*domain.Voucher, error) {
	if in.Code == "" {
		return nil, domain.NewValidationError("code", "required")
	}
	if in.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	v := &domain.Voucher{Code: in.Code, Amount: in.Amount, ExpiresAt: in.ExpiresAt}
	if err := s.vouchers.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *PromoService) UpdateVoucher(ctx context.Context, id uint64, in VoucherInput) (*domain.Voucher, error) {
	v, err := s.vouchers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Code != "" {
		v.Code = in.Code
	}
	if in.Amount > 0 {
		v.Amount = in.Amount
	}
	if in.ExpiresAt != nil {
		v.ExpiresAt = in.ExpiresAt
	}
	if err := s.vouchers.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *PromoService) DeleteVoucher(ctx context.Context, id uint64) error {
	return s.vouchers.Delete(ctx, id)
}

// RedeemVoucher resolves a voucher by code, rejecting expired ones.
func (s *PromoService) RedeemVoucher(ctx context.Context, code string) (*domain.Voucher, error) {
	all, err := s.vouchers.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range all {
		if v.Code == code {
			if v.Expired(time.Now()) {
				return nil, domain.NewValidationError("code", "voucher expired")
			}
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *PromoService) ListDiscounts(ctx context.Context) ([]*domain.Discount, error) {
	return s.discounts.List(ctx)
}

func (s *PromoService) CreateDiscount(ctx context.Context, in DiscountInput) (*domain.Discount, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if in.Percent <= 0 || in.Percent > 100 {
		return nil, domain.NewValidationError("percent", "must be between 0 and 100")
	}
	d := &domain.Discount{Name: in.Name, Percent: in.Percent, Active: true}
	if in.Active != nil {
		d.Active = *in.Active
	}
	if err := s.discounts.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *PromoService) UpdateDiscount(ctx context.Context, id uint64, in DiscountInput) (*domain.Discount, error) {
	d, err := s.discounts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		d.Name = in.Name
	}
	if in.Percent > 0 {
		if in.Percent > 100 {
			return nil, domain.NewValidationError("percent", "must be between 0 and 100")
		}
		d.Percent = in.Percent
	}
	if in.Active != nil {
		d.Active = *in.Active
	}
	if err := s.discounts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *PromoService) DeleteDiscount(ctx context.Context, id uint64) error {
	return s.discounts.Delete(ctx, id)
}
