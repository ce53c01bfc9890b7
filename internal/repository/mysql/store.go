package mysql

import (
	"context"
	"errors"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository"

	"gorm.io/gorm"
)

// Store is the gorm-backed repository shared by every entity. Soft
// deletion rides gorm.DeletedAt, so deleted rows never show up in any
// query; entities without a DeletedAt column are removed outright.
type Store[T any, PT interface {
	*T
	repository.Entity
}] struct {
	db *gorm.DB
}

func NewStore[T any, PT interface {
	*T
	repository.Entity
}](db *gorm.DB) *Store[T, PT] {
	return &Store[T, PT]{db: db}
}

func (s *Store[T, PT]) List(ctx context.Context) ([]PT, error) {
	var out []PT
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store[T, PT]) Get(ctx context.Context, id uint64) (PT, error) {
	e := PT(new(T))
	if err := s.db.WithContext(ctx).First(e, id).Error; err != nil {
		var zero PT
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, domain.ErrNotFound
		}
		return zero, err
	}
	return e, nil
}

func (s *Store[T, PT]) Create(ctx context.Context, e PT) error {
	return s.db.WithContext(ctx).Create(e).Error
}

// Save writes every column of the row. The updated_at stamp always
// changes, so zero rows affected means the target is gone or deleted.
func (s *Store[T, PT]) Save(ctx context.Context, e PT) error {
	res := s.db.WithContext(ctx).Model(e).Select("*").Omit("id", "created_at").Updates(e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store[T, PT]) Delete(ctx context.Context, id uint64) error {
	e := PT(new(T))
	e.SetID(id)
	res := s.db.WithContext(ctx).Delete(e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// OrderItemStore extends the generic store with the by-order read used
// when assembling a placed order.
type OrderItemStore struct {
	*Store[domain.OrderItem, *domain.OrderItem]
	db *gorm.DB
}

func NewOrderItemStore(db *gorm.DB) *OrderItemStore {
	return &OrderItemStore{Store: NewStore[domain.OrderItem](db), db: db}
}

func (s *OrderItemStore) ListByOrder(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error) {
	var out []*domain.OrderItem
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProfileStore extends the generic store with the email lookup used by
// sign-in and sign-up. Email columns use the default case-insensitive
// collation, so the equality match covers case variants.
type ProfileStore struct {
	*Store[domain.Profile, *domain.Profile]
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{Store: NewStore[domain.Profile](db), db: db}
}

func (s *ProfileStore) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var p domain.Profile
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var (
	_ repository.Store[*domain.Product] = (*Store[domain.Product, *domain.Product])(nil)
	_ repository.OrderItemStore         = (*OrderItemStore)(nil)
	_ repository.ProfileStore           = (*ProfileStore)(nil)
)
