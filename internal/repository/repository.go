package repository

import (
	"context"
	"time"

	"coffeepos/internal/domain"
)

// Entity is the contract every stored row satisfies through its
// embedded domain.Model or domain.BareModel.
type Entity interface {
	GetID() uint64
	SetID(uint64)
	GetCreatedAt() time.Time
	StampCreated(time.Time)
	StampUpdated(time.Time)
}

// SoftDeletable marks entities that are deleted by stamping a timestamp
// rather than removing the row. Entities without it are hard-deleted.
type SoftDeletable interface {
	MarkDeleted(time.Time)
	IsDeleted() bool
}

// Store is the uniform CRUD contract every entity repository follows.
// List returns non-deleted rows newest first; Get and Save report
// domain.ErrNotFound when the target row is absent or deleted; Save
// writes the full row, so callers do read-modify-write for partial
// updates.
type Store[E Entity] interface {
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id uint64) (E, error)
	Create(ctx context.Context, e E) error
	Save(ctx context.Context, e E) error
	Delete(ctx context.Context, id uint64) error
}

// OrderItemStore adds the one filtered read the order flow needs on top
// of the uniform contract.
type OrderItemStore interface {
	Store[*domain.OrderItem]
	ListByOrder(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error)
}

// ProfileStore adds the email lookup the auth flows need. The match is
// case-insensitive; domain.ErrNotFound when no profile carries the
// email.
type ProfileStore interface {
	Store[*domain.Profile]
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
}
