package memory

import (
	"context"
	"testing"

	"coffeepos/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAssignsIncreasingIDs(t *testing.T) {
	store := NewStore(DemoProducts()...)
	ctx := context.Background()

	var got []uint64
	for i := 0; i < 3; i++ {
		p := &domain.Product{Name: "Mocha", Price: 4.00}
		require.NoError(t, store.Create(ctx, p))
		got = append(got, p.ID)
	}

	// Three seeded rows, so local ids continue at 4.
	assert.Equal(t, []uint64{4, 5, 6}, got)
}

func TestStore_SoftDeleteExcludesRow(t *testing.T) {
	store := NewStore[domain.Product]()
	ctx := context.Background()

	p := &domain.Product{Name: "Latte", Price: 3.50}
	require.NoError(t, store.Create(ctx, p))
	q := &domain.Product{Name: "Americano", Price: 2.50}
	require.NoError(t, store.Create(ctx, q))

	require.NoError(t, store.Delete(ctx, p.ID))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, q.ID, all[0].ID)

	_, err = store.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p.Price = 9.99
	assert.ErrorIs(t, store.Save(ctx, p), domain.ErrNotFound)
}

func TestStore_HardDeleteWithoutDeletionStamp(t *testing.T) {
	store := NewStore[domain.Voucher]()
	ctx := context.Background()

	v := &domain.Voucher{Code: "WELCOME10", Amount: 10}
	require.NoError(t, store.Create(ctx, v))
	require.NoError(t, store.Delete(ctx, v.ID))

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = store.Get(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := NewStore[domain.Category]()
	ctx := context.Background()

	first := &domain.Category{Name: "Coffee"}
	require.NoError(t, store.Create(ctx, first))
	second := &domain.Category{Name: "Tea"}
	require.NoError(t, store.Create(ctx, second))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Tea", all[0].Name)
	assert.Equal(t, "Coffee", all[1].Name)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore[domain.Product]()
	ctx := context.Background()

	p := &domain.Product{Name: "Latte", Price: 3.50}
	require.NoError(t, store.Create(ctx, p))

	got, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	got.Price = 99.0

	again, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.50, again.Price)
}

func TestStore_SaveUnknownID(t *testing.T) {
	store := NewStore[domain.Table]()
	tbl := &domain.Table{Number: 7}
	tbl.ID = 42
	assert.ErrorIs(t, store.Save(context.Background(), tbl), domain.ErrNotFound)
}

func TestProfileStore_FindByEmail(t *testing.T) {
	store := NewProfileStore()
	ctx := context.Background()

	p := &domain.Profile{Name: "Ana", Email: "ana@example.com", Role: domain.RoleCustomer}
	require.NoError(t, store.Create(ctx, p))

	got, err := store.FindByEmail(ctx, "Ana@Example.com")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = store.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Delete(ctx, p.ID))
	_, err = store.FindByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderItemStore_ListByOrder(t *testing.T) {
	store := NewOrderItemStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.OrderItem{OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: 2.50}))
	require.NoError(t, store.Create(ctx, &domain.OrderItem{OrderID: 2, ProductID: 3, Quantity: 1, UnitPrice: 3.00}))
	require.NoError(t, store.Create(ctx, &domain.OrderItem{OrderID: 1, ProductID: 2, Quantity: 1, UnitPrice: 3.00}))

	items, err := store.ListByOrder(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, uint64(1), it.OrderID)
	}
}
