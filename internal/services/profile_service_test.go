package services

import (
	"context"
	"testing"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMemoryProfileService() (*ProfileService, *memory.Store[domain.Profile, *domain.Profile], *memory.Store[domain.CustomerPoint, *domain.CustomerPoint]) {
	profiles := memory.NewStore[domain.Profile]()
	points := memory.NewStore[domain.CustomerPoint]()
	return NewProfileService(profiles, points, zap.NewNop()), profiles, points
}

func TestProfileService_RoleViewsAreDisjoint(t *testing.T) {
	svc, _, _ := newMemoryProfileService()
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, ProfileInput{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, customer.Role)

	staff, err := svc.CreateStaff(ctx, ProfileInput{Name: "Budi", Email: "budi@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, staff.Role)

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana", customers[0].Name)

	staffList, err := svc.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staffList, 1)
	assert.Equal(t, "Budi", staffList[0].Name)
}

func TestProfileService_WrongRoleIsNotFound(t *testing.T) {
	svc, _, _ := newMemoryProfileService()
	ctx := context.Background()

	staff, err := svc.CreateStaff(ctx, ProfileInput{Name: "Budi", Email: "budi@example.com"})
	require.NoError(t, err)

	// The staff row is invisible through the customer view.
	_, err = svc.UpdateCustomer(ctx, staff.ID, ProfileInput{Name: "Renamed"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.DeleteCustomer(ctx, staff.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Still intact on the staff side.
	staffList, err := svc.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staffList, 1)
	assert.Equal(t, "Budi", staffList[0].Name)
}

func TestProfileService_CreateValidation(t *testing.T) {
	svc, profiles, _ := newMemoryProfileService()
	ctx := context.Background()

	cases := []struct {
		name  string
		input ProfileInput
	}{
		{"missing name", ProfileInput{Email: "ana@example.com"}},
		{"missing email", ProfileInput{Name: "Ana"}},
		{"bad email", ProfileInput{Name: "Ana", Email: "not-an-email"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCustomer(ctx, tc.input)
			assert.True(t, domain.IsValidation(err))
		})
	}

	// Nothing reached the store.
	all, err := profiles.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProfileService_UpdateKeepsOmittedFields(t *testing.T) {
	svc, _, _ := newMemoryProfileService()
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, ProfileInput{Name: "Ana", Email: "ana@example.com", Phone: "0811"})
	require.NoError(t, err)

	got, err := svc.UpdateCustomer(ctx, c.ID, ProfileInput{Phone: "0822"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, "0822", got.Phone)
	assert.Equal(t, domain.RoleCustomer, got.Role)

	_, err = svc.UpdateCustomer(ctx, c.ID, ProfileInput{Email: "broken"})
	assert.True(t, domain.IsValidation(err))
}

func TestProfileService_PointsLedger(t *testing.T) {
	svc, _, _ := newMemoryProfileService()
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, ProfileInput{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = svc.AwardPoints(ctx, c.ID, 5, nil)
	require.NoError(t, err)
	orderID := uint64(3)
	_, err = svc.AwardPoints(ctx, c.ID, 7, &orderID)
	require.NoError(t, err)

	balance, err := svc.PointsBalance(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, balance)

	entries, err := svc.ListPointsByProfile(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = svc.AwardPoints(ctx, c.ID, 0, nil)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.AwardPoints(ctx, 999, 5, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
