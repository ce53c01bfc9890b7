package auth

import (
	"context"
	"testing"
	"time"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *Service {
	return NewService(memory.NewProfileStore(), NewMemorySessions(), time.Hour, zap.NewNop())
}

func TestService_SignUpSignInRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.SignUp(ctx, SignUpInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, p.Role)
	assert.NotEqual(t, "sup3rsecret", p.PasswordHash)

	token, signedIn, err := svc.SignIn(ctx, "ana@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, p.ID, signedIn.ID)

	got, err := svc.Profile(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)

	require.NoError(t, svc.SignOut(ctx, token))
	_, err = svc.Profile(ctx, token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestService_SignUpValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		input SignUpInput
	}{
		{"missing name", SignUpInput{Email: "a@example.com", Password: "longenough"}},
		{"bad email", SignUpInput{Name: "Ana", Email: "nope", Password: "longenough"}},
		{"short password", SignUpInput{Name: "Ana", Email: "a@example.com", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tc.input)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestService_SignUpDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpInput{Name: "Ana", Email: "ana@example.com", Password: "sup3rsecret"})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, SignUpInput{Name: "Other", Email: "Ana@Example.com", Password: "sup3rsecret"})
	assert.True(t, domain.IsValidation(err))
}

func TestService_SignInWrongCredentials(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpInput{Name: "Ana", Email: "ana@example.com", Password: "sup3rsecret"})
	require.NoError(t, err)

	_, _, err = svc.SignIn(ctx, "ana@example.com", "wrongpass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.SignIn(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestService_ResetPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpInput{Name: "Ana", Email: "ana@example.com", Password: "oldpassword"})
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, "ana@example.com", "newpassword"))

	_, _, err = svc.SignIn(ctx, "ana@example.com", "oldpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	token, _, err := svc.SignIn(ctx, "ana@example.com", "newpassword")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.ErrorIs(t, svc.ResetPassword(ctx, "nobody@example.com", "newpassword"), domain.ErrNotFound)
	assert.True(t, domain.IsValidation(svc.ResetPassword(ctx, "ana@example.com", "short")))
}

func TestMemorySessions_Expiry(t *testing.T) {
	sessions := NewMemorySessions()
	ctx := context.Background()

	base := time.Now()
	sessions.now = func() time.Time { return base }
	require.NoError(t, sessions.Put(ctx, "tok", 7, time.Minute))

	id, err := sessions.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)

	sessions.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = sessions.Get(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}
