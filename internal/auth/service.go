package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type SignUpInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Phone    string
}

// Service handles sign-up/sign-in/sign-out/reset over the shared
// profile table. Sessions are uuid bearer tokens with a TTL.
type Service struct {
	profiles repository.ProfileStore
	sessions Sessions
	ttl      time.Duration
	validate *validator.Validate
	log      *zap.Logger
}

func NewService(profiles repository.ProfileStore, sessions Sessions, ttl time.Duration, log *zap.Logger) *Service {
	return &Service{
		profiles: profiles,
		sessions: sessions,
		ttl:      ttl,
		validate: validator.New(),
		log:      log,
	}
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*domain.Profile, error) {
	if err := s.validate.Struct(in); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			fe := errs[0]
			switch fe.Tag() {
			case "email":
				return nil, domain.NewValidationError("email", "invalid email address")
			case "min":
				return nil, domain.NewValidationError("password", "must be at least 8 characters")
			default:
				return nil, domain.NewValidationError(strings.ToLower(fe.Field()), "required")
			}
		}
		return nil, err
	}

	if _, err := s.profiles.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.NewValidationError("email", "already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &domain.Profile{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         domain.RoleCustomer,
		PasswordHash: string(hash),
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (string, *domain.Profile, error) {
	p, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Put(ctx, token, p.ID, s.ttl); err != nil {
		return "", nil, err
	}
	return token, p, nil
}

func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.sessions.Del(ctx, token)
}

// ResetPassword replaces the password for the profile behind the email.
// The original surface has no email round trip; the reset is immediate.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < 8 {
		return domain.NewValidationError("password", "must be at least 8 characters")
	}
	p, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PasswordHash = string(hash)
	return s.profiles.Save(ctx, p)
}

// Profile resolves a bearer token back to its profile.
func (s *Service) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	id, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.profiles.Get(ctx, id)
}
