package services

import (
	"context"

	"coffeepos/internal/domain"
	"coffeepos/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ProfileInput struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string
	AvatarURL string
}

// ProfileService serves the customer and staff views of the shared
// profile table. The views are not separate storage: creates force the
// role, reads filter on it, and that role tag is the only thing
// distinguishing the two "entity types".
type ProfileService struct {
	profiles repository.Store[*domain.Profile]
	points   repository.Store[*domain.CustomerPoint]
	validate *validator.Validate
	log      *zap.Logger
}

func NewProfileService(profiles repository.Store[*domain.Profile], points repository.Store[*domain.CustomerPoint], log *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		points:   points,
		validate: validator.New(),
		log:      log,
	}
}

// checkInput runs the local pre-flight validation. Failures surface
// immediately and never reach a store, so they cannot flip the
// repository into demo mode.
func (s *ProfileService) checkInput(in ProfileInput) error {
	if err := s.validate.Struct(in); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			if fe.Tag() == "email" {
				return domain.NewValidationError("email", "invalid email address")
			}
			return domain.NewValidationError(fe.Field(), "required")
		}
		return err
	}
	return nil
}

func (s *ProfileService) listByRole(ctx context.Context, role domain.Role) ([]*domain.Profile, error) {
	all, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Profile, 0)
	for _, p := range all {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProfileService) createWithRole(ctx context.Context, in ProfileInput, role domain.Role) (*domain.Profile, error) {
	if err := s.checkInput(in); err != nil {
		return nil, err
	}
	p := &domain.Profile{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		AvatarURL: in.AvatarURL,
		Role:      role,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// updateWithRole applies the supplied fields to an existing profile of
// the expected role. A profile of another role is invisible to this
// view and reported as not found.
func (s *ProfileService) updateWithRole(ctx context.Context, id uint64, in ProfileInput, role domain.Role) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Role != role {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Email != "" {
		if err := s.validate.Var(in.Email, "email"); err != nil {
			return nil, domain.NewValidationError("email", "invalid email address")
		}
		p.Email = in.Email
	}
	if in.Phone != "" {
		p.Phone = in.Phone
	}
	if in.AvatarURL != "" {
		p.AvatarURL = in.AvatarURL
	}
	p.Role = role
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) ListCustomers(ctx context.Context) ([]*domain.Profile, error) {
	return s.listByRole(ctx, domain.RoleCustomer)
}

func (s *ProfileService) CreateCustomer(ctx context.Context, in ProfileInput) (*domain.Profile, error) {
	return s.createWithRole(ctx, in, domain.RoleCustomer)
}

func (s *ProfileService) UpdateCustomer(ctx context.Context, id uint64, in ProfileInput) (*domain.Profile, error) {
	return s.updateWithRole(ctx, id, in, domain.RoleCustomer)
}

func (s *ProfileService) DeleteCustomer(ctx context.Context, id uint64) error {
	return s.deleteWithRole(ctx, id, domain.RoleCustomer)
}

func (s *ProfileService) ListStaff(ctx context.Context) ([]*domain.Profile, error) {
	return s.listByRole(ctx, domain.RoleStaff)
}

func (s *ProfileService) CreateStaff(ctx context.Context, in ProfileInput) (*domain.Profile, error) {
	return s.createWithRole(ctx, in, domain.RoleStaff)
}

func (s *ProfileService) UpdateStaff(ctx context.Context, id uint64, in ProfileInput) (*domain.Profile, error) {
	return s.updateWithRole(ctx, id, in, domain.RoleStaff)
}

func (s *ProfileService) DeleteStaff(ctx context.Context, id uint64) error {
	return s.deleteWithRole(ctx, id, domain.RoleStaff)
}

func (s *ProfileService) deleteWithRole(ctx context.Context, id uint64, role domain.Role) error {
	p, err := s.profiles.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.Role != role {
		return domain.ErrNotFound
	}
	return s.profiles.Delete(ctx, id)
}

func (s *ProfileService) ListPoints(ctx context.Context) ([]*domain.CustomerPoint, error) {
	return s.points.List(ctx)
}

func (s *ProfileService) ListPointsByProfile(ctx context.Context, profileID uint64) ([]*domain.CustomerPoint, error) {
	all, err := s.points.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.CustomerPoint, 0)
	for _, cp := range all {
		if cp.ProfileID == profileID {
			out = append(out, cp)
		}
	}
	return out, nil
}

// PointsBalance sums the ledger for one profile.
func (s *ProfileService) PointsBalance(ctx context.Context, profileID uint64) (int, error) {
	entries, err := s.ListPointsByProfile(ctx, profileID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, cp := range entries {
		total += cp.Points
	}
	return total, nil
}

func (s *ProfileService) AwardPoints(ctx context.Context, profileID uint64, pts int, orderID *uint64) (*domain.CustomerPoint, error) {
	if pts <= 0 {
		return nil, domain.NewValidationError("points", "must be positive")
	}
	if _, err := s.profiles.Get(ctx, profileID); err != nil {
		return nil, err
	}
	cp := &domain.CustomerPoint{ProfileID: profileID, OrderID: orderID, Points: pts}
	if err := s.points.Create(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}
