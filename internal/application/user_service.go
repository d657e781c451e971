package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	repo "github.com/motorentals/moto-rentals-api/internal/domain/repository"
	"github.com/motorentals/moto-rentals-api/pkg/helpers"
	"github.com/motorentals/moto-rentals-api/pkg/mailer"
	"github.com/motorentals/moto-rentals-api/pkg/uploader"
)

// UserService covers profile access, the admin user listing, and document
// verification.
type UserService struct {
	Users  repo.UserRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger

	// BaseURL prefixes relative document paths when rendering to clients.
	BaseURL string
	// RequireDocs gates verification on document presence.
	RequireDocs bool
}

func NewUserService(users repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, baseURL string, requireDocs bool) *UserService {
	return &UserService{Users: users, Pub: pub, Logger: logger, BaseURL: baseURL, RequireDocs: requireDocs}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return s.getUser(ctx, userID)
}

// getUser maps a missing row to ErrUserNotFound and lets store failures
// propagate so they surface as server errors, not 404s.
func (s *UserService) getUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ProfileUpdate applies only the fields that were present in the request;
// a nil pointer means "leave unchanged", so an explicit empty string can
// still clear a clearable field.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*entity.User, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, f repo.ListFilter) ([]entity.User, int64, int64, error) {
	f = f.Normalize()
	users, total, err := s.Users.List(ctx, f)
	if err != nil {
		return nil, 0, 0, err
	}
	return users, total, f.TotalPages(total), nil
}

// Verify marks the user verified. Verifying an already-verified user is a
// no-op. When RequireDocs is set, the required documents must be on file.
func (s *UserService) Verify(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Verified {
		return u, nil
	}
	if s.RequireDocs && !u.HasVerificationDocs() {
		return nil, ErrMissingDocuments
	}
	u.Verified = true
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}

	if err := s.Pub.PublishJSON(ctx, mailer.EmailJob{
		To:       u.Email,
		Kind:     mailer.KindVerifyDecision,
		Name:     u.FirstName,
		Verified: true,
	}); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("verification email enqueue failed")
	}

	return u, nil
}

// DocumentURL renders a stored document reference as an absolute URL.
func (s *UserService) DocumentURL(path string) string {
	return uploader.AbsoluteURL(s.BaseURL, path)
}
