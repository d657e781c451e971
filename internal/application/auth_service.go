package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	repo "github.com/motorentals/moto-rentals-api/internal/domain/repository"
	"github.com/motorentals/moto-rentals-api/pkg/helpers"
	"github.com/motorentals/moto-rentals-api/pkg/mailer"
	"github.com/motorentals/moto-rentals-api/pkg/uploader"
)

// AuthService handles signup and login.
type AuthService struct {
	Users      repo.UserRepository
	JWT        *helpers.JWTManager
	Uploads    uploader.Uploader
	Pub        *helpers.RabbitPublisher
	Logger     *logrus.Logger
	BcryptCost int
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, up uploader.Uploader, pub *helpers.RabbitPublisher, logger *logrus.Logger, bcryptCost int) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Uploads: up, Pub: pub, Logger: logger, BcryptCost: bcryptCost}
}

// DocumentUpload carries an optional multipart file into the service.
type DocumentUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// SignupInput is a validated signup request. DrivingLicense and Passport
// are optional document images.
type SignupInput struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	PhoneNumber    string
	DOB            time.Time
	IsForeigner    bool
	DrivingLicense *DocumentUpload
	Passport       *DocumentUpload
}

// Signup creates an unverified user with role "user". The password is
// stored as a bcrypt hash only.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  in.PhoneNumber,
		DOB:          in.DOB,
		IsForeigner:  in.IsForeigner,
		Role:         entity.RoleUser,
	}

	if in.DrivingLicense != nil {
		path, err := s.Uploads.Upload(ctx, "users", in.DrivingLicense.Filename, in.DrivingLicense.ContentType, in.DrivingLicense.Reader)
		if err != nil {
			return nil, err
		}
		u.DrivingLicense = path
	}
	if in.Passport != nil {
		path, err := s.Uploads.Upload(ctx, "users", in.Passport.Filename, in.Passport.ContentType, in.Passport.Reader)
		if err != nil {
			return nil, err
		}
		u.Passport = path
	}

	// Two concurrent signups can pass the existence check; the loser hits
	// the unique constraint on email.
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	// Best effort; signup never fails because the broker is down.
	if err := s.Pub.PublishJSON(ctx, mailer.EmailJob{
		To:   u.Email,
		Kind: mailer.KindWelcome,
		Name: u.FirstName,
	}); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
	}

	return u, nil
}

// Login verifies credentials and issues a signed bearer token carrying the
// user's id and role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, "", time.Time{}, err
	}
	if u == nil || !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}
