package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/globalsync/globalsync-backend/internal/modules/user"
)

const tokenTTL = 24 * time.Hour

type service struct {
	users  user.Service
	repo   user.Repository
	secret []byte
}

// NewService creates a new auth service signing tokens with the given secret.
func NewService(users user.Service, repo user.Repository, secret []byte) Service {
	return &service{users: users, repo: repo, secret: secret}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(u)
}

// Validate checks the one signup rule owned by this module: the password
// confirmation must be present and match.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ConfirmPassword, validation.Required,
			validation.In(r.Password).Error("passwords do not match")),
	)
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.RegisterUser(ctx, user.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
		Location: req.Location,
	})
	if err != nil {
		return nil, err
	}

	return s.openSession(u)
}

func (s *service) CurrentUser(ctx context.Context, userID string) (*user.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *service) openSession(u *user.User) (*Session, error) {
	now := time.Now()
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &Session{Token: signed, User: u}, nil
}
