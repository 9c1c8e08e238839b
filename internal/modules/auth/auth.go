package auth

import (
	"context"
	"errors"

	"github.com/globalsync/globalsync-backend/internal/modules/user"
)

// ErrInvalidCredentials is returned for any login failure. The message is
// deliberately generic: unknown username and wrong password are not
// distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service defines the interface for authentication business logic.
type Service interface {
	// Login verifies credentials and returns a session with a signed token.
	Login(ctx context.Context, req LoginRequest) (*Session, error)

	// Signup creates an account and immediately opens a session for it.
	Signup(ctx context.Context, req SignupRequest) (*Session, error)

	// CurrentUser resolves the account behind an authenticated user ID.
	CurrentUser(ctx context.Context, userID string) (*user.User, error)
}

// Session is the response for a successful login or signup.
type Session struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the signup payload. ConfirmPassword must match Password;
// the remaining field rules live in user.RegisterRequest.
type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
	Location        string `json:"location"`
}
