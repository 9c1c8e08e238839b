package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	// RegisterUser creates an account with a bcrypt-hashed password.
	// Username and email must be unused.
	RegisterUser(ctx context.Context, req RegisterRequest) (*User, error)

	GetUser(ctx context.Context, id string) (*User, error)

	// ListUsers returns all accounts, used by participant pickers.
	ListUsers(ctx context.Context) ([]*User, error)
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Location string `json:"location"`
}
