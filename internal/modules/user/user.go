package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role is the closed two-value partner role tag.
type Role string

const (
	RoleVendor      Role = "vendor"
	RoleDistributor Role = "distributor"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("username or email already taken")
)

// User represents a vendor or distributor account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Location     string    `json:"location"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
