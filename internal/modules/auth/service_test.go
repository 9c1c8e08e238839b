package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dgrijalva/jwt-go"

	"github.com/globalsync/globalsync-backend/internal/modules/user"
)

var testSecret = []byte("test-secret")

// memoryUserRepo backs both user.Service and the auth lookups in tests.
type memoryUserRepo struct {
	byUsername map[string]*user.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byUsername: make(map[string]*user.User)}
}

func (m *memoryUserRepo) CreateUser(_ context.Context, u *user.User) error {
	m.byUsername[u.Username] = u
	return nil
}

func (m *memoryUserRepo) GetUserByID(_ context.Context, id string) (*user.User, error) {
	for _, u := range m.byUsername {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (m *memoryUserRepo) GetUserByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.byUsername {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (m *memoryUserRepo) ListUsers(_ context.Context) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.byUsername {
		out = append(out, u)
	}
	return out, nil
}

func newTestService(t *testing.T) (Service, *memoryUserRepo) {
	t.Helper()
	repo := newMemoryUserRepo()
	users := user.NewService(repo)
	return NewService(users, repo, testSecret), repo
}

func signup(t *testing.T, svc Service, username string) *Session {
	t.Helper()
	session, err := svc.Signup(context.Background(), SignupRequest{
		Username:        username,
		Email:           username + "@example.com",
		Name:            "Rajesh Kumar",
		Password:        "password",
		ConfirmPassword: "password",
		Role:            "vendor",
		Location:        "Chennai, India",
	})
	if err != nil {
		t.Fatalf("Signup(%q): %v", username, err)
	}
	return session
}

func TestSignupOpensSession(t *testing.T) {
	svc, _ := newTestService(t)

	session := signup(t, svc, "vendor_zoho")
	if session.Token == "" {
		t.Error("expected a signed token")
	}
	if session.User == nil || session.User.Username != "vendor_zoho" {
		t.Errorf("session user = %+v, want vendor_zoho", session.User)
	}

	// the token subject must be the new account's id
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(session.Token, claims, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	if claims.Subject != session.User.ID.String() {
		t.Errorf("token subject = %q, want %q", claims.Subject, session.User.ID)
	}
}

func TestSignupPasswordMismatch(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Username:        "vendor_zoho",
		Email:           "vendor@zoho.com",
		Name:            "Rajesh Kumar",
		Password:        "password",
		ConfirmPassword: "passwrod",
		Role:            "vendor",
		Location:        "Chennai, India",
	})
	if err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc, "vendor_zoho")

	_, err := svc.Signup(context.Background(), SignupRequest{
		Username:        "vendor_zoho",
		Email:           "other@example.com",
		Name:            "Someone Else",
		Password:        "password",
		ConfirmPassword: "password",
		Role:            "distributor",
		Location:        "Berlin, Germany",
	})
	if !errors.Is(err, user.ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc, "vendor_zoho")

	session, err := svc.Login(context.Background(), LoginRequest{
		Username: "vendor_zoho",
		Password: "password",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token == "" || session.User.Username != "vendor_zoho" {
		t.Errorf("unexpected session: %+v", session)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc, "vendor_zoho")

	tests := []struct {
		name string
		req  LoginRequest
	}{
		{"unknown username", LoginRequest{Username: "nobody", Password: "password"}},
		{"wrong password", LoginRequest{Username: "vendor_zoho", Password: "letmein"}},
		{"empty username", LoginRequest{Password: "password"}},
		{"empty password", LoginRequest{Username: "vendor_zoho"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.req)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestService(t)
	session := signup(t, svc, "vendor_zoho")

	u, err := svc.CurrentUser(context.Background(), session.User.ID.String())
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if u.Username != "vendor_zoho" {
		t.Errorf("username = %q, want vendor_zoho", u.Username)
	}
}
