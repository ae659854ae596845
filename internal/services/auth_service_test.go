package services

import (
	"errors"
	"testing"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
	"github.com/Atomicx56/Railway-Resevration/pkg/auth"
)

// fakeUserStore is an in-memory UserStore with unique usernames.
type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(user *models.User) (int64, error) {
	if _, ok := f.users[user.Username]; ok {
		return 0, models.ErrDuplicateUser
	}
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	f.users[user.Username] = &stored
	return f.nextID, nil
}

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthService() *AuthService {
	return NewAuthService(newFakeUserStore(), auth.DefaultJWTConfig())
}

func TestSignupAndLogin(t *testing.T) {
	svc := newTestAuthService()

	user, err := svc.Signup("alice", "s3cret", models.RoleCustomer)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected a user id to be assigned")
	}
	if user.Password == "s3cret" {
		t.Error("plain text password must never be stored")
	}

	token, loggedIn, err := svc.Login("alice", "s3cret")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if loggedIn.Username != "alice" {
		t.Errorf("Expected user alice, got %q", loggedIn.Username)
	}

	claims, err := auth.ParseToken(token, auth.DefaultJWTConfig())
	if err != nil {
		t.Fatalf("Expected a parseable token, got: %v", err)
	}
	if claims.Username != "alice" || claims.Role != models.RoleCustomer {
		t.Errorf("token claims = %q/%q, want alice/customer", claims.Username, claims.Role)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Signup("bob", "pw", models.RoleAdmin); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	_, err := svc.Signup("bob", "other", models.RoleCustomer)
	if !errors.Is(err, models.ErrDuplicateUser) {
		t.Fatalf("Expected ErrDuplicateUser, got: %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name     string
		username string
		password string
		role     string
	}{
		{"empty username", "", "pw", models.RoleCustomer},
		{"empty password", "carol", "", models.RoleCustomer},
		{"unknown role", "carol", "pw", "superuser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(tt.username, tt.password, tt.role)
			if !errors.Is(err, models.ErrInvalidUser) {
				t.Fatalf("Expected ErrInvalidUser, got: %v", err)
			}
		})
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Signup("dave", "right", models.RoleCustomer); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, _, err := svc.Login("dave", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got: %v", err)
	}

	// An unknown user yields the same error as a wrong password.
	if _, _, err := svc.Login("nobody", "pw"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got: %v", err)
	}
}
