// -----------------------------------------------------------------------------
// Auth Service
// -----------------------------------------------------------------------------
// Signup and login for the two roles the app knows. This layer is a
// caller of the booking core, not part of it; it owns nothing beyond
// the users relation and token issuing.
// -----------------------------------------------------------------------------

package services

import (
	"fmt"
	"strings"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
	"github.com/Atomicx56/Railway-Resevration/pkg/auth"
)

// UserStore is the user persistence contract.
type UserStore interface {
	Create(user *models.User) (int64, error)
	FindByUsername(username string) (*models.User, error)
}

type AuthService struct {
	users     UserStore
	jwtConfig *auth.JWTConfig
}

func NewAuthService(users UserStore, jwtConfig *auth.JWTConfig) *AuthService {
	return &AuthService{
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// Signup registers a new user with a bcrypt-hashed password.
func (s *AuthService) Signup(username, password, role string) (*models.User, error) {
	// 1. Validate.
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrInvalidUser)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", models.ErrInvalidUser)
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrInvalidUser, role)
	}

	// 2. Hash and persist. The unique index on username resolves
	// signup races; the loser gets ErrDuplicateUser.
	hashed, err := auth.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     role,
	}

	id, err := s.users.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	return user, nil
}

// Login verifies credentials and returns a signed access token. A
// missing user and a wrong password produce the same error, so the
// endpoint does not leak which usernames exist.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role, s.jwtConfig)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}
