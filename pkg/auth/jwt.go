// -----------------------------------------------------------------------------
// JWT Package
// -----------------------------------------------------------------------------
// Issues and verifies the HS256 access tokens the API uses for
// authentication. Claims carry the user id, username and role so the
// middleware can authorize requests without a database round trip.
// -----------------------------------------------------------------------------

package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims are the claims embedded in every access token.
type JWTClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTConfig holds token signing and validation settings.
type JWTConfig struct {
	Secret         string
	Issuer         string
	ExpirationTime time.Duration
}

// DefaultJWTConfig returns development defaults. Production loads the
// secret from the environment via internal/config.
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:         "railway-dev-secret-change-me",
		Issuer:         "railway-reservation",
		ExpirationTime: 1 * time.Hour,
	}
}

// GenerateToken creates a signed access token for the given user.
func GenerateToken(userID int64, username, role string, config *JWTConfig) (string, error) {
	if config == nil {
		config = DefaultJWTConfig()
	}

	now := time.Now()

	claims := JWTClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.Issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(config.ExpirationTime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.Secret))
}

// ParseToken verifies a token's signature and validity window and
// returns its claims.
func ParseToken(tokenString string, config *JWTConfig) (*JWTClaims, error) {
	if config == nil {
		config = DefaultJWTConfig()
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Guards against algorithm confusion: only HMAC is accepted.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ExtractTokenFromHeader pulls the bearer token out of an Authorization
// header value. Returns "" when the header is not a bearer credential.
func ExtractTokenFromHeader(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
