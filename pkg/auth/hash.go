// -----------------------------------------------------------------------------
// Password Hashing
// -----------------------------------------------------------------------------
// bcrypt wrappers for storing and checking user passwords. Only the
// hash ever reaches the database.
// -----------------------------------------------------------------------------

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost factor. 12 keeps hashing slow enough for
// production use.
const HashCost = 12

// Hash hashes a plain text password with bcrypt.
func Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Check compares a plain text password against a stored bcrypt hash.
func Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
