// -----------------------------------------------------------------------------
// User Model
// -----------------------------------------------------------------------------
// Users authenticate with username/password and carry one of two roles:
// admins manage trains, customers book and cancel seats.
// -----------------------------------------------------------------------------

package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleCustomer
}

// User is an account row. Password holds the bcrypt hash, never the
// plain text.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CheckPassword compares a plain text password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

