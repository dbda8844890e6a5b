// Package user models the identity store: a user is identified by an
// immutable username and carries a credential hash, an email and the
// global admin flag.
package user

import (
	"fmt"
	"strings"
	"time"

	vo "itm/internal/domain/user/valueobjects"
)

const maxUsernameLength = 64

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type User struct {
	username     string
	email        *vo.Email
	passwordHash string
	isAdmin      bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers a new user. The password is hashed here and never kept.
func NewUser(username string, email *vo.Email, password *vo.Password, isAdmin bool, hasher PasswordHasher) (*User, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if password == nil {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: hash,
		isAdmin:      isAdmin,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(username string, email *vo.Email, passwordHash string, isAdmin bool, createdAt, updatedAt time.Time) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ValidateUsername checks the shape of a username.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("username cannot exceed %d characters", maxUsernameLength)
	}
	if strings.ContainsAny(username, " \t\r\n/") {
		return fmt.Errorf("username cannot contain whitespace or '/'")
	}
	return nil
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() *vo.Email {
	return u.email
}

// PasswordHash is for the persistence mapper only.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// ChangeEmail replaces the email address.
func (u *User) ChangeEmail(email *vo.Email) error {
	if email == nil {
		return fmt.Errorf("email cannot be nil")
	}
	if u.email.Equals(email) {
		return nil
	}
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangePassword rehashes the credential.
func (u *User) ChangePassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}
	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// VerifyPassword returns an error when plain does not match the stored hash.
func (u *User) VerifyPassword(plain string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(plain, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}
