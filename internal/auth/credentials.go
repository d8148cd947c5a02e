package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore verifies the administrator login.
type CredentialStore interface {
	Verify(email, password string) bool
}

// BcryptCredentialStore holds exactly one administrator identity.
type BcryptCredentialStore struct {
	email string
	hash  []byte
}

// A hash of a random throwaway password; compared against on unknown e-mails so
// both failure paths cost one bcrypt comparison.
var decoyHash, _ = bcrypt.GenerateFromPassword([]byte("decoy-password-never-valid"), bcrypt.DefaultCost)

func NewBcryptCredentialStore(email, passwordHash string) (*BcryptCredentialStore, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("admin email is empty")
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}

	return &BcryptCredentialStore{
		email: email,
		hash:  []byte(passwordHash),
	}, nil
}

// NewBcryptCredentialStoreFromPassword hashes a plaintext password at startup.
func NewBcryptCredentialStoreFromPassword(email, password string) (*BcryptCredentialStore, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return NewBcryptCredentialStore(email, string(hashed))
}

func (s *BcryptCredentialStore) Verify(email, password string) bool {
	if normalizeEmail(email) != s.email {
		_ = bcrypt.CompareHashAndPassword(decoyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(s.hash, []byte(password)) == nil
}

func (s *BcryptCredentialStore) Email() string {
	return s.email
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
