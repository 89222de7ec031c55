// Package credentials makes credential storage pluggable. The directory
// stores whatever the configured Hasher produces and the session manager
// verifies through the same interface, so switching from plaintext to a
// real hash changes no other component.
package credentials

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a supplied password into its stored form and checks a
// supplied password against a stored one.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(stored, supplied string) bool
}

// Plaintext stores passwords as given and compares by equality. This is
// the original site's behavior and the default, kept for round-trip
// compatibility with stores it wrote.
type Plaintext struct{}

func (Plaintext) Hash(password string) (string, error) {
	return password, nil
}

func (Plaintext) Verify(stored, supplied string) bool {
	return stored == supplied
}

// Bcrypt stores a salted bcrypt hash.
type Bcrypt struct {
	// Cost overrides bcrypt.DefaultCost when positive.
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

func (b Bcrypt) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
