// Package credentials provides pluggable password storage and comparison.
//
// Two schemes are available:
//   - "plain":  stores the password as-is; kept for parity with the sample data.
//   - "bcrypt": stores a bcrypt hash (golang.org/x/crypto/bcrypt).
//
// Callers select a scheme through configuration and use New to obtain a Verifier.
package credentials

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// ErrUnknownScheme is returned by New for an unsupported scheme name.
var ErrUnknownScheme = errors.New("unknown password scheme")

// Verifier turns a password into its stored form and checks candidates against it.
type Verifier interface {
	Hash(password string) (string, error)
	Verify(stored, candidate string) bool
}

// New returns the Verifier for scheme.
func New(scheme string) (Verifier, error) {
	switch scheme {
	case SchemePlain, "":
		return Plain{}, nil
	case SchemeBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
}

// Plain keeps passwords in clear text.
type Plain struct{}

func (Plain) Hash(password string) (string, error) {
	return password, nil
}

func (Plain) Verify(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Bcrypt stores bcrypt hashes.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(h), nil
}

func (Bcrypt) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
