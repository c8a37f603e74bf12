// Package auth implements the login gate in front of every screen.
//
// Without a configured password hash the gate accepts any non-empty
// submission. That mode is a placeholder and not a security boundary.
package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when verification fails.
var ErrInvalidCredentials = errors.New("credenciais inválidas")

// Gate verifies login submissions.
type Gate struct {
	email        string
	passwordHash []byte
}

// NewGate builds a gate. An empty passwordHash selects open mode. A non-empty
// email restricts login to that address (compared case-insensitively).
func NewGate(email, passwordHash string) *Gate {
	g := &Gate{email: strings.TrimSpace(email)}
	if h := strings.TrimSpace(passwordHash); h != "" {
		g.passwordHash = []byte(h)
	}
	return g
}

// Open reports whether the gate accepts any submission.
func (g *Gate) Open() bool { return len(g.passwordHash) == 0 }

// Verify checks a submission.
func (g *Gate) Verify(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}
	if g.email != "" && !strings.EqualFold(g.email, email) {
		return ErrInvalidCredentials
	}
	if g.Open() {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for the auth.password_hash setting.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
