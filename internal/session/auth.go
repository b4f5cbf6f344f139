package session

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/veeda241/DAC-website/internal/entity"
)

// AuthenticationProvider verifies a password for a known user. The demo
// implementation reproduces the original portal's behavior and is the
// default; swap in the bcrypt provider for real deployments.
type AuthenticationProvider interface {
	Verify(u entity.User, password string) bool
}

// DemoProvider accepts any non-empty password, except for the privileged
// admin account, which must match the configured literal exactly. This is
// demo-grade on purpose; it is isolated here so replacing it does not touch
// the login flow.
type DemoProvider struct {
	AdminEmail    string
	AdminPassword string
}

func (p DemoProvider) Verify(u entity.User, password string) bool {
	if strings.EqualFold(u.Email, p.AdminEmail) {
		return password == p.AdminPassword
	}
	return password != ""
}

// BcryptProvider checks the password against a stored bcrypt hash, looked
// up by user id. Users without a stored hash are rejected.
type BcryptProvider struct {
	// Hashes maps user id to bcrypt hash.
	Hashes map[string]string
}

func (p BcryptProvider) Verify(u entity.User, password string) bool {
	hash, ok := p.Hashes[u.ID]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
