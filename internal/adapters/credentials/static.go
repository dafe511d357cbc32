// Package credentials provides the account table the identity gate checks
// logins against.
package credentials

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/missiontracker/core/internal/ports"
)

// dummyHash is compared against when the username is unknown so a miss costs
// the same as a wrong password.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHiA1c6aWq2oK1b.Z3Ycx1h5r1Q0qGJ6"

// StaticStore is a fixed username -> secret table. Secrets are either
// plaintext or bcrypt hashes.
type StaticStore struct {
	accounts map[string]string
}

// NewStaticStore copies accounts so later changes to the map have no effect.
func NewStaticStore(accounts map[string]string) ports.CredentialStore {
	copied := make(map[string]string, len(accounts))
	for user, secret := range accounts {
		copied[user] = secret
	}
	return &StaticStore{accounts: copied}
}

// Verify compares case-sensitively.
func (s *StaticStore) Verify(username, password string) bool {
	secret, ok := s.accounts[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return false
	}

	if IsBcryptHash(secret) {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}

func (s *StaticStore) Exists(username string) bool {
	if username == "" {
		return false
	}
	_, ok := s.accounts[username]
	return ok
}

// IsBcryptHash reports whether secret looks like a bcrypt hash.
func IsBcryptHash(secret string) bool {
	return len(secret) == 60 &&
		(strings.HasPrefix(secret, "$2a$") || strings.HasPrefix(secret, "$2b$") || strings.HasPrefix(secret, "$2y$"))
}

// HashSecret bcrypts a secret for use in the accounts table.
func HashSecret(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
