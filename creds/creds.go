// Package creds loads the credential file and verifies passwords. The file
// maps usernames to bcrypt hashes and is read-only at runtime; accounts are
// provisioned out of band.
package creds

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// dummyHash keeps verification cost flat for unknown usernames: the compare
// runs against this hash instead of returning early.
var dummyHash = mustDummyHash()

func mustDummyHash() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("contact-list-dummy"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("generating fallback hash: %v", err))
	}
	return hash
}

// Credentials maps username to bcrypt password hash.
type Credentials map[string]string

// Verify reports whether password matches the stored hash for username.
// Unknown usernames always fail.
func (c Credentials) Verify(username, password string) bool {
	hash, ok := c[username]
	if !ok {
		hash = string(dummyHash)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return ok && err == nil
}

// Store reads the credential file.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading credential file: %w", err)
	}
	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing credential file %s: %w", s.path, err)
	}
	return creds, nil
}

// HashPassword produces a bcrypt hash suitable for the credential file.
// Used by provisioning and tests; the application never writes the file.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
