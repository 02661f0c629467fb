// Package store is the accessor for the contact file. The whole collection
// is read on every load and rewritten on every save; there is no locking,
// caching, or partial update. The file is provisioned out of band, so a
// missing or malformed file is an error with no recovery path.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/VSTodd/contact-list/models"
)

// Store reads and writes a single YAML file holding the ordered contact
// collection. Order on disk is insertion order; callers sort for display.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the entire collection.
func (s *Store) Load() ([]models.Contact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading contact file: %w", err)
	}
	var contacts []models.Contact
	if err := yaml.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("parsing contact file %s: %w", s.path, err)
	}
	return contacts, nil
}

// Save serializes contacts and replaces the file in one rename, so readers
// never observe a half-written collection.
func (s *Store) Save(contacts []models.Contact) error {
	data, err := yaml.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("serializing contacts: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".contacts-*.yml")
	if err != nil {
		return fmt.Errorf("creating temp contact file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp contact file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp contact file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing contact file: %w", err)
	}
	return nil
}
