package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/calebmarsh/tend/internal/constants"
	"github.com/calebmarsh/tend/internal/models"
)

// JSONStore persists the user document as a single indented JSON file.
type JSONStore struct {
	path string
	now  func() time.Time
}

// NewJSONStore returns a store over path. The clock stamps the default
// document on first run; callers that inject their own clock elsewhere must
// pass the same one here so the first-run login date agrees with theirs.
func NewJSONStore(path string, now func() time.Time) *JSONStore {
	return &JSONStore{
		path: path,
		now:  now,
	}
}

func (s *JSONStore) today() string {
	return s.now().Format(constants.DateFormat)
}

// Load reads the document from disk. A missing file means first run; an
// unparsable file is treated the same way rather than surfaced, so the app
// always starts from a usable document.
func (s *JSONStore) Load() (models.UserData, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultUserData(s.today()), nil
	}

	var doc models.UserData
	if err := json.Unmarshal(data, &doc); err != nil {
		return DefaultUserData(s.today()), nil
	}

	if doc.ActiveHabits == nil {
		doc.ActiveHabits = []models.HabitProgress{}
	}

	return doc, nil
}

// Save writes the full document, replacing any prior value. Write failures
// propagate to the caller; there is no retry.
func (s *JSONStore) Save(doc models.UserData) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
