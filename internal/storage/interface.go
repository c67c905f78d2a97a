package storage

import "github.com/calebmarsh/tend/internal/models"

// Provider owns the single persisted user document. Implementations are not
// safe for concurrent use; tend assumes one process and one writer per
// storage path, and the last writer wins.
type Provider interface {
	// Load returns the persisted document. A missing or unreadable
	// document is not an error: Load falls back to a fresh default
	// document, so corruption and absence are indistinguishable to the
	// caller.
	Load() (models.UserData, error)

	// Save persists the full document, replacing any prior value.
	Save(models.UserData) error

	Close() error

	// Path returns the storage file path.
	Path() string
}
