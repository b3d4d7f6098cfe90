// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/JuanjoFeller/billwise/internal/models"
)

var (
	// ErrNotFound is returned when no document exists for the given id.
	ErrNotFound = errors.New("document not found")

	// ErrConflict is returned when a write loses a compare-and-swap race:
	// the document's revision moved since it was read.
	ErrConflict = errors.New("document was modified concurrently")
)

// Store is the document-store contract the services run against. Splits are
// read and written as whole documents; there is no field-level merge.
//
// Concurrency: plain whole-document overwrite would let two concurrent
// reconciliations silently clobber each other's participant updates. This
// interface deliberately upgrades that to a revision check: UpdateSplit only
// succeeds if the caller's revision still matches the stored one, and fails
// with ErrConflict otherwise. Callers surface the conflict; they do not merge.
type Store interface {
	// CreateSplit persists a new split document. The ID, CreatedAt and
	// Revision fields are populated by the store.
	CreateSplit(ctx context.Context, split *models.Split) error

	// GetSplit retrieves a split by id, including its current revision.
	// Returns ErrNotFound if no such document exists.
	GetSplit(ctx context.Context, id string) (*models.Split, error)

	// UpdateSplit overwrites the whole document, guarded by split.Revision.
	// On success the split's Revision is advanced; on a lost race it
	// returns ErrConflict and writes nothing.
	UpdateSplit(ctx context.Context, split *models.Split) error

	// ListSplitsByPayer returns the payer's splits, newest first.
	ListSplitsByPayer(ctx context.Context, payerID string) ([]*models.Split, error)

	// CreateUser inserts a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no
	// account exists, so callers can distinguish "absent" from failure.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by id. Returns (nil, nil) when absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
