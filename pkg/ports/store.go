package ports

import (
	"context"
	"time"

	"github.com/aretw0/blanket/pkg/domain"
)

// ModelStore persists assembled model snapshots by case name.
// A model is immutable once stored; Save replaces the whole snapshot.
type ModelStore interface {
	// Save persists the model under the given case name.
	Save(ctx context.Context, name string, model *domain.Model) error

	// Load retrieves the model for a case name.
	// Returns domain.ErrModelNotFound if the case does not exist.
	Load(ctx context.Context, name string) (*domain.Model, error)

	// Delete removes the model for a case name. Deleting a missing case is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored case names.
	List(ctx context.Context) ([]string, error)
}

// UnlockFunc releases a lock obtained from a Locker.
type UnlockFunc func(ctx context.Context) error

// Locker provides mutual exclusion across processes sharing a ModelStore backend.
type Locker interface {
	// Lock blocks until the lock for key is held, the context is done, or the
	// backend fails. The lock expires after ttl if never released.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
