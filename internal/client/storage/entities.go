package storage

import (
	"context"

	"github.com/mobo-open-source/fieldsync/internal/models"
)

//go:generate moq -out entitystore_mock.go . EntityStore

// EntityStore defines interface for the durable cache of remote snapshots.
// It is pure storage: snapshot contents are opaque and never validated.
type EntityStore interface {
	// Put stores or replaces the snapshot for (kind, id).
	// The upsert is atomic: a failed Put leaves the prior snapshot intact.
	Put(ctx context.Context, entity *models.CachedEntity) error

	// Get retrieves the snapshot for (kind, id).
	// Returns ErrEntityNotFound if no snapshot exists.
	Get(ctx context.Context, kind models.EntityKind, id string) (*models.CachedEntity, error)

	// Query returns all snapshots of a kind matching the predicate.
	// A nil predicate matches everything.
	Query(ctx context.Context, kind models.EntityKind, match func(*models.CachedEntity) bool) ([]*models.CachedEntity, error)

	// Delete removes the snapshot for (kind, id).
	// Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, kind models.EntityKind, id string) error
}
