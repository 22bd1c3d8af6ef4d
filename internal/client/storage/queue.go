package storage

import (
	"context"

	"github.com/mobo-open-source/fieldsync/internal/models"
)

//go:generate moq -out mutationqueue_mock.go . MutationQueue

// ListFilter narrows a MutationQueue.List call. Zero values match everything.
type ListFilter struct {
	ShipmentID string                  // only mutations for this shipment
	Statuses   []models.MutationStatus // only mutations in one of these states
}

// MutationQueue defines interface for the durable queue of not-yet-confirmed
// local mutations. Every state transition is persisted synchronously, so a
// process restart resumes with an accurate queue.
type MutationQueue interface {
	// Enqueue stores a new pending mutation and returns its queue ID.
	// If an entry with the same Key() already exists in Queued, Failed or
	// Conflict state it is replaced: the payload is merged (new fields win),
	// attempts reset and status returns to Queued. Enqueuing over a Syncing
	// entry returns ErrMutationSyncing.
	Enqueue(ctx context.Context, mutation *models.PendingMutation) (string, error)

	// GetMutation retrieves a mutation by ID.
	// Returns ErrMutationNotFound if the entry doesn't exist.
	GetMutation(ctx context.Context, id string) (*models.PendingMutation, error)

	// List returns mutations matching the filter, ordered oldest-first.
	List(ctx context.Context, filter ListFilter) ([]*models.PendingMutation, error)

	// MarkSyncing transitions an entry to Syncing before a replay attempt.
	MarkSyncing(ctx context.Context, id string) error

	// MarkSucceeded removes the entry: the remote system confirmed it.
	MarkSucceeded(ctx context.Context, id string) error

	// MarkFailed records a transport-level replay failure: increments
	// attempts, stores the error text and sets status back to Failed.
	MarkFailed(ctx context.Context, id string, cause error) error

	// MarkConflict records an incompatible remote divergence. Conflict
	// entries are never retried automatically.
	MarkConflict(ctx context.Context, id string, detail string) error

	// Discard removes a queued intent on explicit user request.
	// Returns ErrMutationSyncing while a replay attempt is in flight.
	Discard(ctx context.Context, id string) error
}
