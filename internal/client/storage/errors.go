package storage

import "errors"

// Common client storage errors
var (
	// ErrEntityNotFound indicates that no cached snapshot exists for the key
	ErrEntityNotFound = errors.New("cached entity not found")

	// ErrMutationNotFound indicates that the queue entry doesn't exist
	ErrMutationNotFound = errors.New("pending mutation not found")

	// ErrMutationSyncing indicates that the entry has an in-flight replay
	// attempt and cannot be replaced or discarded until it settles
	ErrMutationSyncing = errors.New("pending mutation is syncing")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
