package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/mobo-open-source/fieldsync/internal/client/storage"
	"github.com/mobo-open-source/fieldsync/internal/models"
)

// Enqueue stores a new pending mutation under its Key().
// An existing Queued/Failed/Conflict entry with the same key is replaced:
// payload fields are merged (new values win), attempts reset, status back
// to Queued. Enqueuing over a Syncing entry returns ErrMutationSyncing.
func (s *Storage) Enqueue(ctx context.Context, mutation *models.PendingMutation) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	id := mutation.Key()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return fmt.Errorf("mutations bucket not found")
		}

		entry := mutation.Clone()
		entry.ID = id
		entry.Status = models.MutationStatusQueued
		entry.Attempts = 0
		entry.LastError = ""
		entry.ConflictDetail = ""
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = time.Now().UTC()
		}

		// Уже есть запись с таким ключом - заменяем, а не дублируем
		if data := bucket.Get([]byte(id)); data != nil {
			var existing models.PendingMutation
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal existing entry: %w", err)
			}

			if existing.Status == models.MutationStatusSyncing {
				return storage.ErrMutationSyncing
			}

			// Сохраняем исходный порядок в очереди
			entry.CreatedAt = existing.CreatedAt

			// Мержим payload: новые поля выигрывают
			merged := make(map[string]string, len(existing.Payload)+len(entry.Payload))
			for k, v := range existing.Payload {
				merged[k] = v
			}
			for k, v := range entry.Payload {
				merged[k] = v
			}
			entry.Payload = merged
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal mutation: %w", err)
		}

		if err := bucket.Put([]byte(id), data); err != nil {
			return fmt.Errorf("failed to save mutation: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrMutationSyncing {
			return "", err
		}
		return "", fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return id, nil
}

// GetMutation retrieves a mutation by ID
func (s *Storage) GetMutation(ctx context.Context, id string) (*models.PendingMutation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var mutation *models.PendingMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return storage.ErrMutationNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrMutationNotFound
		}

		mutation = &models.PendingMutation{}
		if err := json.Unmarshal(data, mutation); err != nil {
			return fmt.Errorf("failed to unmarshal mutation: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return mutation, nil
}

// List returns mutations matching the filter, ordered oldest-first.
func (s *Storage) List(ctx context.Context, filter storage.ListFilter) ([]*models.PendingMutation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var mutations []*models.PendingMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var mutation models.PendingMutation
			if err := json.Unmarshal(v, &mutation); err != nil {
				return fmt.Errorf("failed to unmarshal mutation: %w", err)
			}

			if filter.ShipmentID != "" && mutation.ShipmentID != filter.ShipmentID {
				return nil
			}
			if len(filter.Statuses) > 0 && !statusIn(mutation.Status, filter.Statuses) {
				return nil
			}

			mutations = append(mutations, &mutation)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list mutations: %w", err)
	}

	// Старые записи первыми; при равном времени - детерминированно по ID
	sort.Slice(mutations, func(i, j int) bool {
		if mutations[i].CreatedAt.Equal(mutations[j].CreatedAt) {
			return mutations[i].ID < mutations[j].ID
		}
		return mutations[i].CreatedAt.Before(mutations[j].CreatedAt)
	})

	return mutations, nil
}

// MarkSyncing transitions an entry to Syncing before a replay attempt.
func (s *Storage) MarkSyncing(ctx context.Context, id string) error {
	return s.updateMutation(id, func(m *models.PendingMutation) {
		m.Status = models.MutationStatusSyncing
	})
}

// MarkSucceeded removes the entry: the remote system confirmed it.
func (s *Storage) MarkSucceeded(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return storage.ErrMutationNotFound
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrMutationNotFound
		}

		return bucket.Delete([]byte(id))
	})

	if err != nil {
		if err == storage.ErrMutationNotFound {
			return err
		}
		return fmt.Errorf("mark succeeded transaction failed: %w", err)
	}

	return nil
}

// MarkFailed records a transport-level replay failure.
func (s *Storage) MarkFailed(ctx context.Context, id string, cause error) error {
	return s.updateMutation(id, func(m *models.PendingMutation) {
		m.Status = models.MutationStatusFailed
		m.Attempts++
		if cause != nil {
			m.LastError = cause.Error()
		}
	})
}

// MarkConflict records an incompatible remote divergence.
func (s *Storage) MarkConflict(ctx context.Context, id string, detail string) error {
	return s.updateMutation(id, func(m *models.PendingMutation) {
		m.Status = models.MutationStatusConflict
		m.ConflictDetail = detail
	})
}

// Discard removes a queued intent on explicit user request.
// A Syncing entry cannot be discarded until its in-flight attempt settles.
func (s *Storage) Discard(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return storage.ErrMutationNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrMutationNotFound
		}

		var mutation models.PendingMutation
		if err := json.Unmarshal(data, &mutation); err != nil {
			return fmt.Errorf("failed to unmarshal mutation: %w", err)
		}

		if mutation.Status == models.MutationStatusSyncing {
			return storage.ErrMutationSyncing
		}

		return bucket.Delete([]byte(id))
	})

	if err != nil {
		if err == storage.ErrMutationNotFound || err == storage.ErrMutationSyncing {
			return err
		}
		return fmt.Errorf("discard transaction failed: %w", err)
	}

	return nil
}

// updateMutation применяет переход состояния к записи очереди внутри одной
// транзакции, чтобы переходы по одной записи были сериализованы.
func (s *Storage) updateMutation(id string, apply func(*models.PendingMutation)) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return storage.ErrMutationNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrMutationNotFound
		}

		var mutation models.PendingMutation
		if err := json.Unmarshal(data, &mutation); err != nil {
			return fmt.Errorf("failed to unmarshal mutation: %w", err)
		}

		apply(&mutation)

		updated, err := json.Marshal(&mutation)
		if err != nil {
			return fmt.Errorf("failed to marshal updated mutation: %w", err)
		}

		if err := bucket.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to save mutation: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrMutationNotFound {
			return err
		}
		return fmt.Errorf("update transaction failed: %w", err)
	}

	return nil
}

func statusIn(status models.MutationStatus, statuses []models.MutationStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
