package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/mobo-open-source/fieldsync/internal/client/storage"
	"github.com/mobo-open-source/fieldsync/internal/models"
)

// Put stores or replaces the snapshot for (kind, id).
// The write happens inside a single BoltDB transaction, so a failed Put
// leaves the prior snapshot untouched.
func (s *Storage) Put(ctx context.Context, entity *models.CachedEntity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем снимок в JSON
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal cached entity: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(entityBucket(entity.Kind))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(entity.ID), data); err != nil {
			return fmt.Errorf("failed to save entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Get retrieves the snapshot for (kind, id)
func (s *Storage) Get(ctx context.Context, kind models.EntityKind, id string) (*models.CachedEntity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entity *models.CachedEntity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(entityBucket(kind))
		if bucket == nil {
			return storage.ErrEntityNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrEntityNotFound
		}

		// Десериализуем
		entity = &models.CachedEntity{}
		if err := json.Unmarshal(data, entity); err != nil {
			return fmt.Errorf("failed to unmarshal entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entity, nil
}

// Query returns all snapshots of a kind matching the predicate.
// A nil predicate matches everything.
func (s *Storage) Query(ctx context.Context, kind models.EntityKind, match func(*models.CachedEntity) bool) ([]*models.CachedEntity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entities []*models.CachedEntity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(entityBucket(kind))
		if bucket == nil {
			// Нет bucket - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entity models.CachedEntity
			if err := json.Unmarshal(v, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}

			if match == nil || match(&entity) {
				entities = append(entities, &entity)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}

	return entities, nil
}

// Delete removes the snapshot for (kind, id).
// Deleting a missing snapshot is not an error.
func (s *Storage) Delete(ctx context.Context, kind models.EntityKind, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(entityBucket(kind))
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}
