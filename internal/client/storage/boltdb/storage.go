package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/mobo-open-source/fieldsync/internal/models"
)

var (
	// BoltDB bucket names
	bucketMutations = []byte("mutations")
)

// entityBucket возвращает имя bucket'а для типа кэшируемой записи
func entityBucket(kind models.EntityKind) []byte {
	return []byte("entities_" + string(kind))
}

// Storage represents BoltDB storage implementation for the client cache
// and the pending mutation queue.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	// Возвращаем в оборот записи, зависшие в Syncing после аварийного
	// завершения процесса
	if err := storage.recoverInFlight(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to recover in-flight mutations: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// recoverInFlight переводит записи очереди из Syncing в Failed. Статус
// Syncing живёт только внутри прохода синхронизации; запись, оставшаяся в
// нём на момент открытия базы, - след упавшего процесса. Подтверждения от
// сервера не было, поэтому попытка засчитывается и запись ждёт повтора.
func (s *Storage) recoverInFlight() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMutations)
		if bucket == nil {
			return nil
		}

		var stale []*models.PendingMutation

		err := bucket.ForEach(func(k, v []byte) error {
			var mutation models.PendingMutation
			if err := json.Unmarshal(v, &mutation); err != nil {
				return fmt.Errorf("failed to unmarshal mutation: %w", err)
			}
			if mutation.Status == models.MutationStatusSyncing {
				stale = append(stale, &mutation)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, mutation := range stale {
			mutation.Status = models.MutationStatusFailed
			mutation.Attempts++
			mutation.LastError = "replay interrupted by restart"

			data, err := json.Marshal(mutation)
			if err != nil {
				return fmt.Errorf("failed to marshal mutation: %w", err)
			}
			if err := bucket.Put([]byte(mutation.ID), data); err != nil {
				return fmt.Errorf("failed to save mutation: %w", err)
			}
		}

		return nil
	})
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		// Bucket для очереди мутаций
		if _, err := tx.CreateBucketIfNotExists(bucketMutations); err != nil {
			return fmt.Errorf("failed to create mutations bucket: %w", err)
		}

		// Bucket на каждый тип кэшируемой записи
		for _, kind := range models.AllEntityKinds {
			if _, err := tx.CreateBucketIfNotExists(entityBucket(kind)); err != nil {
				return fmt.Errorf("failed to create bucket for %s: %w", kind, err)
			}
		}

		return nil
	})
}
