package sync

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/mobo-open-source/fieldsync/internal/client/api"
	"github.com/mobo-open-source/fieldsync/internal/client/storage"
	"github.com/mobo-open-source/fieldsync/internal/models"
	"github.com/mobo-open-source/fieldsync/pkg/api"
)

func TestDrainQueueReplaysAllEntries(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return confirmedOutcome(shipmentID, models.ShipmentStateValidated), nil
		},
		UpdateHeaderFunc: func(ctx context.Context, shipmentID string, fields map[string]string) (*httpClient.Outcome, error) {
			return confirmedOutcome(shipmentID, models.ShipmentStateReady), nil
		},
	}
	conn := newStubConnectivity(false)
	svc, store := newTestService(t, apiMock, conn)

	// Копим изменения offline
	_, err := svc.RequestHeaderUpdate(ctx, "ship-1", map[string]string{"note": "updated"})
	require.NoError(t, err)
	_, err = svc.RequestValidate(ctx, "ship-2")
	require.NoError(t, err)
	_, err = svc.RequestValidate(ctx, "ship-3")
	require.NoError(t, err)

	conn.setOnline(true)

	result, err := svc.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 3, result.Succeeded)
	assert.Zero(t, result.Failed)
	assert.Zero(t, result.Conflicts)

	// Очередь пуста, каждой записи соответствует один вызов API
	mutations, err := svc.ListPendingMutations(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, mutations)
	assert.Len(t, apiMock.UpdateHeaderCalls(), 1)
	assert.Len(t, apiMock.ValidateCalls(), 2)

	// Кэш догнал сервер по каждой отгрузке
	for _, id := range []string{"ship-1", "ship-2", "ship-3"} {
		_, err := store.Get(ctx, models.EntityShipment, id)
		assert.NoError(t, err)
	}
}

func TestDrainAlreadyAppliedIsSuccess(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			// Другой клиент уже провалидировал отгрузку
			return &httpClient.Outcome{
				AlreadyApplied: true,
				Shipment:       &models.Shipment{ID: shipmentID, State: models.ShipmentStateValidated},
			}, nil
		},
	}
	conn := newStubConnectivity(false)
	svc, _ := newTestService(t, apiMock, conn)

	_, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)

	conn.setOnline(true)
	result, err := svc.DrainQueue(ctx)
	require.NoError(t, err)

	// Желаемое состояние достигнуто - это успех, а не конфликт
	assert.Equal(t, 1, result.Succeeded)
	assert.Zero(t, result.Conflicts)

	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Empty(t, mutations)
}

func TestDrainConflictSettledAndNeverRetried(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		CancelFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			// Отгрузку провалидировали удалённо, пока локально копилась отмена
			return nil, &httpClient.ConflictError{Code: "already_validated", Message: "shipment was validated remotely"}
		},
	}
	conn := newStubConnectivity(false)
	svc, _ := newTestService(t, apiMock, conn)

	_, err := svc.RequestCancel(ctx, "ship-1")
	require.NoError(t, err)

	conn.setOnline(true)
	result, err := svc.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)

	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	require.Len(t, mutations, 1)
	assert.Equal(t, models.MutationStatusConflict, mutations[0].Status)
	assert.Contains(t, mutations[0].ConflictDetail, "validated remotely")

	// Второй проход конфликтную запись не трогает
	result, err = svc.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Attempted)
	assert.Len(t, apiMock.CancelCalls(), 1)
}

func TestDrainDecisionRequiredSettlesAsConflict(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return &httpClient.Outcome{
				Decision: &api.DecisionDetails{Code: "partial_availability", Message: "2 of 5 units available"},
			}, nil
		},
	}
	conn := newStubConnectivity(false)
	svc, _ := newTestService(t, apiMock, conn)

	_, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)

	conn.setOnline(true)
	result, err := svc.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)

	// Replay не может принять бизнес-решение за пользователя
	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	require.Len(t, mutations, 1)
	assert.Equal(t, models.MutationStatusConflict, mutations[0].Status)
	assert.Contains(t, mutations[0].ConflictDetail, "2 of 5 units")
}

func TestDrainTransportErrorEndsPass(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			// Связь пропала на первой же записи
			return nil, &httpClient.TransportError{Err: errors.New("connection lost")}
		},
	}
	conn := newStubConnectivity(false)
	svc, _ := newTestService(t, apiMock, conn)

	_, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)
	_, err = svc.RequestValidate(ctx, "ship-2")
	require.NoError(t, err)

	conn.setOnline(true)
	result, err := svc.DrainQueue(ctx)
	require.NoError(t, err)

	// Проход прерван: одна попытка, остальные ждут следующего прохода
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, apiMock.ValidateCalls(), 1)

	mutations, err := svc.ListPendingMutations(ctx, "")
	require.NoError(t, err)
	require.Len(t, mutations, 2)

	// Ни одна запись не зависла в Syncing
	for _, m := range mutations {
		assert.NotEqual(t, models.MutationStatusSyncing, m.Status)
	}
}

func TestDrainFailedEntriesRetriedNextPass(t *testing.T) {
	ctx := context.Background()

	shouldFail := true
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			if shouldFail {
				return nil, &httpClient.TransportError{Err: errors.New("flaky network")}
			}
			return confirmedOutcome(shipmentID, models.ShipmentStateValidated), nil
		},
	}
	conn := newStubConnectivity(false)
	svc, _ := newTestService(t, apiMock, conn)

	_, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)

	conn.setOnline(true)

	// Первый проход падает транспортно
	result, err := svc.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)

	// Второй проход подбирает Failed-запись и доводит её до успеха
	shouldFail = false
	result, err = svc.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)

	mutations, err := svc.ListPendingMutations(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, mutations)
}

func TestDrainCacheWriteFailureStillSettlesSuccess(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return confirmedOutcome(shipmentID, models.ShipmentStateValidated), nil
		},
	}

	// Кэш, который отказывает на записи
	entities := &storage.EntityStoreMock{
		PutFunc: func(ctx context.Context, entity *models.CachedEntity) error {
			return errors.New("disk full")
		},
	}
	queue := newInMemoryQueue()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	conn := newStubConnectivity(true)
	svc := NewService(apiMock, entities, queue, conn, time.Minute, logger)

	_, err := queue.Enqueue(ctx, &models.PendingMutation{
		Kind:       models.MutationValidate,
		ShipmentID: "ship-1",
	})
	require.NoError(t, err)

	// Сервер уже применил операцию: запись обязана уйти из очереди,
	// несмотря на отказ локального кэша
	result, err := svc.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)

	mutations, err := queue.List(ctx, storage.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, mutations)
}

func TestDrainInProgressRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &httpClient.ClientAPIMock{}, newStubConnectivity(true))

	impl := svc.(*service)
	impl.draining.Store(true)

	_, err := svc.DrainQueue(ctx)
	assert.ErrorIs(t, err, ErrDrainInProgress)
}

func TestDrainEmitsEvents(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return confirmedOutcome(shipmentID, models.ShipmentStateValidated), nil
		},
		CancelFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return nil, &httpClient.ConflictError{Code: "already_validated"}
		},
	}
	conn := newStubConnectivity(false)
	svc, _ := newTestService(t, apiMock, conn)

	_, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)
	_, err = svc.RequestCancel(ctx, "ship-2")
	require.NoError(t, err)

	conn.setOnline(true)
	_, err = svc.DrainQueue(ctx)
	require.NoError(t, err)

	events := make(map[string]DrainOutcome)
	for i := 0; i < 2; i++ {
		select {
		case e := <-svc.Events():
			events[e.ShipmentID] = e.Result
		default:
			t.Fatal("expected a buffered drain event")
		}
	}

	assert.Equal(t, DrainSucceeded, events["ship-1"])
	assert.Equal(t, DrainConflict, events["ship-2"])
}

func TestRunDrainsOnBecameOnline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return confirmedOutcome(shipmentID, models.ShipmentStateValidated), nil
		},
	}
	conn := newStubConnectivity(false)
	svc, _ := newTestService(t, apiMock, conn)

	_, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)

	svc.Run(ctx)

	// Переход offline -> online запускает drain без ручного вмешательства
	conn.setOnline(true)

	require.Eventually(t, func() bool {
		mutations, err := svc.ListPendingMutations(ctx, "")
		return err == nil && len(mutations) == 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.Len(t, apiMock.ValidateCalls(), 1)
}

// TestOfflineEditReconnectScenario прогоняет полный сценарий: полевое
// редактирование без связи, проверка эффективного состояния, восстановление
// связи и автоматическая доставка изменений.
func TestOfflineEditReconnectScenario(t *testing.T) {
	ctx := context.Background()

	serverState := models.ShipmentStateReady
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			serverState = models.ShipmentStateValidated
			return confirmedOutcome(shipmentID, serverState), nil
		},
		UpdateHeaderFunc: func(ctx context.Context, shipmentID string, fields map[string]string) (*httpClient.Outcome, error) {
			return &httpClient.Outcome{
				Shipment: &models.Shipment{ID: shipmentID, State: serverState, Note: fields["note"]},
			}, nil
		},
	}
	conn := newStubConnectivity(false)
	svc, store := newTestService(t, apiMock, conn)

	// Исходный кэшированный снимок, полученный до потери связи
	data, err := json.Marshal(&models.Shipment{ID: "ship-1", State: models.ShipmentStateReady})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, &models.CachedEntity{
		Kind:      models.EntityShipment,
		ID:        "ship-1",
		Data:      data,
		FetchedAt: time.Now().UTC(),
	}))

	// Offline: правим примечание дважды и валидируем
	_, err = svc.RequestHeaderUpdate(ctx, "ship-1", map[string]string{"note": "first draft"})
	require.NoError(t, err)
	_, err = svc.RequestHeaderUpdate(ctx, "ship-1", map[string]string{"note": "final instructions"})
	require.NoError(t, err)
	_, err = svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)

	// Два редактирования схлопнулись в одну запись: в очереди ровно две
	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Len(t, mutations, 2)

	// Эффективное состояние показывает и правку, и ожидающую валидацию
	effective, err := svc.GetCachedShipment(ctx, "ship-1")
	require.NoError(t, err)
	assert.Equal(t, "final instructions", effective.Note)
	assert.Equal(t, models.ShipmentStateValidatePending, effective.State)
	assert.True(t, effective.PendingSync)

	// Связь вернулась - вручную гоним drain
	conn.setOnline(true)
	result, err := svc.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 2, result.Succeeded)

	// Header update ушёл ровно один раз и с последним значением
	require.Len(t, apiMock.UpdateHeaderCalls(), 1)
	assert.Equal(t, "final instructions", apiMock.UpdateHeaderCalls()[0].Fields["note"])
	require.Len(t, apiMock.ValidateCalls(), 1)

	// Очередь пуста, кэш подтверждён сервером, overlay больше ничего не добавляет
	mutations, err = svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Empty(t, mutations)

	final, err := svc.GetCachedShipment(ctx, "ship-1")
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentStateValidated, final.State)
	assert.False(t, final.PendingSync)
}

// newInMemoryQueue собирает MutationQueue на моках с состоянием в map,
// для тестов, которым нужно отказывающее хранилище рядом с живой очередью.
func newInMemoryQueue() *storage.MutationQueueMock {
	entries := make(map[string]*models.PendingMutation)

	q := &storage.MutationQueueMock{}
	q.EnqueueFunc = func(ctx context.Context, mutation *models.PendingMutation) (string, error) {
		entry := mutation.Clone()
		entry.ID = mutation.Key()
		entry.Status = models.MutationStatusQueued
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = time.Now().UTC()
		}
		entries[entry.ID] = entry
		return entry.ID, nil
	}
	q.GetMutationFunc = func(ctx context.Context, id string) (*models.PendingMutation, error) {
		m, ok := entries[id]
		if !ok {
			return nil, storage.ErrMutationNotFound
		}
		return m.Clone(), nil
	}
	q.ListFunc = func(ctx context.Context, filter storage.ListFilter) ([]*models.PendingMutation, error) {
		var out []*models.PendingMutation
		for _, m := range entries {
			if filter.ShipmentID != "" && m.ShipmentID != filter.ShipmentID {
				continue
			}
			if len(filter.Statuses) > 0 {
				match := false
				for _, s := range filter.Statuses {
					if m.Status == s {
						match = true
						break
					}
				}
				if !match {
					continue
				}
			}
			out = append(out, m.Clone())
		}
		return out, nil
	}
	q.MarkSyncingFunc = func(ctx context.Context, id string) error {
		m, ok := entries[id]
		if !ok {
			return storage.ErrMutationNotFound
		}
		m.Status = models.MutationStatusSyncing
		return nil
	}
	q.MarkSucceededFunc = func(ctx context.Context, id string) error {
		if _, ok := entries[id]; !ok {
			return storage.ErrMutationNotFound
		}
		delete(entries, id)
		return nil
	}
	q.MarkFailedFunc = func(ctx context.Context, id string, cause error) error {
		m, ok := entries[id]
		if !ok {
			return storage.ErrMutationNotFound
		}
		m.Status = models.MutationStatusFailed
		m.Attempts++
		if cause != nil {
			m.LastError = cause.Error()
		}
		return nil
	}
	q.MarkConflictFunc = func(ctx context.Context, id string, detail string) error {
		m, ok := entries[id]
		if !ok {
			return storage.ErrMutationNotFound
		}
		m.Status = models.MutationStatusConflict
		m.ConflictDetail = detail
		return nil
	}
	q.DiscardFunc = func(ctx context.Context, id string) error {
		if _, ok := entries[id]; !ok {
			return storage.ErrMutationNotFound
		}
		delete(entries, id)
		return nil
	}
	return q
}
