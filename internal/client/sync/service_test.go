package sync

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/mobo-open-source/fieldsync/internal/client/api"
	"github.com/mobo-open-source/fieldsync/internal/client/storage"
	"github.com/mobo-open-source/fieldsync/internal/client/storage/boltdb"
	"github.com/mobo-open-source/fieldsync/internal/models"
	"github.com/mobo-open-source/fieldsync/pkg/api"
)

// stubConnectivity управляемый oracle для тестов
type stubConnectivity struct {
	ch     chan struct{}
	online atomic.Bool
}

func newStubConnectivity(online bool) *stubConnectivity {
	c := &stubConnectivity{ch: make(chan struct{}, 1)}
	c.online.Store(online)
	return c
}

func (c *stubConnectivity) CurrentBelief() bool        { return c.online.Load() }
func (c *stubConnectivity) Subscribe() <-chan struct{} { return c.ch }

func (c *stubConnectivity) setOnline(online bool) {
	was := c.online.Swap(online)
	if online && !was {
		c.ch <- struct{}{}
	}
}

// testService собирает координатор на реальном BoltDB хранилище и
// замоканном API клиенте
func newTestService(t *testing.T, apiMock *httpClient.ClientAPIMock, conn *stubConnectivity) (Service, *boltdb.Storage) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "sync_test.db")
	store, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(apiMock, store, store, conn, time.Minute, logger)
	return svc, store
}

func confirmedOutcome(shipmentID string, state models.ShipmentState) *httpClient.Outcome {
	return &httpClient.Outcome{
		Shipment: &models.Shipment{ID: shipmentID, State: state},
	}
}

func TestRequestValidateOnlineApplied(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return confirmedOutcome(shipmentID, models.ShipmentStateValidated), nil
		},
	}
	svc, store := newTestService(t, apiMock, newStubConnectivity(true))

	result, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.False(t, result.Queued())
	require.NotNil(t, result.Shipment)
	assert.Equal(t, models.ShipmentStateValidated, result.Shipment.State)

	// Кэш получил серверный снимок
	entity, err := store.Get(ctx, models.EntityShipment, "ship-1")
	require.NoError(t, err)
	var cached models.Shipment
	require.NoError(t, json.Unmarshal(entity.Data, &cached))
	assert.Equal(t, models.ShipmentStateValidated, cached.State)

	// Ничего не попало в очередь
	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Empty(t, mutations)
}

func TestRequestValidateOfflineQueued(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{} // любой вызов API - ошибка теста
	svc, _ := newTestService(t, apiMock, newStubConnectivity(false))

	result, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)
	assert.True(t, result.Queued())
	assert.False(t, result.Applied)
	assert.Equal(t, "validate/ship-1", result.MutationID)

	// Offline-запрос не трогает сеть
	assert.Empty(t, apiMock.ValidateCalls())
}

func TestRequestValidateOfflineTwiceDedupes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &httpClient.ClientAPIMock{}, newStubConnectivity(false))

	first, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)

	second, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)
	assert.Equal(t, first.MutationID, second.MutationID)

	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Len(t, mutations, 1)
}

func TestRequestTransportErrorQueued(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		CancelFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return nil, &httpClient.TransportError{Err: errors.New("connection reset")}
		},
	}
	svc, _ := newTestService(t, apiMock, newStubConnectivity(true))

	// Oracle верит в online, но вызов падает транспортно: мутация в очередь
	result, err := svc.RequestCancel(ctx, "ship-1")
	require.NoError(t, err)
	assert.True(t, result.Queued())
	assert.Equal(t, "cancel/ship-1", result.MutationID)
}

func TestRequestConflictErrorSurfaced(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		CancelFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return nil, &httpClient.ConflictError{Code: "already_validated"}
		},
	}
	svc, _ := newTestService(t, apiMock, newStubConnectivity(true))

	// Конфликт немедленного вызова всплывает как ошибка и не ставится в очередь
	_, err := svc.RequestCancel(ctx, "ship-1")
	require.Error(t, err)
	assert.True(t, httpClient.IsConflict(err))

	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Empty(t, mutations)
}

func TestRequestDecisionSurfacedNeverQueued(t *testing.T) {
	ctx := context.Background()
	decision := &api.DecisionDetails{
		Code:    "partial_availability",
		Message: "2 of 5 units available",
		Options: []api.DecisionOption{
			{Code: "partial", Label: "Validate available quantity"},
			{Code: "wait", Label: "Keep waiting for stock"},
		},
	}
	apiMock := &httpClient.ClientAPIMock{
		ValidateFunc: func(ctx context.Context, shipmentID string) (*httpClient.Outcome, error) {
			return &httpClient.Outcome{Decision: decision}, nil
		},
	}
	svc, _ := newTestService(t, apiMock, newStubConnectivity(true))

	result, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.False(t, result.Queued())
	require.NotNil(t, result.Decision)
	assert.Equal(t, "partial_availability", result.Decision.Code)

	// Decision point не порождает записи очереди
	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Empty(t, mutations)
}

func TestRequestLineAddGeneratesLineID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &httpClient.ClientAPIMock{}, newStubConnectivity(false))

	result, err := svc.RequestLineAdd(ctx, "ship-1", "", map[string]string{"description": "Box"})
	require.NoError(t, err)
	assert.True(t, result.Queued())

	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	require.Len(t, mutations, 1)
	assert.NotEmpty(t, mutations[0].LineID)
}

func TestResolveDecisionApplied(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ResolveDecisionFunc: func(ctx context.Context, shipmentID, choice string) (*httpClient.Outcome, error) {
			return confirmedOutcome(shipmentID, models.ShipmentStateValidated), nil
		},
	}
	svc, store := newTestService(t, apiMock, newStubConnectivity(true))

	result, err := svc.ResolveDecision(ctx, "ship-1", "partial")
	require.NoError(t, err)
	assert.True(t, result.Applied)

	require.Len(t, apiMock.ResolveDecisionCalls(), 1)
	assert.Equal(t, "partial", apiMock.ResolveDecisionCalls()[0].Choice)

	_, err = store.Get(ctx, models.EntityShipment, "ship-1")
	assert.NoError(t, err)
}

func TestResolveDecisionTransportErrorSurfaced(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		ResolveDecisionFunc: func(ctx context.Context, shipmentID, choice string) (*httpClient.Outcome, error) {
			return nil, &httpClient.TransportError{Err: errors.New("timeout")}
		},
	}
	svc, _ := newTestService(t, apiMock, newStubConnectivity(true))

	// Разрешение decision point требует живой связи и никогда не откладывается
	_, err := svc.ResolveDecision(ctx, "ship-1", "partial")
	require.Error(t, err)

	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Empty(t, mutations)
}

func TestGetCachedShipmentWithOverlay(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, &httpClient.ClientAPIMock{}, newStubConnectivity(false))

	// Кэшированный снимок
	data, err := json.Marshal(&models.Shipment{
		ID:    "ship-1",
		State: models.ShipmentStateReady,
		Note:  "server note",
	})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, &models.CachedEntity{
		Kind:      models.EntityShipment,
		ID:        "ship-1",
		Data:      data,
		FetchedAt: time.Now().UTC(),
	}))

	// Пока очередь пуста, читается чистый снимок
	got, err := svc.GetCachedShipment(ctx, "ship-1")
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentStateReady, got.State)
	assert.False(t, got.PendingSync)

	// Offline-валидация видна в эффективном состоянии сразу
	_, err = svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)

	got, err = svc.GetCachedShipment(ctx, "ship-1")
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentStateValidatePending, got.State)
	assert.True(t, got.PendingSync)
	assert.Equal(t, "server note", got.Note)
}

func TestGetCachedShipmentNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &httpClient.ClientAPIMock{}, newStubConnectivity(false))

	_, err := svc.GetCachedShipment(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestRefreshShipmentUpdatesCache(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		FetchShipmentFunc: func(ctx context.Context, shipmentID string) (*models.Shipment, error) {
			return &models.Shipment{ID: shipmentID, State: models.ShipmentStateReady, Reference: "WH/OUT/0001"}, nil
		},
	}
	svc, store := newTestService(t, apiMock, newStubConnectivity(true))

	shipment, err := svc.RefreshShipment(ctx, "ship-1")
	require.NoError(t, err)
	assert.Equal(t, "WH/OUT/0001", shipment.Reference)

	entity, err := store.Get(ctx, models.EntityShipment, "ship-1")
	require.NoError(t, err)
	assert.Equal(t, "ship-1", entity.ID)
}

func TestRefreshLinesDropsStale(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		FetchLinesFunc: func(ctx context.Context, shipmentID string) ([]*models.ShipmentLine, error) {
			return []*models.ShipmentLine{
				{ID: "line-1", ShipmentID: shipmentID, Description: "Box A"},
			}, nil
		},
	}
	svc, store := newTestService(t, apiMock, newStubConnectivity(true))

	// В кэше лежит позиция, которой на сервере уже нет
	staleData, err := json.Marshal(&models.ShipmentLine{ID: "line-gone", ShipmentID: "ship-1"})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, &models.CachedEntity{
		Kind:      models.EntityShipmentLine,
		ID:        "line-gone",
		Data:      staleData,
		FetchedAt: time.Now().UTC(),
	}))

	lines, err := svc.RefreshLines(ctx, "ship-1")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	_, err = store.Get(ctx, models.EntityShipmentLine, "line-gone")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	_, err = store.Get(ctx, models.EntityShipmentLine, "line-1")
	assert.NoError(t, err)
}

func TestRefreshReferencePullsAllSets(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		FetchContactsFunc: func(ctx context.Context) ([]*models.Contact, error) {
			return []*models.Contact{{ID: "c-1", Name: "Acme"}}, nil
		},
		FetchContactDetailFunc: func(ctx context.Context, contactID string) (json.RawMessage, error) {
			return json.RawMessage(`{"id":"c-1","deliveries":12}`), nil
		},
		FetchCatalogFunc: func(ctx context.Context) ([]*models.Product, error) {
			return []*models.Product{{ID: "p-1", SKU: "SKU-1"}}, nil
		},
		FetchOperatorsFunc: func(ctx context.Context) ([]*models.Operator, error) {
			return []*models.Operator{{ID: "op-1", Name: "Dana"}}, nil
		},
		FetchReverseShipmentsFunc: func(ctx context.Context) ([]*models.ReverseShipment, error) {
			return []*models.ReverseShipment{{ID: "rev-1", ShipmentID: "ship-1"}}, nil
		},
	}
	svc, store := newTestService(t, apiMock, newStubConnectivity(true))

	require.NoError(t, svc.RefreshReference(ctx))

	for _, check := range []struct {
		kind models.EntityKind
		id   string
	}{
		{models.EntityContact, "c-1"},
		{models.EntityContactDetail, "c-1"},
		{models.EntityProduct, "p-1"},
		{models.EntityOperator, "op-1"},
		{models.EntityReverseShipment, "rev-1"},
	} {
		_, err := store.Get(ctx, check.kind, check.id)
		assert.NoError(t, err, "expected cached %s/%s", check.kind, check.id)
	}
}

func TestRefreshReferenceDetailFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	apiMock := &httpClient.ClientAPIMock{
		FetchContactsFunc: func(ctx context.Context) ([]*models.Contact, error) {
			return []*models.Contact{{ID: "c-1"}}, nil
		},
		FetchContactDetailFunc: func(ctx context.Context, contactID string) (json.RawMessage, error) {
			return nil, &httpClient.TransportError{Err: errors.New("timeout")}
		},
		FetchCatalogFunc: func(ctx context.Context) ([]*models.Product, error) {
			return nil, nil
		},
		FetchOperatorsFunc: func(ctx context.Context) ([]*models.Operator, error) {
			return nil, nil
		},
		FetchReverseShipmentsFunc: func(ctx context.Context) ([]*models.ReverseShipment, error) {
			return nil, nil
		},
	}
	svc, store := newTestService(t, apiMock, newStubConnectivity(true))

	// Недоступная карточка контрагента не срывает весь refresh
	require.NoError(t, svc.RefreshReference(ctx))

	_, err := store.Get(ctx, models.EntityContact, "c-1")
	assert.NoError(t, err)

	_, err = store.Get(ctx, models.EntityContactDetail, "c-1")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestDiscardMutation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &httpClient.ClientAPIMock{}, newStubConnectivity(false))

	result, err := svc.RequestValidate(ctx, "ship-1")
	require.NoError(t, err)

	require.NoError(t, svc.DiscardMutation(ctx, result.MutationID))

	mutations, err := svc.ListPendingMutations(ctx, "ship-1")
	require.NoError(t, err)
	assert.Empty(t, mutations)
}
