// Package sync implements the sync coordinator: the single owner of the
// pending mutation lifecycle. It decides immediate-vs-queued execution for
// new mutation requests, drains the queue when connectivity returns and
// applies the conflict and idempotency policy on replay results.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/mobo-open-source/fieldsync/internal/client/api"
	"github.com/mobo-open-source/fieldsync/internal/client/storage"
	"github.com/mobo-open-source/fieldsync/internal/models"
	"github.com/mobo-open-source/fieldsync/pkg/api"
)

// Connectivity is the slice of the oracle the coordinator depends on.
type Connectivity interface {
	// CurrentBelief returns the last sampled reachability without blocking
	CurrentBelief() bool

	// Subscribe returns an edge-triggered became-online notification channel
	Subscribe() <-chan struct{}
}

// RequestResult is the settled outcome of a mutation request. Exactly one of
// the shapes applies:
//   - Applied: the remote system confirmed the operation now
//   - MutationID non-empty: the operation was queued for later replay
//   - Decision non-nil: a business choice is required before the operation
//     can complete; nothing was queued
type RequestResult struct {
	Shipment   *models.Shipment     // server-confirmed header, when returned
	Decision   *api.DecisionDetails // decision point surfaced to the caller
	MutationID string               // queue ID when the mutation was deferred
	Applied    bool
}

// Queued reports whether the request was deferred for later replay.
func (r *RequestResult) Queued() bool {
	return r.MutationID != ""
}

// Service определяет интерфейс координатора синхронизации
type Service interface {
	// Mutation requests (one per mutation kind)

	RequestValidate(ctx context.Context, shipmentID string) (*RequestResult, error)
	RequestCancel(ctx context.Context, shipmentID string) (*RequestResult, error)
	RequestHeaderUpdate(ctx context.Context, shipmentID string, fields map[string]string) (*RequestResult, error)
	RequestLineAdd(ctx context.Context, shipmentID, lineID string, fields map[string]string) (*RequestResult, error)
	RequestLineUpdate(ctx context.Context, shipmentID, lineID string, fields map[string]string) (*RequestResult, error)
	RequestLineDelete(ctx context.Context, shipmentID, lineID string) (*RequestResult, error)

	// ResolveDecision forwards the user's choice for a previously surfaced
	// decision point. Never queued: resolution needs live connectivity.
	ResolveDecision(ctx context.Context, shipmentID, choice string) (*RequestResult, error)

	// Queue draining

	// DrainQueue replays Queued and Failed entries oldest-first.
	// Returns ErrDrainInProgress if another pass is already running.
	DrainQueue(ctx context.Context) (*DrainResult, error)

	// Run wires drain passes to oracle became-online events and a coarse
	// periodic tick. Returns immediately.
	Run(ctx context.Context)

	// Events returns the stream of per-entry drain outcomes.
	Events() <-chan DrainEvent

	// Reads (effective state: cached snapshot + outstanding mutations)

	GetCachedShipment(ctx context.Context, shipmentID string) (*models.Shipment, error)
	GetCachedLines(ctx context.Context, shipmentID string) ([]*models.ShipmentLine, error)
	ListPendingMutations(ctx context.Context, shipmentID string) ([]*models.PendingMutation, error)
	DiscardMutation(ctx context.Context, mutationID string) error
	IsOnline() bool

	// Refresh (pull remote snapshots into the local cache)

	RefreshShipment(ctx context.Context, shipmentID string) (*models.Shipment, error)
	RefreshLines(ctx context.Context, shipmentID string) ([]*models.ShipmentLine, error)
	RefreshReference(ctx context.Context) error
}

// service coordinates the entity cache, the mutation queue, the oracle and
// the remote gateway. It is the only writer of mutation state transitions.
type service struct {
	apiClient     httpClient.ClientAPI
	entities      storage.EntityStore
	queue         storage.MutationQueue
	oracle        Connectivity
	logger        *slog.Logger
	events        chan DrainEvent
	drainInterval time.Duration
	draining      atomic.Bool
}

// NewService creates a new sync coordinator
func NewService(
	apiClient httpClient.ClientAPI,
	entities storage.EntityStore,
	queue storage.MutationQueue,
	oracle Connectivity,
	drainInterval time.Duration,
	logger *slog.Logger,
) Service {
	if drainInterval <= 0 {
		drainInterval = DefaultDrainInterval
	}
	return &service{
		apiClient:     apiClient,
		entities:      entities,
		queue:         queue,
		oracle:        oracle,
		logger:        logger,
		events:        make(chan DrainEvent, eventBufferSize),
		drainInterval: drainInterval,
	}
}

// RequestValidate запрашивает проведение отгрузки.
// Бизнес-проверки (непустой набор позиций и т.п.) выполняются вызывающим
// слоем до обращения сюда - координатор только исполняет.
func (s *service) RequestValidate(ctx context.Context, shipmentID string) (*RequestResult, error) {
	return s.request(ctx, &models.PendingMutation{
		Kind:       models.MutationValidate,
		ShipmentID: shipmentID,
	})
}

// RequestCancel запрашивает отмену отгрузки
func (s *service) RequestCancel(ctx context.Context, shipmentID string) (*RequestResult, error) {
	return s.request(ctx, &models.PendingMutation{
		Kind:       models.MutationCancel,
		ShipmentID: shipmentID,
	})
}

// RequestHeaderUpdate применяет diff полей заголовка
func (s *service) RequestHeaderUpdate(ctx context.Context, shipmentID string, fields map[string]string) (*RequestResult, error) {
	return s.request(ctx, &models.PendingMutation{
		Kind:       models.MutationUpdateHeader,
		ShipmentID: shipmentID,
		Payload:    fields,
	})
}

// RequestLineAdd добавляет товарную позицию. Пустой lineID генерируется
// локально, чтобы offline-добавление имело стабильный ключ очереди.
func (s *service) RequestLineAdd(ctx context.Context, shipmentID, lineID string, fields map[string]string) (*RequestResult, error) {
	if lineID == "" {
		lineID = uuid.New().String()
	}
	return s.request(ctx, &models.PendingMutation{
		Kind:       models.MutationAddLine,
		ShipmentID: shipmentID,
		LineID:     lineID,
		Payload:    fields,
	})
}

// RequestLineUpdate изменяет товарную позицию
func (s *service) RequestLineUpdate(ctx context.Context, shipmentID, lineID string, fields map[string]string) (*RequestResult, error) {
	return s.request(ctx, &models.PendingMutation{
		Kind:       models.MutationUpdateLine,
		ShipmentID: shipmentID,
		LineID:     lineID,
		Payload:    fields,
	})
}

// RequestLineDelete удаляет товарную позицию
func (s *service) RequestLineDelete(ctx context.Context, shipmentID, lineID string) (*RequestResult, error) {
	return s.request(ctx, &models.PendingMutation{
		Kind:       models.MutationDeleteLine,
		ShipmentID: shipmentID,
		LineID:     lineID,
	})
}

// ResolveDecision передаёт выбор пользователя серверу.
// Decision-shaped исходы никогда не ставятся в очередь, поэтому транспортная
// ошибка здесь возвращается вызывающему как есть.
func (s *service) ResolveDecision(ctx context.Context, shipmentID, choice string) (*RequestResult, error) {
	outcome, err := s.apiClient.ResolveDecision(ctx, shipmentID, choice)
	if err != nil {
		return nil, fmt.Errorf("resolve decision failed: %w", err)
	}

	if outcome.Decision != nil {
		return &RequestResult{Decision: outcome.Decision}, nil
	}

	if err := s.storeOutcome(ctx, models.MutationValidate, shipmentID, "", outcome); err != nil {
		return nil, err
	}

	return &RequestResult{Applied: true, Shipment: outcome.Shipment}, nil
}

// request выполняет общий путь "attempt remote, then settle" для новой
// мутации: online -> прямой вызов сервера, offline или транспортная
// ошибка -> очередь.
func (s *service) request(ctx context.Context, m *models.PendingMutation) (*RequestResult, error) {
	if !s.oracle.CurrentBelief() {
		return s.enqueue(ctx, m)
	}

	outcome, err := s.replay(ctx, m)
	if err != nil {
		if httpClient.IsTransport(err) {
			s.logger.Warn("remote call failed, queueing mutation",
				"kind", m.Kind,
				"shipment_id", m.ShipmentID,
				"error", err)
			return s.enqueue(ctx, m)
		}
		// Conflict-shaped и прочие ошибки немедленного вызова всегда
		// всплывают к вызывающему, в очередь не попадают
		return nil, err
	}

	// Decision point - валидный исход, требующий бизнес-решения.
	// Не ошибка и не повод для очереди.
	if outcome.Decision != nil {
		return &RequestResult{Decision: outcome.Decision}, nil
	}

	if err := s.storeOutcome(ctx, m.Kind, m.ShipmentID, m.LineID, outcome); err != nil {
		return nil, err
	}

	return &RequestResult{Applied: true, Shipment: outcome.Shipment}, nil
}

// enqueue ставит мутацию в очередь для последующего replay
func (s *service) enqueue(ctx context.Context, m *models.PendingMutation) (*RequestResult, error) {
	id, err := s.queue.Enqueue(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to queue mutation: %w", err)
	}

	s.logger.Info("mutation queued",
		"mutation_id", id,
		"kind", m.Kind,
		"shipment_id", m.ShipmentID)

	return &RequestResult{MutationID: id}, nil
}

// replay выполняет вызов шлюза, соответствующий типу мутации,
// с сохранённым payload. Общий путь для немедленных вызовов и drain.
func (s *service) replay(ctx context.Context, m *models.PendingMutation) (*httpClient.Outcome, error) {
	switch m.Kind {
	case models.MutationValidate:
		return s.apiClient.Validate(ctx, m.ShipmentID)
	case models.MutationCancel:
		return s.apiClient.Cancel(ctx, m.ShipmentID)
	case models.MutationUpdateHeader:
		return s.apiClient.UpdateHeader(ctx, m.ShipmentID, m.Payload)
	case models.MutationAddLine:
		return s.apiClient.AddLine(ctx, m.ShipmentID, m.LineID, m.Payload)
	case models.MutationUpdateLine:
		return s.apiClient.UpdateLine(ctx, m.ShipmentID, m.LineID, m.Payload)
	case models.MutationDeleteLine:
		return s.apiClient.DeleteLine(ctx, m.ShipmentID, m.LineID)
	default:
		return nil, fmt.Errorf("unknown mutation kind: %s", m.Kind)
	}
}

// storeOutcome обновляет кэш серверным состоянием из подтверждённого
// исхода. Кэш всегда получает копию сервера, никогда - оптимистичные
// локальные значения.
func (s *service) storeOutcome(ctx context.Context, kind models.MutationKind, shipmentID, lineID string, outcome *httpClient.Outcome) error {
	if outcome.Shipment != nil {
		if err := s.putShipment(ctx, outcome.Shipment); err != nil {
			return err
		}
	}

	switch {
	case kind == models.MutationDeleteLine:
		if err := s.entities.Delete(ctx, models.EntityShipmentLine, lineID); err != nil {
			return fmt.Errorf("failed to drop cached line: %w", err)
		}
	case outcome.Line != nil:
		if err := s.putLine(ctx, outcome.Line); err != nil {
			return err
		}
	}

	return nil
}

// Reads

// IsOnline returns the oracle's current belief without blocking.
func (s *service) IsOnline() bool {
	return s.oracle.CurrentBelief()
}

// GetCachedShipment возвращает эффективное состояние отгрузки: кэшированный
// снимок с наложенными незавершёнными локальными изменениями.
func (s *service) GetCachedShipment(ctx context.Context, shipmentID string) (*models.Shipment, error) {
	entity, err := s.entities.Get(ctx, models.EntityShipment, shipmentID)
	if err != nil {
		return nil, err
	}

	var shipment models.Shipment
	if err := json.Unmarshal(entity.Data, &shipment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached shipment: %w", err)
	}

	mutations, err := s.queue.List(ctx, storage.ListFilter{ShipmentID: shipmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mutations: %w", err)
	}

	return models.OverlayShipment(&shipment, mutations), nil
}

// GetCachedLines возвращает эффективный набор позиций отгрузки
func (s *service) GetCachedLines(ctx context.Context, shipmentID string) ([]*models.ShipmentLine, error) {
	entities, err := s.entities.Query(ctx, models.EntityShipmentLine, func(e *models.CachedEntity) bool {
		var line models.ShipmentLine
		if err := json.Unmarshal(e.Data, &line); err != nil {
			return false
		}
		return line.ShipmentID == shipmentID
	})
	if err != nil {
		return nil, err
	}

	lines := make([]*models.ShipmentLine, 0, len(entities))
	for _, e := range entities {
		var line models.ShipmentLine
		if err := json.Unmarshal(e.Data, &line); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached line: %w", err)
		}
		lines = append(lines, &line)
	}

	mutations, err := s.queue.List(ctx, storage.ListFilter{ShipmentID: shipmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mutations: %w", err)
	}

	return models.OverlayLines(lines, mutations), nil
}

// ListPendingMutations возвращает очередь (для offline-статуса в UI).
// Пустой shipmentID возвращает все записи.
func (s *service) ListPendingMutations(ctx context.Context, shipmentID string) ([]*models.PendingMutation, error) {
	return s.queue.List(ctx, storage.ListFilter{ShipmentID: shipmentID})
}

// DiscardMutation удаляет запись очереди по явному решению пользователя
func (s *service) DiscardMutation(ctx context.Context, mutationID string) error {
	if err := s.queue.Discard(ctx, mutationID); err != nil {
		return err
	}

	s.logger.Info("mutation discarded", "mutation_id", mutationID)
	return nil
}

// Refresh (pull)

// RefreshShipment обновляет кэшированный заголовок отгрузки с сервера
func (s *service) RefreshShipment(ctx context.Context, shipmentID string) (*models.Shipment, error) {
	shipment, err := s.apiClient.FetchShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := s.putShipment(ctx, shipment); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RefreshLines обновляет кэшированные позиции отгрузки с сервера.
// Позиции, исчезнувшие на сервере, удаляются из кэша.
func (s *service) RefreshLines(ctx context.Context, shipmentID string) ([]*models.ShipmentLine, error) {
	lines, err := s.apiClient.FetchLines(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	fresh := make(map[string]bool, len(lines))
	for _, line := range lines {
		if err := s.putLine(ctx, line); err != nil {
			return nil, err
		}
		fresh[line.ID] = true
	}

	// Убираем из кэша позиции, которых больше нет на сервере
	stale, err := s.entities.Query(ctx, models.EntityShipmentLine, func(e *models.CachedEntity) bool {
		if fresh[e.ID] {
			return false
		}
		var line models.ShipmentLine
		if err := json.Unmarshal(e.Data, &line); err != nil {
			return false
		}
		return line.ShipmentID == shipmentID
	})
	if err != nil {
		return nil, err
	}
	for _, e := range stale {
		if err := s.entities.Delete(ctx, models.EntityShipmentLine, e.ID); err != nil {
			return nil, fmt.Errorf("failed to drop stale line: %w", err)
		}
	}

	return lines, nil
}

// RefreshReference скачивает справочники (контрагенты с карточками, каталог,
// операторы, обратные отгрузки), чтобы устройству было с чем работать offline.
func (s *service) RefreshReference(ctx context.Context) error {
	contacts, err := s.apiClient.FetchContacts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch contacts: %w", err)
	}
	for _, contact := range contacts {
		if err := s.putEntity(ctx, models.EntityContact, contact.ID, contact); err != nil {
			return err
		}

		detail, err := s.apiClient.FetchContactDetail(ctx, contact.ID)
		if err != nil {
			// Карточка вторична: не срываем весь refresh из-за одной записи
			s.logger.Warn("failed to fetch contact detail", "contact_id", contact.ID, "error", err)
			continue
		}
		if err := s.entities.Put(ctx, &models.CachedEntity{
			Kind:      models.EntityContactDetail,
			ID:        contact.ID,
			Data:      detail,
			FetchedAt: time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("failed to cache contact detail: %w", err)
		}
	}

	products, err := s.apiClient.FetchCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}
	for _, product := range products {
		if err := s.putEntity(ctx, models.EntityProduct, product.ID, product); err != nil {
			return err
		}
	}

	operators, err := s.apiClient.FetchOperators(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch operators: %w", err)
	}
	for _, operator := range operators {
		if err := s.putEntity(ctx, models.EntityOperator, operator.ID, operator); err != nil {
			return err
		}
	}

	reverses, err := s.apiClient.FetchReverseShipments(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch reverse shipments: %w", err)
	}
	for _, reverse := range reverses {
		if err := s.putEntity(ctx, models.EntityReverseShipment, reverse.ID, reverse); err != nil {
			return err
		}
	}

	s.logger.Info("reference data refreshed",
		"contacts", len(contacts),
		"products", len(products),
		"operators", len(operators),
		"reverse_shipments", len(reverses))

	return nil
}

func (s *service) putShipment(ctx context.Context, shipment *models.Shipment) error {
	return s.putEntity(ctx, models.EntityShipment, shipment.ID, shipment)
}

func (s *service) putLine(ctx context.Context, line *models.ShipmentLine) error {
	return s.putEntity(ctx, models.EntityShipmentLine, line.ID, line)
}

func (s *service) putEntity(ctx context.Context, kind models.EntityKind, id string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", kind, err)
	}

	err = s.entities.Put(ctx, &models.CachedEntity{
		Kind:      kind,
		ID:        id,
		Data:      data,
		FetchedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to cache %s snapshot: %w", kind, err)
	}

	return nil
}
