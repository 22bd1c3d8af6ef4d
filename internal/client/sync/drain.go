package sync

import (
	"context"
	"errors"
	"time"

	httpClient "github.com/mobo-open-source/fieldsync/internal/client/api"
	"github.com/mobo-open-source/fieldsync/internal/client/storage"
	"github.com/mobo-open-source/fieldsync/internal/models"
)

const (
	// DefaultDrainInterval период фонового прохода по очереди.
	// Грубый таймер - основной триггер это переход oracle в online.
	DefaultDrainInterval = 30 * time.Second

	// eventBufferSize ёмкость канала событий drain; медленный подписчик
	// теряет события, но никогда не блокирует drain
	eventBufferSize = 64
)

// ErrDrainInProgress indicates that another drain pass is already running.
// Only one pass may be active at a time.
var ErrDrainInProgress = errors.New("queue drain already in progress")

// DrainOutcome classifies the settled result of one replayed entry.
type DrainOutcome string

const (
	DrainSucceeded DrainOutcome = "succeeded"
	DrainFailed    DrainOutcome = "failed"
	DrainConflict  DrainOutcome = "conflict"
)

// DrainEvent is one per-entry outcome, published for user feedback
// (toast/snackbar style) while a drain pass runs.
type DrainEvent struct {
	MutationID string
	Kind       models.MutationKind
	ShipmentID string
	Detail     string
	Result     DrainOutcome
}

// DrainResult contains one drain pass summary
type DrainResult struct {
	Attempted int // количество записей, по которым выполнен replay
	Succeeded int // подтверждено сервером (включая already-applied)
	Failed    int // транспортные ошибки, будут повторены
	Conflicts int // удалённое состояние разошлось, ждут решения
}

// DrainQueue replays Queued and Failed entries oldest-first.
//  1. MarkSyncing
//  2. attempt the matching remote call with the stored payload
//  3. settle: MarkSucceeded / MarkFailed / MarkConflict
//
// A replay answered "already in desired state" settles as success: the
// desired end-state was achieved, by whom does not matter. An incompatible
// divergence settles as Conflict and is never retried automatically.
// A transport error settles the current entry as Failed and ends the pass -
// connectivity is gone, the remaining entries stay Queued for the next one.
func (s *service) DrainQueue(ctx context.Context) (*DrainResult, error) {
	if !s.draining.CompareAndSwap(false, true) {
		return nil, ErrDrainInProgress
	}
	defer s.draining.Store(false)

	entries, err := s.queue.List(ctx, storage.ListFilter{
		Statuses: []models.MutationStatus{
			models.MutationStatusQueued,
			models.MutationStatusFailed,
		},
	})
	if err != nil {
		return nil, err
	}

	result := &DrainResult{}
	if len(entries) == 0 {
		return result, nil
	}

	s.logger.Info("starting queue drain", "entries", len(entries))

	for _, m := range entries {
		if ctx.Err() != nil {
			break
		}

		if err := s.queue.MarkSyncing(ctx, m.ID); err != nil {
			s.logger.Warn("failed to mark mutation syncing",
				"mutation_id", m.ID,
				"error", err)
			continue
		}

		result.Attempted++
		stop := s.settle(ctx, m, result)
		if stop {
			break
		}
	}

	s.logger.Info("queue drain completed",
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"conflicts", result.Conflicts)

	return result, nil
}

// settle выполняет replay одной записи и фиксирует исход.
// Возвращает true, если проход нужно прервать (пропала связь).
func (s *service) settle(ctx context.Context, m *models.PendingMutation, result *DrainResult) bool {
	outcome, err := s.replay(ctx, m)

	switch {
	case err == nil && outcome.Decision != nil:
		// Replay упёрся в decision point: автоматикой не решается,
		// запись ждёт явного выбора пользователя
		detail := outcome.Decision.Message
		if detail == "" {
			detail = outcome.Decision.Code
		}
		if err := s.queue.MarkConflict(ctx, m.ID, detail); err != nil {
			s.logger.Error("failed to mark mutation conflict", "mutation_id", m.ID, "error", err)
		}
		result.Conflicts++
		s.emit(m, DrainConflict, detail)
		return false

	case err == nil:
		// Подтверждено (в том числе already-applied - желаемое состояние
		// уже достигнуто, это успех, а не конфликт)
		if err := s.storeOutcome(ctx, m.Kind, m.ShipmentID, m.LineID, outcome); err != nil {
			// Сервер уже применил операцию: запись из очереди уходит,
			// кэш догонит при следующем refresh
			s.logger.Warn("failed to refresh cache after replay",
				"mutation_id", m.ID,
				"error", err)
		}
		if err := s.queue.MarkSucceeded(ctx, m.ID); err != nil {
			s.logger.Error("failed to mark mutation succeeded", "mutation_id", m.ID, "error", err)
		}
		result.Succeeded++
		s.emit(m, DrainSucceeded, "")
		return false

	case httpClient.IsConflict(err):
		if markErr := s.queue.MarkConflict(ctx, m.ID, err.Error()); markErr != nil {
			s.logger.Error("failed to mark mutation conflict", "mutation_id", m.ID, "error", markErr)
		}
		result.Conflicts++
		s.emit(m, DrainConflict, err.Error())
		return false

	case httpClient.IsTransport(err):
		if markErr := s.queue.MarkFailed(ctx, m.ID, err); markErr != nil {
			s.logger.Error("failed to mark mutation failed", "mutation_id", m.ID, "error", markErr)
		}
		result.Failed++
		s.emit(m, DrainFailed, err.Error())
		s.logger.Warn("connectivity lost mid-drain, ending pass",
			"mutation_id", m.ID,
			"error", err)
		return true

	default:
		// Неожиданная ошибка (битый ответ и т.п.) - считаем её временной
		// и оставляем запись на повтор
		if markErr := s.queue.MarkFailed(ctx, m.ID, err); markErr != nil {
			s.logger.Error("failed to mark mutation failed", "mutation_id", m.ID, "error", markErr)
		}
		result.Failed++
		s.emit(m, DrainFailed, err.Error())
		return false
	}
}

// Run wires drain passes to the oracle's became-online events and a coarse
// periodic tick. Returns immediately; stops when ctx is cancelled.
func (s *service) Run(ctx context.Context) {
	onlineCh := s.oracle.Subscribe()

	go func() {
		ticker := time.NewTicker(s.drainInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-onlineCh:
			case <-ticker.C:
				// Периодический проход имеет смысл только при связи
				if !s.oracle.CurrentBelief() {
					continue
				}
			}

			if _, err := s.DrainQueue(ctx); err != nil && !errors.Is(err, ErrDrainInProgress) {
				s.logger.Warn("queue drain failed", "error", err)
			}
		}
	}()
}

// Events returns the drain outcome stream. Events are dropped, not queued,
// when the buffer is full.
func (s *service) Events() <-chan DrainEvent {
	return s.events
}

func (s *service) emit(m *models.PendingMutation, outcome DrainOutcome, detail string) {
	event := DrainEvent{
		MutationID: m.ID,
		Kind:       m.Kind,
		ShipmentID: m.ShipmentID,
		Detail:     detail,
		Result:     outcome,
	}

	select {
	case s.events <- event:
	default:
	}
}
