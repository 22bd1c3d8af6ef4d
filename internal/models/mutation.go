package models

import (
	"time"
)

// MutationKind identifies the remote operation a pending mutation replays.
type MutationKind string

const (
	MutationValidate     MutationKind = "validate"
	MutationCancel       MutationKind = "cancel"
	MutationUpdateHeader MutationKind = "update_header"
	MutationAddLine      MutationKind = "add_line"
	MutationUpdateLine   MutationKind = "update_line"
	MutationDeleteLine   MutationKind = "delete_line"
)

// LineScoped reports whether the mutation kind targets a single line
// rather than the shipment header.
func (k MutationKind) LineScoped() bool {
	switch k {
	case MutationAddLine, MutationUpdateLine, MutationDeleteLine:
		return true
	}
	return false
}

// MutationStatus represents the lifecycle state of a pending mutation.
type MutationStatus string

const (
	MutationStatusQueued   MutationStatus = "queued"   // ожидает отправки на сервер
	MutationStatusSyncing  MutationStatus = "syncing"  // запрос к серверу выполняется
	MutationStatusFailed   MutationStatus = "failed"   // транспортная ошибка, будет повторена
	MutationStatusConflict MutationStatus = "conflict" // удалённое состояние разошлось, требуется решение
)

// PendingMutation представляет одно локальное изменение, ещё не
// подтверждённое сервером. Запись создаётся, когда операция не может быть
// выполнена немедленно, и удаляется только после подтверждённого успеха
// или явного отказа пользователя.
type PendingMutation struct {
	CreatedAt      time.Time         `json:"created_at"`      // CreatedAt время постановки в очередь
	Payload        map[string]string `json:"payload"`         // Payload поля, достаточные для повтора операции
	ID             string            `json:"id"`              // ID уникальный идентификатор записи очереди
	Kind           MutationKind      `json:"kind"`            // Kind тип операции
	ShipmentID     string            `json:"shipment_id"`     // ShipmentID отгрузка, к которой относится операция
	LineID         string            `json:"line_id"`         // LineID позиция (только для line-scoped операций)
	LastError      string            `json:"last_error"`      // LastError текст последней транспортной ошибки
	ConflictDetail string            `json:"conflict_detail"` // ConflictDetail причина конфликта (для status=conflict)
	Status         MutationStatus    `json:"status"`          // Status состояние записи
	Attempts       int               `json:"attempts"`        // Attempts число выполненных попыток replay
}

// Key returns the queue identity of the mutation. Header-level kinds are
// unique per shipment; line-level kinds are unique per (shipment, line).
// Enqueuing a mutation with an existing key replaces the entry instead of
// duplicating it.
func (m *PendingMutation) Key() string {
	if m.Kind.LineScoped() {
		return string(m.Kind) + "/" + m.ShipmentID + "/" + m.LineID
	}
	return string(m.Kind) + "/" + m.ShipmentID
}

// Outstanding reports whether the mutation still represents unconfirmed
// local intent (anything that has not been settled as success or discarded).
func (m *PendingMutation) Outstanding() bool {
	return m.Status == MutationStatusQueued ||
		m.Status == MutationStatusSyncing ||
		m.Status == MutationStatusFailed ||
		m.Status == MutationStatusConflict
}

// Clone создает глубокую копию записи очереди
func (m *PendingMutation) Clone() *PendingMutation {
	var payload map[string]string
	if m.Payload != nil {
		payload = make(map[string]string, len(m.Payload))
		for k, v := range m.Payload {
			payload[k] = v
		}
	}

	clone := *m
	clone.Payload = payload
	return &clone
}
