// Package api defines the wire types exchanged with the remote system of
// record. The offline core itself is payload-agnostic: these shapes exist so
// the HTTP gateway can classify outcomes, not so the core can reason about
// business content.
package api

// Mutation outcome statuses returned by the server
const (
	// StatusConfirmed - операция выполнена, сервер вернул обновлённое состояние
	StatusConfirmed = "confirmed"

	// StatusAlreadyApplied - удалённое состояние уже совпадает с желаемым
	// (например, другой клиент уже провалидировал отгрузку). Для replay это успех.
	StatusAlreadyApplied = "already_applied"

	// StatusDecisionRequired - операция не завершена, требуется бизнес-решение
	// (например, частичная доступность товара)
	StatusDecisionRequired = "decision_required"
)

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse представляет ответ liveness-проверки
type HealthResponse struct {
	Status string `json:"status"`
}

// DecisionOption is one resolution choice offered by the server.
type DecisionOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// DecisionDetails describes a decision point: a mutation outcome that is
// neither success nor failure and needs a business choice before the
// operation can complete.
type DecisionDetails struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Options []DecisionOption `json:"options"`
}

// MutationResponse is the server's answer to any mutation call
// (validate, cancel, header update, line add/update/delete, resolve).
type MutationResponse struct {
	Shipment *ShipmentPayload `json:"shipment,omitempty"` // refreshed header snapshot
	Line     *LinePayload     `json:"line,omitempty"`     // refreshed line snapshot
	Decision *DecisionDetails `json:"decision,omitempty"` // set when Status is decision_required
	Status   string           `json:"status"`
}

// UpdateHeaderRequest carries a header field diff.
type UpdateHeaderRequest struct {
	Fields map[string]string `json:"fields"`
}

// LineRequest carries line fields for add and update calls.
type LineRequest struct {
	Fields map[string]string `json:"fields"`
}

// ResolveDecisionRequest carries the user's choice for a decision point.
type ResolveDecisionRequest struct {
	Choice string `json:"choice"`
}
