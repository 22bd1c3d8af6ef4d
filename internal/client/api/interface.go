package api

import (
	"context"
	"encoding/json"

	"github.com/mobo-open-source/fieldsync/internal/models"
	"github.com/mobo-open-source/fieldsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// Outcome is the settled result of a mutation call that completed at the
// transport level. Exactly one of the three shapes applies:
//   - confirmed: Decision is nil, snapshots (when returned) are the
//     server-confirmed state
//   - already applied: AlreadyApplied is true, the remote side had converged
//     to the desired state before this call
//   - decision required: Decision is non-nil and the operation is not done
//     until the decision is resolved via ResolveDecision
type Outcome struct {
	Shipment       *models.Shipment     // refreshed header snapshot, may be nil
	Line           *models.ShipmentLine // refreshed line snapshot, may be nil
	Decision       *api.DecisionDetails // non-nil when a business choice is required
	AlreadyApplied bool
}

// ClientAPI defines the interface to the remote system of record.
// Implementations return *TransportError for unreachable-or-failed requests
// and *ConflictError when the remote state diverged incompatibly; the
// coordinator relies on that classification for its queueing policy.
type ClientAPI interface {
	// Mutation operations

	// Validate запрашивает проведение (валидацию) отгрузки
	Validate(ctx context.Context, shipmentID string) (*Outcome, error)

	// Cancel запрашивает отмену отгрузки
	Cancel(ctx context.Context, shipmentID string) (*Outcome, error)

	// UpdateHeader применяет diff полей заголовка
	UpdateHeader(ctx context.Context, shipmentID string, fields map[string]string) (*Outcome, error)

	// AddLine добавляет товарную позицию
	AddLine(ctx context.Context, shipmentID, lineID string, fields map[string]string) (*Outcome, error)

	// UpdateLine изменяет товарную позицию
	UpdateLine(ctx context.Context, shipmentID, lineID string, fields map[string]string) (*Outcome, error)

	// DeleteLine удаляет товарную позицию
	DeleteLine(ctx context.Context, shipmentID, lineID string) (*Outcome, error)

	// ResolveDecision передаёт выбор пользователя для decision point
	ResolveDecision(ctx context.Context, shipmentID, choice string) (*Outcome, error)

	// Fetch operations (pull into the local cache)

	FetchShipment(ctx context.Context, shipmentID string) (*models.Shipment, error)
	FetchLines(ctx context.Context, shipmentID string) ([]*models.ShipmentLine, error)
	FetchContacts(ctx context.Context) ([]*models.Contact, error)
	FetchContactDetail(ctx context.Context, contactID string) (json.RawMessage, error)
	FetchCatalog(ctx context.Context) ([]*models.Product, error)
	FetchOperators(ctx context.Context) ([]*models.Operator, error)
	FetchReverseShipments(ctx context.Context) ([]*models.ReverseShipment, error)

	// Ping probes the server's liveness endpoint. Used by the connectivity
	// oracle; any error means "not reachable".
	Ping(ctx context.Context) error
}
