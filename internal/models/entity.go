package models

import (
	"encoding/json"
	"time"
)

// EntityKind identifies one class of cached remote record.
type EntityKind string

const (
	EntityShipment        EntityKind = "shipment"
	EntityShipmentLine    EntityKind = "shipment_line"
	EntityContact         EntityKind = "contact"
	EntityContactDetail   EntityKind = "contact_detail"
	EntityProduct         EntityKind = "product"
	EntityOperator        EntityKind = "operator"
	EntityReverseShipment EntityKind = "reverse_shipment"
)

// AllEntityKinds перечисляет все типы кэшируемых записей.
// Используется при инициализации bucket'ов хранилища.
var AllEntityKinds = []EntityKind{
	EntityShipment,
	EntityShipmentLine,
	EntityContact,
	EntityContactDetail,
	EntityProduct,
	EntityOperator,
	EntityReverseShipment,
}

// CachedEntity is an immutable snapshot of one remote record.
// Snapshots are replaced wholesale on refresh, never patched in place.
// At most one snapshot exists per (Kind, ID).
type CachedEntity struct {
	FetchedAt time.Time       `json:"fetched_at"` // FetchedAt время последнего успешного fetch с сервера
	Kind      EntityKind      `json:"kind"`       // Kind тип записи
	ID        string          `json:"id"`         // ID идентификатор записи в удалённой системе
	Data      json.RawMessage `json:"data"`       // Data сериализованный снимок записи (непрозрачный для хранилища)
}

// Clone создает глубокую копию снимка
func (e *CachedEntity) Clone() *CachedEntity {
	data := make(json.RawMessage, len(e.Data))
	copy(data, e.Data)

	return &CachedEntity{
		Kind:      e.Kind,
		ID:        e.ID,
		Data:      data,
		FetchedAt: e.FetchedAt,
	}
}

// ShipmentState represents the remote lifecycle state of a shipment.
type ShipmentState string

const (
	ShipmentStateDraft     ShipmentState = "draft"
	ShipmentStateReady     ShipmentState = "ready"
	ShipmentStateValidated ShipmentState = "validated"
	ShipmentStateCancelled ShipmentState = "cancelled"

	// Local-only states produced by the overlay when a Validate or Cancel
	// is queued but not yet confirmed by the server. Never persisted.
	ShipmentStateValidatePending ShipmentState = "validate_pending"
	ShipmentStateCancelPending   ShipmentState = "cancel_pending"
)

// Shipment представляет верхнеуровневую запись о перемещении товаров
// (доставка, забор или возврат) между двумя точками.
type Shipment struct {
	ScheduledAt time.Time         `json:"scheduled_at"` // ScheduledAt плановая дата выполнения
	UpdatedAt   time.Time         `json:"updated_at"`   // UpdatedAt время последнего изменения на сервере
	Attributes  map[string]string `json:"attributes"`   // Attributes произвольные дополнительные поля заголовка
	ID          string            `json:"id"`           // ID уникальный идентификатор отгрузки
	Reference   string            `json:"reference"`    // Reference человекочитаемый номер документа
	ContactID   string            `json:"contact_id"`   // ContactID контрагент
	OperatorID  string            `json:"operator_id"`  // OperatorID назначенный оператор
	Origin      string            `json:"origin"`       // Origin точка отправления
	Destination string            `json:"destination"`  // Destination точка назначения
	Note        string            `json:"note"`         // Note примечание к заголовку
	State       ShipmentState     `json:"state"`        // State состояние жизненного цикла
	PendingSync bool              `json:"-"`            // PendingSync выставляется overlay'ем, не сериализуется
}

// ShipmentLine представляет одну товарную позицию отгрузки.
type ShipmentLine struct {
	Attributes  map[string]string `json:"attributes"`  // Attributes произвольные дополнительные поля позиции
	ID          string            `json:"id"`          // ID уникальный идентификатор позиции
	ShipmentID  string            `json:"shipment_id"` // ShipmentID отгрузка, к которой относится позиция
	ProductID   string            `json:"product_id"`  // ProductID товар из каталога
	Description string            `json:"description"` // Description описание позиции
	Unit        string            `json:"unit"`        // Unit единица измерения
	Quantity    float64           `json:"quantity"`    // Quantity количество
	PendingSync bool              `json:"-"`           // PendingSync выставляется overlay'ем, не сериализуется
}

// Contact представляет контрагента (точку забора или доставки).
type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Product представляет запись каталога товаров.
type Product struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// Operator представляет полевого оператора из справочника.
type Operator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReverseShipment представляет запись об обратной отгрузке (возврате).
type ReverseShipment struct {
	CreatedAt  time.Time     `json:"created_at"`
	ID         string        `json:"id"`
	ShipmentID string        `json:"shipment_id"`
	Reason     string        `json:"reason"`
	State      ShipmentState `json:"state"`
}
