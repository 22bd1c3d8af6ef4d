package api

import "time"

// ShipmentPayload представляет заголовок отгрузки в wire-формате
type ShipmentPayload struct {
	ScheduledAt time.Time         `json:"scheduled_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	ID          string            `json:"id"`
	Reference   string            `json:"reference"`
	ContactID   string            `json:"contact_id"`
	OperatorID  string            `json:"operator_id"`
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Note        string            `json:"note"`
	State       string            `json:"state"`
}

// LinePayload представляет товарную позицию в wire-формате
type LinePayload struct {
	Attributes  map[string]string `json:"attributes,omitempty"`
	ID          string            `json:"id"`
	ShipmentID  string            `json:"shipment_id"`
	ProductID   string            `json:"product_id"`
	Description string            `json:"description"`
	Unit        string            `json:"unit"`
	Quantity    float64           `json:"quantity"`
}

// ContactPayload представляет контрагента в wire-формате
type ContactPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ProductPayload представляет запись каталога в wire-формате
type ProductPayload struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// OperatorPayload представляет оператора в wire-формате
type OperatorPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReverseShipmentPayload представляет обратную отгрузку в wire-формате
type ReverseShipmentPayload struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`
	ShipmentID string    `json:"shipment_id"`
	Reason     string    `json:"reason"`
	State      string    `json:"state"`
}
