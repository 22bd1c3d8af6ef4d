package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mobo-open-source/fieldsync/internal/models"
	"github.com/mobo-open-source/fieldsync/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken устанавливает bearer token, полученный внешним слоем
// аутентификации. Пустое значение отключает заголовок Authorization.
func (c *Client) SetAccessToken(token string) {
	c.token = token
}

// Validate запрашивает проведение отгрузки
func (c *Client) Validate(ctx context.Context, shipmentID string) (*Outcome, error) {
	path := fmt.Sprintf("/api/v1/shipments/%s/validate", shipmentID)
	return c.doMutation(ctx, http.MethodPost, path, nil)
}

// Cancel запрашивает отмену отгрузки
func (c *Client) Cancel(ctx context.Context, shipmentID string) (*Outcome, error) {
	path := fmt.Sprintf("/api/v1/shipments/%s/cancel", shipmentID)
	return c.doMutation(ctx, http.MethodPost, path, nil)
}

// UpdateHeader применяет diff полей заголовка
func (c *Client) UpdateHeader(ctx context.Context, shipmentID string, fields map[string]string) (*Outcome, error) {
	path := fmt.Sprintf("/api/v1/shipments/%s", shipmentID)
	return c.doMutation(ctx, http.MethodPatch, path, api.UpdateHeaderRequest{Fields: fields})
}

// AddLine добавляет товарную позицию
func (c *Client) AddLine(ctx context.Context, shipmentID, lineID string, fields map[string]string) (*Outcome, error) {
	path := fmt.Sprintf("/api/v1/shipments/%s/lines/%s", shipmentID, lineID)
	return c.doMutation(ctx, http.MethodPost, path, api.LineRequest{Fields: fields})
}

// UpdateLine изменяет товарную позицию
func (c *Client) UpdateLine(ctx context.Context, shipmentID, lineID string, fields map[string]string) (*Outcome, error) {
	path := fmt.Sprintf("/api/v1/shipments/%s/lines/%s", shipmentID, lineID)
	return c.doMutation(ctx, http.MethodPatch, path, api.LineRequest{Fields: fields})
}

// DeleteLine удаляет товарную позицию
func (c *Client) DeleteLine(ctx context.Context, shipmentID, lineID string) (*Outcome, error) {
	path := fmt.Sprintf("/api/v1/shipments/%s/lines/%s", shipmentID, lineID)
	return c.doMutation(ctx, http.MethodDelete, path, nil)
}

// ResolveDecision передаёт выбор пользователя для decision point
func (c *Client) ResolveDecision(ctx context.Context, shipmentID, choice string) (*Outcome, error) {
	path := fmt.Sprintf("/api/v1/shipments/%s/resolve", shipmentID)
	return c.doMutation(ctx, http.MethodPost, path, api.ResolveDecisionRequest{Choice: choice})
}

// FetchShipment получает заголовок отгрузки
func (c *Client) FetchShipment(ctx context.Context, shipmentID string) (*models.Shipment, error) {
	var payload api.ShipmentPayload
	path := fmt.Sprintf("/api/v1/shipments/%s", shipmentID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch shipment request failed: %w", err)
	}
	return shipmentFromPayload(&payload), nil
}

// FetchLines получает позиции отгрузки
func (c *Client) FetchLines(ctx context.Context, shipmentID string) ([]*models.ShipmentLine, error) {
	var payloads []api.LinePayload
	path := fmt.Sprintf("/api/v1/shipments/%s/lines", shipmentID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &payloads); err != nil {
		return nil, fmt.Errorf("fetch lines request failed: %w", err)
	}

	lines := make([]*models.ShipmentLine, 0, len(payloads))
	for i := range payloads {
		lines = append(lines, lineFromPayload(&payloads[i]))
	}
	return lines, nil
}

// FetchContacts получает справочник контрагентов
func (c *Client) FetchContacts(ctx context.Context) ([]*models.Contact, error) {
	var payloads []api.ContactPayload
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/contacts", nil, &payloads); err != nil {
		return nil, fmt.Errorf("fetch contacts request failed: %w", err)
	}

	contacts := make([]*models.Contact, 0, len(payloads))
	for i := range payloads {
		p := payloads[i]
		contacts = append(contacts, &models.Contact{
			ID:      p.ID,
			Name:    p.Name,
			Phone:   p.Phone,
			Email:   p.Email,
			Address: p.Address,
		})
	}
	return contacts, nil
}

// FetchContactDetail получает расширенную карточку контрагента.
// Содержимое непрозрачно для ядра и кэшируется как есть.
func (c *Client) FetchContactDetail(ctx context.Context, contactID string) (json.RawMessage, error) {
	var detail json.RawMessage
	path := fmt.Sprintf("/api/v1/contacts/%s/detail", contactID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &detail); err != nil {
		return nil, fmt.Errorf("fetch contact detail request failed: %w", err)
	}
	return detail, nil
}

// FetchCatalog получает каталог товаров
func (c *Client) FetchCatalog(ctx context.Context) ([]*models.Product, error) {
	var payloads []api.ProductPayload
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/catalog", nil, &payloads); err != nil {
		return nil, fmt.Errorf("fetch catalog request failed: %w", err)
	}

	products := make([]*models.Product, 0, len(payloads))
	for i := range payloads {
		p := payloads[i]
		products = append(products, &models.Product{ID: p.ID, SKU: p.SKU, Name: p.Name, Unit: p.Unit})
	}
	return products, nil
}

// FetchOperators получает справочник операторов
func (c *Client) FetchOperators(ctx context.Context) ([]*models.Operator, error) {
	var payloads []api.OperatorPayload
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/operators", nil, &payloads); err != nil {
		return nil, fmt.Errorf("fetch operators request failed: %w", err)
	}

	operators := make([]*models.Operator, 0, len(payloads))
	for i := range payloads {
		operators = append(operators, &models.Operator{ID: payloads[i].ID, Name: payloads[i].Name})
	}
	return operators, nil
}

// FetchReverseShipments получает записи обратных отгрузок
func (c *Client) FetchReverseShipments(ctx context.Context) ([]*models.ReverseShipment, error) {
	var payloads []api.ReverseShipmentPayload
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/reverse-shipments", nil, &payloads); err != nil {
		return nil, fmt.Errorf("fetch reverse shipments request failed: %w", err)
	}

	reverses := make([]*models.ReverseShipment, 0, len(payloads))
	for i := range payloads {
		p := payloads[i]
		reverses = append(reverses, &models.ReverseShipment{
			CreatedAt:  p.CreatedAt,
			ID:         p.ID,
			ShipmentID: p.ShipmentID,
			Reason:     p.Reason,
			State:      models.ShipmentState(p.State),
		})
	}
	return reverses, nil
}

// Ping проверяет доступность сервера через liveness endpoint
func (c *Client) Ping(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return fmt.Errorf("ping request failed: %w", err)
	}
	return nil
}

// doMutation выполняет mutation-запрос и разбирает MutationResponse в Outcome
func (c *Client) doMutation(ctx context.Context, method, path string, body interface{}) (*Outcome, error) {
	var resp api.MutationResponse
	if err := c.doRequest(ctx, method, path, body, &resp); err != nil {
		return nil, err
	}

	outcome := &Outcome{
		AlreadyApplied: resp.Status == api.StatusAlreadyApplied,
		Decision:       resp.Decision,
	}
	if resp.Shipment != nil {
		outcome.Shipment = shipmentFromPayload(resp.Shipment)
	}
	if resp.Line != nil {
		outcome.Line = lineFromPayload(resp.Line)
	}

	if resp.Status == api.StatusDecisionRequired && outcome.Decision == nil {
		return nil, fmt.Errorf("server reported decision_required without decision details")
	}

	return outcome, nil
}

// doRequest выполняет HTTP запрос и классифицирует ошибки:
// сетевые сбои и 5xx/408/429 -> TransportError (координатор поставит
// операцию в очередь), 404/409/410 -> ConflictError (удалённое состояние
// разошлось с локальным намерением).
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		_ = json.Unmarshal(respBody, &errResp)

		switch {
		case resp.StatusCode >= 500,
			resp.StatusCode == http.StatusRequestTimeout,
			resp.StatusCode == http.StatusTooManyRequests:
			return &TransportError{Err: fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)}
		case resp.StatusCode == http.StatusNotFound,
			resp.StatusCode == http.StatusConflict,
			resp.StatusCode == http.StatusGone:
			code := errResp.Error
			if code == "" {
				code = http.StatusText(resp.StatusCode)
			}
			return &ConflictError{Code: code, Message: errResp.Message}
		}

		if errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func shipmentFromPayload(p *api.ShipmentPayload) *models.Shipment {
	return &models.Shipment{
		ScheduledAt: p.ScheduledAt,
		UpdatedAt:   p.UpdatedAt,
		Attributes:  p.Attributes,
		ID:          p.ID,
		Reference:   p.Reference,
		ContactID:   p.ContactID,
		OperatorID:  p.OperatorID,
		Origin:      p.Origin,
		Destination: p.Destination,
		Note:        p.Note,
		State:       models.ShipmentState(p.State),
	}
}

func lineFromPayload(p *api.LinePayload) *models.ShipmentLine {
	return &models.ShipmentLine{
		Attributes:  p.Attributes,
		ID:          p.ID,
		ShipmentID:  p.ShipmentID,
		ProductID:   p.ProductID,
		Description: p.Description,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
	}
}
