package privatetours

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateRequestPayload запрос на организацию приватного тура
// Fire-and-forget: контракта на чтение заявок не существует
type CreateRequestPayload struct {
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	CustomerPhone     string  `json:"customer_phone"`
	Country           string  `json:"country"`
	NumberOfGuests    int     `json:"number_of_guests"`
	PreferredDate     *string `json:"preferred_date"`
	PotentialBigGroup bool    `json:"potential_big_group,omitempty"`
}

// createResponse ответ платформы на заявку
type createResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
	Reason    string `json:"reason"`
}

// Client клиент сервиса заявок на приватные туры
// Отдельный endpoint, не связанный с платформой бронирования
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента заявок на приватные туры
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateRequest отправляет заявку на приватный тур
// Возвращает идентификатор заявки при успехе
func (c *Client) CreateRequest(ctx context.Context, payload *CreateRequestPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/functions/v1/create-private-tour-request", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInvalidResponse, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: create private tour request: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden && result.Reason == "IP_BLACKLISTED":
		return "", fmt.Errorf("%w: %s", ErrIPBlacklisted, result.Error)
	case resp.StatusCode == http.StatusBadRequest:
		return "", fmt.Errorf("%w: %s", ErrValidation, result.Error)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, result.Error)
	}

	return result.RequestID, nil
}
