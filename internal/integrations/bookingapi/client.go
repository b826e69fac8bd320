package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платформы бронирования
// Вся бизнес-логика (доступность, дубликаты, отмена) живет на стороне
// платформы; клиент выполняет по одному HTTP запросу на операцию
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платформы бронирования
func NewClient(baseURL string, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListTourTimes возвращает каталог активных времен туров
func (c *Client) ListTourTimes(ctx context.Context) ([]TourTime, error) {
	endpoint := c.baseURL + "/rest/v1/tour_times?active=eq.true&select=tour_time,tour_title"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInvalidResponse, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: list tour times: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var times []TourTime
	if err := json.NewDecoder(resp.Body).Decode(&times); err != nil {
		return nil, fmt.Errorf("%w: failed to decode tour times: %v", ErrInvalidResponse, err)
	}

	for i := range times {
		times[i].TourTime = normalizeTime(times[i].TourTime)
	}
	return times, nil
}

// CheckAvailability возвращает доступность слотов на дату
// tourTime опционально фильтрует по конкретному времени
func (c *Client) CheckAvailability(ctx context.Context, date string, tourTime *string) ([]AvailabilitySlot, error) {
	payload := map[string]interface{}{
		"p_date":      date,
		"p_tour_time": tourTime,
	}

	resp, err := c.post(ctx, "/rest/v1/rpc/get_tour_availability", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var slots []AvailabilitySlot
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability: %v", ErrInvalidResponse, err)
	}
	return slots, nil
}

// CreateBooking создает бронирование
// Ошибки исчерпания мест ("fully booked", "Not enough spots") классифицируются
// в ErrFullyBooked / InsufficientSpotsError
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	resp, err := c.post(ctx, "/functions/v1/create-website-booking", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFromResponse(resp)
	}

	var envelope bookingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}
	if envelope.Booking == nil {
		return nil, fmt.Errorf("%w: create booking returned no booking", ErrInvalidResponse)
	}
	return envelope.Booking, nil
}

// GetBooking получает бронирование по публичному идентификатору
func (c *Client) GetBooking(ctx context.Context, websiteBookingID string) (*Booking, error) {
	endpoint := c.baseURL + "/functions/v1/get-website-booking?website_booking_id=" +
		url.QueryEscape(websiteBookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInvalidResponse, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get booking: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: booking %s", ErrBookingNotFound, websiteBookingID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var envelope bookingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}
	if envelope.Booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrBookingNotFound, websiteBookingID)
	}
	return envelope.Booking, nil
}

// UpdateBooking частично обновляет бронирование по публичному идентификатору
func (c *Client) UpdateBooking(ctx context.Context, req *UpdateBookingRequest) (*Booking, error) {
	resp, err := c.post(ctx, "/functions/v1/update-website-booking", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFromResponse(resp)
	}

	var envelope bookingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}
	if envelope.Booking == nil {
		return nil, fmt.Errorf("%w: update returned no booking", ErrInvalidResponse)
	}
	return envelope.Booking, nil
}

// CancelBooking отменяет бронирование (переход scheduled -> cancelled, необратим)
func (c *Client) CancelBooking(ctx context.Context, websiteBookingID string, reason string) (*CancelResult, error) {
	payload := map[string]interface{}{
		"website_booking_id": websiteBookingID,
		"reason":             reason,
	}

	resp, err := c.post(ctx, "/functions/v1/cancel-booking", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFromResponse(resp)
	}

	var result CancelResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode cancel result: %v", ErrInvalidResponse, err)
	}
	return &result, nil
}

// CheckBookingExists быстрая проверка наличия бронирования по email
func (c *Client) CheckBookingExists(ctx context.Context, email string) (bool, error) {
	resp, err := c.post(ctx, "/functions/v1/check-booking-by-email", map[string]string{"email": email})
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, c.errorFromResponse(resp)
	}

	var result existsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("%w: failed to decode exists response: %v", ErrInvalidResponse, err)
	}
	return result.Exists, nil
}

// GetBookingByEmail получает полные детали существующего бронирования по email
// 404 означает "бронирования нет" и НЕ является ошибкой: возвращается (nil, nil)
func (c *Client) GetBookingByEmail(ctx context.Context, email string) (*ExistingBooking, error) {
	resp, err := c.post(ctx, "/functions/v1/get-booking-by-email", map[string]string{"email": email})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var envelope byEmailEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking by email: %v", ErrInvalidResponse, err)
	}
	if !envelope.Success || envelope.Booking == nil {
		return nil, nil
	}
	envelope.Booking.Time = normalizeTime(envelope.Booking.Time)
	return envelope.Booking, nil
}

// post выполняет POST с JSON телом
func (c *Client) post(ctx context.Context, path string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInvalidResponse, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, path, err)
	}
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// errorFromResponse строит классифицированную ошибку из тела ответа платформы
func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		classified := classifyError(apiErr.Error)
		c.log.Warn("bookingapi: request failed with status %d: %s", resp.StatusCode, apiErr.Error)
		return classified
	}

	c.log.Warn("bookingapi: request failed with status %d: %s", resp.StatusCode, string(body))
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrUnknown, resp.StatusCode, string(body))
}
