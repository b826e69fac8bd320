package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingBookingID   = "missing booking id"
	msgNotFound           = "booking not found"
	msgPlatformDown       = "the booking platform is temporarily unavailable, please try again"
)

// CancelBookingRequest HTTP request model
// Тело опционально: без причины используется стандартная формулировка
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/cancel - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), bookingID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, bookings.ErrPlatformUnavailable):
			h.logger.Error("POST /bookings/{id}/cancel - Platform unavailable: booking_id=%s", bookingID)
			handlers.RespondBadGateway(w, msgPlatformDown)
		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Cancelled: booking_id=%s, success=%t", bookingID, result.Success)
	handlers.RespondJSON(w, http.StatusOK, &CancelBookingResponse{
		Success: result.Success,
		Message: result.Message,
	})
}
