package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/bookings"
)

const (
	msgMissingBookingID = "missing booking id"
	msgNotFound         = "booking not found"
	msgPlatformDown     = "the booking platform is temporarily unavailable, please try again"
)

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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	booking, err := h.service.GetByPublicID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, bookings.ErrPlatformUnavailable):
			h.logger.Error("GET /bookings/{id} - Platform unavailable: booking_id=%s", bookingID)
			handlers.RespondBadGateway(w, msgPlatformDown)
		default:
			h.logger.Error("GET /bookings/{id} - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceBooking(booking))
}
