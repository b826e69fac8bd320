package update_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/bookings"
	bookingModels "github.com/amswalks/AWT-BookingFunnel/internal/service/bookings/models"
	"github.com/amswalks/AWT-BookingFunnel/pkg/validate"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingBookingID   = "missing booking id"
	msgNothingToUpdate    = "nothing to update"
	msgNotFound           = "booking not found"
	msgValidation         = "the booking platform rejected the changes"
	msgFullyBooked        = "this time is fully booked"
	msgSpotsRemaining     = "only %d spots remaining for this time"
	msgPlatformDown       = "the booking platform is temporarily unavailable, please try again"
)

var bodyValidator = validate.New()

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

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := bodyValidator.Struct(&req); err != nil {
		msg := bodyValidator.FirstError(err)
		if msg == "" {
			msg = msgInvalidRequestBody
		}
		h.logger.Warn("PATCH /bookings/{id} - Validation failed: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	schedule := req.scheduleChanges()
	contact := req.contactChanges()
	if schedule == nil && contact == nil {
		h.logger.Warn("PATCH /bookings/{id} - Nothing to update: booking_id=%s", bookingID)
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	var booking *bookingModels.BookingResponse
	var err error

	if schedule != nil {
		booking, err = h.service.UpdateSchedule(r.Context(), bookingID, schedule)
		if err != nil {
			h.respondError(w, bookingID, err)
			return
		}
	}
	if contact != nil {
		booking, err = h.service.UpdateContact(r.Context(), bookingID, contact)
		if err != nil {
			h.respondError(w, bookingID, err)
			return
		}
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceBooking(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, bookingID string, err error) {
	var spotsErr *bookingapi.InsufficientSpotsError

	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%s", bookingID)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.As(err, &spotsErr):
		h.logger.Warn("PATCH /bookings/{id} - Not enough spots: booking_id=%s, available=%d",
			bookingID, spotsErr.AvailableSpots)
		handlers.RespondConflict(w, fmt.Sprintf(msgSpotsRemaining, spotsErr.AvailableSpots))
	case bookingapi.IsCapacityError(err):
		h.logger.Warn("PATCH /bookings/{id} - Fully booked: booking_id=%s", bookingID)
		handlers.RespondConflict(w, msgFullyBooked)
	case errors.Is(err, bookings.ErrValidation), errors.Is(err, bookings.ErrInvalidInput):
		h.logger.Warn("PATCH /bookings/{id} - Rejected: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgValidation)
	case errors.Is(err, bookings.ErrPlatformUnavailable):
		h.logger.Error("PATCH /bookings/{id} - Platform unavailable: booking_id=%s", bookingID)
		handlers.RespondBadGateway(w, msgPlatformDown)
	default:
		h.logger.Error("PATCH /bookings/{id} - Failed: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
	}
}
