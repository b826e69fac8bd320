package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	rescheduleBooking "github.com/amswalks/AWT-BookingFunnel/internal/usecase/reschedule_booking"
)

const (
	msgInvalidSessionID  = "invalid session id"
	msgSessionNotFound   = "session not found"
	msgInvalidTransition = "there is no existing booking to reschedule"
	msgCancelFailed      = "the existing booking could not be cancelled, nothing was changed"
	msgPlatformRejected  = "the booking platform rejected the new booking"
	msgPlatformDown      = "the booking platform is temporarily unavailable, please try again"
)

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	Outcome        string                    `json:"outcome"`
	Session        *handlers.SessionResponse `json:"session"`
	Message        string                    `json:"message,omitempty"`
	AvailableSpots *int                      `json:"availableSpots,omitempty"`
	Slots          []handlers.SlotView       `json:"slots,omitempty"`
}

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/reschedule - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rescheduleBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/reschedule - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, rescheduleBooking.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/reschedule - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, rescheduleBooking.ErrCancelFailed):
			h.logger.Error("POST /sessions/{id}/reschedule - Cancel failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCancelFailed)
		case errors.Is(err, rescheduleBooking.ErrPlatformRejected):
			h.logger.Warn("POST /sessions/{id}/reschedule - Platform rejected: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPlatformRejected)
		case errors.Is(err, rescheduleBooking.ErrPlatformUnavailable):
			h.logger.Error("POST /sessions/{id}/reschedule - Platform unavailable: session_id=%s", sessionID)
			handlers.RespondBadGateway(w, msgPlatformDown)
		default:
			h.logger.Error("POST /sessions/{id}/reschedule - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/reschedule - Outcome=%s: session_id=%s", result.Outcome, sessionID)
	handlers.RespondJSON(w, http.StatusOK, &RescheduleBookingResponse{
		Outcome:        string(result.Outcome),
		Session:        handlers.FromDomainSession(result.Session),
		Message:        result.Message,
		AvailableSpots: result.AvailableSpots,
		Slots:          handlers.FromDomainSlots(result.Slots),
	})
}
