package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	confirmBooking "github.com/amswalks/AWT-BookingFunnel/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSessionID   = "invalid session id"
	msgSessionNotFound    = "session not found"
	msgInvalidName        = "please enter your name"
	msgInvalidEmail       = "please enter a valid email address"
	msgInvalidTransition  = "booking can not be confirmed at this step"
	msgPlatformRejected   = "the booking platform rejected the request"
	msgPlatformDown       = "the booking platform is temporarily unavailable, please try again"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Outcome        string                    `json:"outcome"`
	Session        *handlers.SessionResponse `json:"session"`
	Message        string                    `json:"message,omitempty"`
	AvailableSpots *int                      `json:"availableSpots,omitempty"`
	Slots          []handlers.SlotView       `json:"slots,omitempty"`
}

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/confirm - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		SessionID: sessionID,
		Name:      req.Name,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidName):
			h.logger.Warn("POST /sessions/{id}/confirm - Missing name: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidName)
		case errors.Is(err, confirmBooking.ErrInvalidEmail):
			h.logger.Warn("POST /sessions/{id}/confirm - Invalid email: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidEmail)
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, confirmBooking.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/confirm - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, confirmBooking.ErrPlatformRejected):
			h.logger.Warn("POST /sessions/{id}/confirm - Platform rejected: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPlatformRejected)
		case errors.Is(err, confirmBooking.ErrPlatformUnavailable):
			h.logger.Error("POST /sessions/{id}/confirm - Platform unavailable: session_id=%s", sessionID)
			handlers.RespondBadGateway(w, msgPlatformDown)
		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Outcome=%s: session_id=%s", result.Outcome, sessionID)
	handlers.RespondJSON(w, http.StatusOK, &ConfirmBookingResponse{
		Outcome:        string(result.Outcome),
		Session:        handlers.FromDomainSession(result.Session),
		Message:        result.Message,
		AvailableSpots: result.AvailableSpots,
		Slots:          handlers.FromDomainSlots(result.Slots),
	})
}
