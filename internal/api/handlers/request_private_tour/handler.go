package request_private_tour

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	requestPrivateTour "github.com/amswalks/AWT-BookingFunnel/internal/usecase/request_private_tour"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSessionID   = "invalid session id"
	msgSessionNotFound    = "session not found"
	msgInvalidName        = "please enter your name"
	msgInvalidEmail       = "please enter a valid email address"
	msgInvalidPhone       = "please enter your phone number"
	msgUnknownCountry     = "please select your country"
	msgInvalidTransition  = "a private tour can not be requested at this step"
)

// PrivateTourRequest HTTP request model
type PrivateTourRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CountryID string `json:"countryId"`
}

// PrivateTourResponse HTTP response model
type PrivateTourResponse struct {
	Session   *handlers.SessionResponse `json:"session"`
	RequestID string                    `json:"requestId,omitempty"`
}

type Handler struct {
	useCase RequestPrivateTourUseCase
	logger  Logger
}

func NewHandler(useCase RequestPrivateTourUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/private/request
//
// Ответ всегда показывает экран подтверждения, даже если заявка не дошла
// до платформы: посетитель свое дело сделал, дальше работает менеджер
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/private/request - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req PrivateTourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/private/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &requestPrivateTour.Request{
		SessionID: sessionID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CountryID: req.CountryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, requestPrivateTour.ErrInvalidName):
			handlers.RespondBadRequest(w, msgInvalidName)
		case errors.Is(err, requestPrivateTour.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)
		case errors.Is(err, requestPrivateTour.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)
		case errors.Is(err, requestPrivateTour.ErrUnknownCountry):
			handlers.RespondBadRequest(w, msgUnknownCountry)
		case errors.Is(err, requestPrivateTour.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/private/request - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, requestPrivateTour.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/private/request - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("POST /sessions/{id}/private/request - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/private/request - Confirmed: session_id=%s, submitted=%t",
		sessionID, result.Submitted)
	handlers.RespondJSON(w, http.StatusOK, &PrivateTourResponse{
		Session:   handlers.FromDomainSession(result.Session),
		RequestID: result.RequestID,
	})
}
