package set_guests

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/sessions"
	sessionModels "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSessionID   = "invalid session id"
	msgSessionNotFound    = "session not found"
	msgInvalidTransition  = "guests can not be changed at this step"
	msgDateNotSelected    = "select a date first"
)

// SetGuestsRequest HTTP request model
type SetGuestsRequest struct {
	Guests   int  `json:"guests"`
	Continue bool `json:"continue"` // Продвинуть мастер после установки
}

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/guests - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req SetGuestsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.sessions.SetGuests(r.Context(), sessionID, &sessionModels.SetGuestsRequest{
		Guests:  req.Guests,
		Advance: req.Continue,
	})
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/guests - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, sessions.ErrDateNotSelected):
			h.logger.Warn("PUT /sessions/{id}/guests - Date not selected: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgDateNotSelected)
		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PUT /sessions/{id}/guests - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("PUT /sessions/{id}/guests - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/guests - Guests updated: session_id=%s, guests=%d, continue=%t",
		sessionID, req.Guests, req.Continue)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionState(state))
}
