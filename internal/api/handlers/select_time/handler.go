package select_time

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSessionID   = "invalid session id"
	msgInvalidTime        = "invalid time, expected HH:MM"
	msgSessionNotFound    = "session not found"
	msgSlotUnavailable    = "this time slot is no longer available"
	msgInvalidTransition  = "time can not be selected at this step"
	msgDateNotSelected    = "select a date first"
)

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Time string `json:"time"` // "15:04"
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

// Handle PUT /api/v1/sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/time - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.sessions.SelectTime(r.Context(), sessionID, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/time - Invalid time %q: session_id=%s", req.Time, sessionID)
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, sessions.ErrSlotUnavailable):
			h.logger.Warn("PUT /sessions/{id}/time - Slot unavailable: session_id=%s, time=%s", sessionID, req.Time)
			handlers.RespondConflict(w, msgSlotUnavailable)
		case errors.Is(err, sessions.ErrDateNotSelected):
			h.logger.Warn("PUT /sessions/{id}/time - Date not selected: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgDateNotSelected)
		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PUT /sessions/{id}/time - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("PUT /sessions/{id}/time - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/time - Time selected: session_id=%s, time=%s", sessionID, req.Time)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionState(state))
}
