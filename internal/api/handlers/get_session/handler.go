package get_session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/sessions"
	getAvailableSlots "github.com/amswalks/AWT-BookingFunnel/internal/usecase/get_available_slots"
)

const (
	msgInvalidSessionID = "invalid session id"
	msgSessionNotFound  = "session not found"
)

// GetSessionResponse HTTP response model
type GetSessionResponse struct {
	Session    *handlers.SessionResponse `json:"session"`
	QuickDates []QuickDateView           `json:"quickDates,omitempty"`
}

// QuickDateView быстрый вариант даты
type QuickDateView struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

type Handler struct {
	sessions   SessionService
	quickDates QuickDatesProvider
	logger     Logger
}

func NewHandler(sessions SessionService, quickDates QuickDatesProvider, logger Logger) *Handler {
	return &Handler{
		sessions:   sessions,
		quickDates: quickDates,
		logger:     logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := &GetSessionResponse{Session: handlers.FromSessionState(state)}

	// Быстрые даты нужны только на первом шаге
	if state.Step == string(domain.StepDateSelection) {
		if dates, err := h.quickDates.QuickDates(r.Context(), state.Guests); err != nil {
			h.logger.Warn("GET /sessions/{id} - Quick dates unavailable: %v", err)
		} else {
			resp.QuickDates = fromQuickDates(dates)
		}
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromQuickDates(dates []getAvailableSlots.QuickDate) []QuickDateView {
	out := make([]QuickDateView, 0, len(dates))
	for _, d := range dates {
		out = append(out, QuickDateView{Label: d.Label, Date: d.Date.Format(domain.DateFormat)})
	}
	return out
}
