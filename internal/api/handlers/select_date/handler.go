package select_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/sessions"
	sessionModels "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
	getAvailableSlots "github.com/amswalks/AWT-BookingFunnel/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSessionID   = "invalid session id"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgSessionNotFound    = "session not found"
	msgInvalidTransition  = "date can not be changed at this step"
)

// SelectDateRequest HTTP request model
// Пустая дата снимает выбор и возвращает мастер к началу первого шага
type SelectDateRequest struct {
	Date string `json:"date"`
}

// SelectDateResponse HTTP response model
type SelectDateResponse struct {
	Session *handlers.SessionResponse `json:"session"`
	Slots   []handlers.SlotView       `json:"slots"`
}

type Handler struct {
	sessions SessionService
	slots    GetAvailableSlotsUseCase
	logger   Logger
}

func NewHandler(sessions SessionService, slots GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		slots:    slots,
		logger:   logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var state *sessionModels.SessionState
	var date time.Time

	if req.Date == "" {
		state, err = h.sessions.ClearDate(r.Context(), sessionID)
	} else {
		date, err = time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/date - Invalid date %q: %v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		state, err = h.sessions.SelectDate(r.Context(), sessionID, date)
	}
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PUT /sessions/{id}/date - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("PUT /sessions/{id}/date - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &SelectDateResponse{Session: handlers.FromSessionState(state)}

	// Свежая доступность на выбранную дату; сбой не блокирует выбор даты
	if req.Date != "" {
		result, err := h.slots.Execute(r.Context(), &getAvailableSlots.Request{Date: date, Guests: state.Guests})
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/date - Availability unavailable: session_id=%s, error=%v", sessionID, err)
		} else {
			resp.Slots = fromUseCaseSlots(result.Slots)
		}
	}

	h.logger.Info("PUT /sessions/{id}/date - Date updated: session_id=%s, date=%q", sessionID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromUseCaseSlots(slots []getAvailableSlots.Slot) []handlers.SlotView {
	out := make([]handlers.SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, handlers.SlotView{
			TourTime:       s.TourTime,
			TourTitle:      s.TourTitle,
			AvailableSpots: s.AvailableSpots,
			RunningLow:     s.RunningLow,
		})
	}
	return out
}
