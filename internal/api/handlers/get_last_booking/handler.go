package get_last_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/sessions"
)

const (
	msgInvalidSessionID = "invalid session id"
	msgNoBooking        = "no booking on record for this session"
)

// LastBookingResponse HTTP response model
type LastBookingResponse struct {
	BookingID string `json:"bookingId"`
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

// Handle GET /api/v1/sessions/{sessionId}/last-booking
//
// Страница подтверждения переживает перезагрузку: идентификатор
// последнего созданного бронирования хранится отдельно от сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/last-booking - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	bookingID, err := h.sessions.LastBookingID(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/last-booking - No booking: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNoBooking)
			return
		}
		h.logger.Error("GET /sessions/{id}/last-booking - Failed: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &LastBookingResponse{BookingID: bookingID})
}
