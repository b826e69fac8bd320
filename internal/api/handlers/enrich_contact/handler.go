package enrich_contact

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	enrichContact "github.com/amswalks/AWT-BookingFunnel/internal/usecase/enrich_contact"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSessionID   = "invalid session id"
	msgSessionNotFound    = "session not found"
	msgUnknownCountry     = "unknown country"
	msgInvalidTransition  = "contact details can not be added at this step"
)

// EnrichContactRequest HTTP request model
// Оба поля опциональны: шаг можно пропустить, отправив пустое тело
type EnrichContactRequest struct {
	Phone     string `json:"phone,omitempty"`
	CountryID string `json:"countryId,omitempty"`
}

// EnrichContactResponse HTTP response model
type EnrichContactResponse struct {
	Session *handlers.SessionResponse `json:"session"`
	Updated bool                      `json:"updated"`
}

type Handler struct {
	useCase EnrichContactUseCase
	logger  Logger
}

func NewHandler(useCase EnrichContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/contact - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req EnrichContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &enrichContact.Request{
		SessionID: sessionID,
		Phone:     req.Phone,
		CountryID: req.CountryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, enrichContact.ErrUnknownCountry):
			h.logger.Warn("POST /sessions/{id}/contact - Unknown country %q: session_id=%s", req.CountryID, sessionID)
			handlers.RespondBadRequest(w, msgUnknownCountry)
		case errors.Is(err, enrichContact.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/contact - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, enrichContact.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/contact - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("POST /sessions/{id}/contact - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/contact - Completed: session_id=%s, updated=%t", sessionID, result.Updated)
	handlers.RespondJSON(w, http.StatusOK, &EnrichContactResponse{
		Session: handlers.FromDomainSession(result.Session),
		Updated: result.Updated,
	})
}
