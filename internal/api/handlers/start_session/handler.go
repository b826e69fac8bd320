package start_session

import (
	"net/http"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

type Handler struct {
	sessions   SessionService
	catalog    CatalogService
	quickDates QuickDatesProvider
	logger     Logger
}

func NewHandler(sessions SessionService, catalog CatalogService, quickDates QuickDatesProvider, logger Logger) *Handler {
	return &Handler{
		sessions:   sessions,
		catalog:    catalog,
		quickDates: quickDates,
		logger:     logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /sessions - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Каталог и быстрые даты не критичны для старта: при сбое платформы
	// мастер открывается с пустым каталогом
	times, err := h.catalog.TourTimes(r.Context())
	if err != nil {
		h.logger.Warn("POST /sessions - Tour time catalog unavailable: %v", err)
		times = nil
	}

	dates, err := h.quickDates.QuickDates(r.Context(), domain.MinGuests)
	if err != nil {
		h.logger.Warn("POST /sessions - Quick dates unavailable: %v", err)
		dates = nil
	}

	h.logger.Info("POST /sessions - Session started: session_id=%s", state.ID)
	handlers.RespondJSON(w, http.StatusCreated, &StartSessionResponse{
		Session:    handlers.FromSessionState(state),
		TourTimes:  fromTourTimes(times),
		QuickDates: fromQuickDates(dates),
	})
}
