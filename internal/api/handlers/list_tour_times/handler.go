package list_tour_times

import (
	"errors"
	"net/http"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/catalog"
)

const msgPlatformDown = "the booking platform is temporarily unavailable, please try again"

// TourTimeView запись каталога времен туров
type TourTimeView struct {
	TourTime  string `json:"tourTime"`
	TourTitle string `json:"tourTitle"`
}

// ListTourTimesResponse HTTP response model
type ListTourTimesResponse struct {
	TourTimes []TourTimeView `json:"tourTimes"`
}

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalogService,
		logger:  logger,
	}
}

// Handle GET /api/v1/tour-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	times, err := h.catalog.TourTimes(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrPlatformUnavailable) {
			h.logger.Error("GET /tour-times - Platform unavailable: %v", err)
			handlers.RespondBadGateway(w, msgPlatformDown)
			return
		}
		h.logger.Error("GET /tour-times - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]TourTimeView, 0, len(times))
	for _, t := range times {
		out = append(out, TourTimeView{TourTime: t.TourTime, TourTitle: t.TourTitle})
	}

	handlers.RespondJSON(w, http.StatusOK, &ListTourTimesResponse{TourTimes: out})
}
