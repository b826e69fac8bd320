package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	getAvailableSlots "github.com/amswalks/AWT-BookingFunnel/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgInvalidGuests = "invalid number of guests"
	msgPlatformDown  = "the booking platform is temporarily unavailable, please try again"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string              `json:"date"`
	Slots []handlers.SlotView `json:"slots"`
}

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&guests=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	guests := domain.MinGuests
	if raw := query.Get("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid guests %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date, Guests: guests})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, getAvailableSlots.ErrInvalidGuests):
			h.logger.Warn("GET /availability - Invalid guests: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuests)
		case errors.Is(err, getAvailableSlots.ErrPlatformUnavailable):
			h.logger.Error("GET /availability - Platform unavailable: %v", err)
			handlers.RespondBadGateway(w, msgPlatformDown)
		default:
			h.logger.Error("GET /availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]handlers.SlotView, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, handlers.SlotView{
			TourTime:       s.TourTime,
			TourTitle:      s.TourTitle,
			AvailableSpots: s.AvailableSpots,
			RunningLow:     s.RunningLow,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: slots,
	})
}
