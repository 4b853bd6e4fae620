package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability/models"
)

const (
	msgInvalidArtistID = "некорректный ID артиста"
	msgInvalidFrom     = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo       = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidPeriod   = "некорректный период: to раньше from"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/artists/{artistId}/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(mux.Vars(r)["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("GET /artists/{id}/availability - Invalid artist ID: %v", mux.Vars(r)["artistId"])
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	query := r.URL.Query()
	fromStr, toStr := query.Get("from"), query.Get("to")

	from, err := handlers.ParseOptionalDate(&fromStr)
	if err != nil {
		h.logger.Warn("GET /artists/{id}/availability - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}
	to, err := handlers.ParseOptionalDate(&toStr)
	if err != nil {
		h.logger.Warn("GET /artists/{id}/availability - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	slots, err := h.service.List(r.Context(), &models.ListRequest{ArtistID: artistID, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /artists/{id}/availability - Invalid period: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /artists/{id}/availability - Failed to list availability: artist_id=%d, error=%v", artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artists/{id}/availability - Availability retrieved: artist_id=%d, count=%d", artistID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(artistID, slots))
}
