package add_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability"
)

const (
	msgInvalidArtistID    = "некорректный ID артиста"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgAlreadyExists      = "день уже отмечен доступным"
	msgDateInPast         = "нельзя отметить прошедший день"
	msgForbidden          = "нет доступа к календарю артиста"
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

// Handle POST /api/v1/artists/{artistId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(mux.Vars(r)["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("POST /artists/{id}/availability - Invalid artist ID: %v", mux.Vars(r)["artistId"])
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /artists/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /artists/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /artists/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := h.service.Add(r.Context(), userID, artistID, date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotAlreadyExists):
			h.logger.Warn("POST /artists/{id}/availability - Slot already exists: artist_id=%d, date=%s", artistID, req.Date)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /artists/{id}/availability - Access denied: artist_id=%d, user_id=%d", artistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrDateInPast):
			h.logger.Warn("POST /artists/{id}/availability - Date in past: artist_id=%d, date=%s", artistID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /artists/{id}/availability - Invalid input: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgInvalidArtistID)

		default:
			h.logger.Error("POST /artists/{id}/availability - Failed to add slot: artist_id=%d, error=%v", artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /artists/{id}/availability - Slot created: slot_id=%d, artist_id=%d, user_id=%d",
		slot.ID, artistID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(slot))
}
