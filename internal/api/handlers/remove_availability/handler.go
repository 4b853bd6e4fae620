package remove_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability"
)

const (
	msgInvalidArtistID = "некорректный ID артиста"
	msgInvalidSlotID   = "некорректный ID дня доступности"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "день доступности не найден"
	msgForbidden       = "нет доступа к календарю артиста"
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

// Handle DELETE /api/v1/artists/{artistId}/availability/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("DELETE /artists/{id}/availability/{slotId} - Invalid artist ID: %v", vars["artistId"])
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /artists/{id}/availability/{slotId} - Invalid slot ID: %v", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /artists/{id}/availability/{slotId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Remove(r.Context(), userID, artistID, slotID); err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotNotFound):
			h.logger.Warn("DELETE /artists/{id}/availability/{slotId} - Slot not found: artist_id=%d, slot_id=%d", artistID, slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /artists/{id}/availability/{slotId} - Access denied: artist_id=%d, user_id=%d", artistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /artists/{id}/availability/{slotId} - Failed to remove slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /artists/{id}/availability/{slotId} - Slot removed: slot_id=%d, artist_id=%d, user_id=%d",
		slotID, artistID, userID)
	handlers.RespondNoContent(w)
}
