package delete_selection

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection"
)

const (
	msgInvalidSelectionID = "некорректный ID сессии выбора"
	msgNotFound           = "сессия выбора не найдена"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/selections/{selectionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["selectionId"]
	if _, err := uuid.Parse(selectionID); err != nil {
		h.logger.Warn("DELETE /selections/{id} - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /selections/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), selectionID, userID); err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("DELETE /selections/{id} - Selection not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, selection.ErrAccessDenied):
			h.logger.Warn("DELETE /selections/{id} - Access denied: selection_id=%s, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /selections/{id} - Failed to delete selection: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /selections/{id} - Selection deleted: selection_id=%s, user_id=%d", selectionID, userID)
	handlers.RespondNoContent(w)
}
