package activate_day

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection"
)

const (
	msgInvalidSelectionID = "некорректный ID сессии выбора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle POST /api/v1/selections/{selectionId}/days
// Дни раньше нижней границы не меняют выбор, ответ всё равно 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["selectionId"]
	if _, err := uuid.Parse(selectionID); err != nil {
		h.logger.Warn("POST /selections/{id}/days - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /selections/{id}/days - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ActivateDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selections/{id}/days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /selections/{id}/days - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	session, err := h.service.Activate(r.Context(), selectionID, userID, date)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /selections/{id}/days - Selection not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, selection.ErrAccessDenied):
			h.logger.Warn("POST /selections/{id}/days - Access denied: selection_id=%s, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /selections/{id}/days - Failed to activate day: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/days - Day activated: selection_id=%s, date=%s, state=%s",
		selectionID, req.Date, session.State)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSelection(session))
}
