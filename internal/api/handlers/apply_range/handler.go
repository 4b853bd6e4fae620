package apply_range

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	applyRange "github.com/m04kA/SMC-ArtistCalendar/internal/usecase/apply_range"
)

const (
	msgInvalidSelectionID = "некорректный ID сессии выбора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMode        = "некорректный режим, ожидается available или blocked"
	msgNotFound           = "сессия выбора не найдена"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgRangeIncomplete    = "диапазон выбран не полностью"
	msgInvalidRange       = "конец диапазона раньше начала"
	msgRangeTooLong       = "диапазон слишком длинный"
)

type Handler struct {
	useCase ApplyRangeUseCase
	logger  Logger
}

func NewHandler(useCase ApplyRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/apply
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	selectionID := mux.Vars(r)["selectionId"]
	if _, err := uuid.Parse(selectionID); err != nil {
		h.logger.Warn("POST /selections/{id}/apply - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /selections/{id}/apply - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ApplyRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selections/{id}/apply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &applyRange.Request{
		SelectionID: selectionID,
		UserID:      userID,
		Mode:        domain.RangeMode(req.Mode),
	})
	if err != nil {
		switch {
		case errors.Is(err, applyRange.ErrInvalidMode):
			h.logger.Warn("POST /selections/{id}/apply - Invalid mode: selection_id=%s, mode=%s", selectionID, req.Mode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, applyRange.ErrSessionNotFound):
			h.logger.Warn("POST /selections/{id}/apply - Selection not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, applyRange.ErrAccessDenied):
			h.logger.Warn("POST /selections/{id}/apply - Access denied: selection_id=%s, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, applyRange.ErrRangeIncomplete):
			h.logger.Warn("POST /selections/{id}/apply - Range incomplete: selection_id=%s", selectionID)
			handlers.RespondError(w, http.StatusConflict, msgRangeIncomplete)

		case errors.Is(err, applyRange.ErrInvalidRange):
			h.logger.Warn("POST /selections/{id}/apply - Inverted range: selection_id=%s", selectionID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, applyRange.ErrRangeTooLong):
			h.logger.Warn("POST /selections/{id}/apply - Range too long: selection_id=%s", selectionID)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, applyRange.ErrInvalidInput):
			h.logger.Warn("POST /selections/{id}/apply - Invalid input: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /selections/{id}/apply - Failed to apply range: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/apply - Range applied: selection_id=%s, artist_id=%d, mode=%s, added=%d, removed=%d",
		selectionID, result.ArtistID, result.Mode, result.Added, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
