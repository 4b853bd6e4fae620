package create_selection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

const (
	msgInvalidArtistID    = "некорректный ID артиста"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLowerBound  = "некорректный формат нижней границы, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "нет доступа к календарю артиста"
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

// Handle POST /api/v1/artists/{artistId}/selections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(mux.Vars(r)["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("POST /artists/{id}/selections - Invalid artist ID: %v", mux.Vars(r)["artistId"])
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /artists/{id}/selections - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело необязательно
	var req CreateSelectionRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /artists/{id}/selections - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	lowerBound, err := handlers.ParseOptionalDate(req.LowerBound)
	if err != nil {
		h.logger.Warn("POST /artists/{id}/selections - Invalid lower bound: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLowerBound)
		return
	}

	session, err := h.service.Create(r.Context(), &models.CreateSelectionRequest{
		OwnerID:    userID,
		ArtistID:   artistID,
		LowerBound: lowerBound,
	})
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrInvalidInput):
			h.logger.Warn("POST /artists/{id}/selections - Invalid input: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgInvalidArtistID)

		case errors.Is(err, selection.ErrAccessDenied):
			h.logger.Warn("POST /artists/{id}/selections - Access denied: artist_id=%d, user_id=%d", artistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /artists/{id}/selections - Failed to create selection: artist_id=%d, error=%v", artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /artists/{id}/selections - Selection created: selection_id=%s, artist_id=%d, user_id=%d",
		session.ID, artistID, userID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSelection(session))
}
