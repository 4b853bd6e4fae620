package set_selection

import (
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

// SetSelectionRequest HTTP request model, null сбрасывает границу
type SetSelectionRequest struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetSelectionRequest) ToServiceRequest(userID int64) (*models.SetSelectionRequest, error) {
	start, err := handlers.ParseOptionalDate(r.Start)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseOptionalDate(r.End)
	if err != nil {
		return nil, err
	}
	return &models.SetSelectionRequest{
		UserID: userID,
		Start:  start,
		End:    end,
	}, nil
}
