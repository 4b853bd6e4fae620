package set_selection

import (
	"context"

	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

type SelectionService interface {
	Set(ctx context.Context, id string, req *models.SetSelectionRequest) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
