package create_selection

import (
	"context"

	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

type SelectionService interface {
	Create(ctx context.Context, req *models.CreateSelectionRequest) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
