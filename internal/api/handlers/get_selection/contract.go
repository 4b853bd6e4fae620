package get_selection

import (
	"context"

	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

type SelectionService interface {
	Get(ctx context.Context, id string, userID int64) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
