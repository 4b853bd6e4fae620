package activate_day

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

type SelectionService interface {
	Activate(ctx context.Context, id string, userID int64, date time.Time) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
