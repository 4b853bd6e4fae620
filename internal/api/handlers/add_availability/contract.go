package add_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability/models"
)

type AvailabilityService interface {
	Add(ctx context.Context, userID, artistID int64, date time.Time) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
