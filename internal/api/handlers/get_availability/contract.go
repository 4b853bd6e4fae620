package get_availability

import (
	"context"

	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability/models"
)

type AvailabilityService interface {
	List(ctx context.Context, req *models.ListRequest) ([]*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
