package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	ListByArtist(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilitySlot, error)
	Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error)
	Delete(ctx context.Context, artistID, id int64) error
}

// ArtistOwnership проверка прав пользователя на календарь артиста
type ArtistOwnership interface {
	IsArtistOwner(ctx context.Context, userID, artistID int64) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
