package apply_range

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	ListByArtist(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilitySlot, error)
	Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error)
	DeleteByDates(ctx context.Context, artistID int64, dates []time.Time) (int64, error)
}

// SelectionService интерфейс сервиса сессий выбора
type SelectionService interface {
	Get(ctx context.Context, id string, userID int64) (*models.SelectionResponse, error)
	ClearIfUnchanged(
		ctx context.Context,
		id string,
		userID int64,
		applied domain.RangeSelection,
	) (*models.SelectionResponse, bool, error)
}

// ArtistOwnership проверка прав пользователя на календарь артиста
type ArtistOwnership interface {
	IsArtistOwner(ctx context.Context, userID, artistID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
