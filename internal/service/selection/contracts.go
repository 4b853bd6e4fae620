package selection

import (
	"context"
	"time"

	selectionStore "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/selection"
)

// SessionStore интерфейс хранилища сессий выбора
type SessionStore interface {
	Create(ownerID, artistID int64, lowerBound *time.Time, now time.Time) selectionStore.Snapshot
	Get(id string, now time.Time) (selectionStore.Snapshot, error)
	Update(id string, now time.Time, fn func(session *selectionStore.Session) error) (selectionStore.Snapshot, error)
	Delete(id string, now time.Time, fn func(session *selectionStore.Session) error) error
}

// ArtistOwnership проверка прав пользователя на календарь артиста
type ArtistOwnership interface {
	IsArtistOwner(ctx context.Context, userID, artistID int64) (bool, error)
}

// TransitionRecorder принимает переходы состояния выбора (метрики)
type TransitionRecorder interface {
	RecordSelectionTransition(from, to string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopRecorder struct{}

func (noopRecorder) RecordSelectionTransition(string, string) {}
