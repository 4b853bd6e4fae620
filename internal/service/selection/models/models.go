package models

import (
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	selectionStore "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/selection"
)

// CreateSelectionRequest модель запроса на создание сессии выбора
type CreateSelectionRequest struct {
	OwnerID    int64
	ArtistID   int64
	LowerBound *time.Time // nil = граница по умолчанию (сегодня или без границы)
}

// SetSelectionRequest модель запроса на прямую установку границ
// nil в Start/End сбрасывает соответствующую границу
type SetSelectionRequest struct {
	UserID int64
	Start  *time.Time
	End    *time.Time
}

// SelectionResponse модель ответа с состоянием сессии
type SelectionResponse struct {
	ID         string
	OwnerID    int64
	ArtistID   int64
	State      domain.SelectionState
	Start      *time.Time
	End        *time.Time
	LowerBound *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Range возвращает выбранный диапазон как доменную модель
func (r *SelectionResponse) Range() domain.RangeSelection {
	return domain.RangeSelection{
		Start:      r.Start,
		End:        r.End,
		LowerBound: r.LowerBound,
	}
}

// FromSnapshot конвертирует снимок сессии в модель ответа
func FromSnapshot(s selectionStore.Snapshot) *SelectionResponse {
	return &SelectionResponse{
		ID:         s.ID,
		OwnerID:    s.OwnerID,
		ArtistID:   s.ArtistID,
		State:      s.Selection.State(),
		Start:      s.Selection.Start,
		End:        s.Selection.End,
		LowerBound: s.Selection.LowerBound,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
