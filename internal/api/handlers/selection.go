package handlers

import (
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

// SelectionResponse HTTP модель сессии выбора
type SelectionResponse struct {
	ID         string  `json:"id"`
	ArtistID   int64   `json:"artistId"`
	State      string  `json:"state"`
	Start      *string `json:"start,omitempty"`
	End        *string `json:"end,omitempty"`
	LowerBound *string `json:"lowerBound,omitempty"`
	UpdatedAt  string  `json:"updatedAt"`
}

// FromSelection конвертирует ответ сервиса выбора в HTTP модель
func FromSelection(s *models.SelectionResponse) *SelectionResponse {
	return &SelectionResponse{
		ID:         s.ID,
		ArtistID:   s.ArtistID,
		State:      string(s.State),
		Start:      domain.FormatDate(s.Start),
		End:        domain.FormatDate(s.End),
		LowerBound: domain.FormatDate(s.LowerBound),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}
}
