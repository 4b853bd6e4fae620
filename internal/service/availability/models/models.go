package models

import (
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
)

// ListRequest модель запроса списка доступности
type ListRequest struct {
	ArtistID int64
	From     *time.Time
	To       *time.Time
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListRequest) ToDomainFilter() domain.AvailabilityFilter {
	filter := domain.AvailabilityFilter{ArtistID: r.ArtistID}
	if r.From != nil {
		from := domain.DateOnly(*r.From)
		filter.From = &from
	}
	if r.To != nil {
		to := domain.DateOnly(*r.To)
		filter.To = &to
	}
	return filter
}

// SlotResponse модель дня доступности
type SlotResponse struct {
	ID        int64
	ArtistID  int64
	Date      time.Time
	CreatedAt time.Time
}

// FromDomainSlot конвертирует доменную модель в модель ответа
func FromDomainSlot(slot *domain.AvailabilitySlot) *SlotResponse {
	return &SlotResponse{
		ID:        slot.ID,
		ArtistID:  slot.ArtistID,
		Date:      slot.Date,
		CreatedAt: slot.CreatedAt,
	}
}

// FromDomainSlots конвертирует список доменных моделей
func FromDomainSlots(slots []*domain.AvailabilitySlot) []*SlotResponse {
	result := make([]*SlotResponse, len(slots))
	for i, slot := range slots {
		result[i] = FromDomainSlot(slot)
	}
	return result
}
