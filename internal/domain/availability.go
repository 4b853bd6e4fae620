package domain

import "time"

// AvailabilitySlot день, в который артист доступен для бронирования
type AvailabilitySlot struct {
	ID        int64
	ArtistID  int64
	Date      time.Time // календарная дата, см. DateOnly
	CreatedAt time.Time
}

// IsPast returns true if the slot date is before today
func (s *AvailabilitySlot) IsPast(today time.Time) bool {
	return s.Date.Before(DateOnly(today))
}

// AvailabilityFilter фильтр для получения доступности артиста
type AvailabilityFilter struct {
	ArtistID int64      // Обязательный параметр
	From     *time.Time // Начало периода включительно (опционально)
	To       *time.Time // Конец периода включительно (опционально)
}

// RangeMode что сделать с днями выбранного диапазона
type RangeMode string

const (
	RangeModeAvailable RangeMode = "available" // отметить дни доступными
	RangeModeBlocked   RangeMode = "blocked"   // снять доступность
)

// IsValid returns true for a known range mode
func (m RangeMode) IsValid() bool {
	return m == RangeModeAvailable || m == RangeModeBlocked
}
