package handlers

import (
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
)

// ParseOptionalDate парсит необязательную дату YYYY-MM-DD; nil и "" дают nil
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
