package add_availability

import (
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability/models"
)

// AddAvailabilityRequest HTTP request model
type AddAvailabilityRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID        int64  `json:"id"`
	ArtistID  int64  `json:"artistId"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
}

func FromServiceResponse(s *models.SlotResponse) *SlotResponse {
	return &SlotResponse{
		ID:        s.ID,
		ArtistID:  s.ArtistID,
		Date:      s.Date.Format(domain.DateFormat),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
