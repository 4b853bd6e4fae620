package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability/models"
)

// SlotResponse HTTP модель дня доступности
type SlotResponse struct {
	ID        int64  `json:"id"`
	ArtistID  int64  `json:"artistId"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
}

// AvailabilityResponse HTTP ответ со списком дней
type AvailabilityResponse struct {
	ArtistID int64           `json:"artistId"`
	Slots    []*SlotResponse `json:"slots"`
}

func FromServiceResponse(artistID int64, slots []*models.SlotResponse) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		ArtistID: artistID,
		Slots:    make([]*SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, &SlotResponse{
			ID:        s.ID,
			ArtistID:  s.ArtistID,
			Date:      s.Date.Format(domain.DateFormat),
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
