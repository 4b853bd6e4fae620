package apply_range

import (
	"github.com/m04kA/SMC-ArtistCalendar/internal/api/handlers"
	applyRange "github.com/m04kA/SMC-ArtistCalendar/internal/usecase/apply_range"
)

// ApplyRangeRequest HTTP request model
type ApplyRangeRequest struct {
	Mode string `json:"mode"` // "available" | "blocked"
}

// ApplyRangeResponse HTTP response model
type ApplyRangeResponse struct {
	ArtistID  int64                       `json:"artistId"`
	Mode      string                      `json:"mode"`
	Added     int                         `json:"added"`
	Removed   int                         `json:"removed"`
	Selection *handlers.SelectionResponse `json:"selection,omitempty"`
}

func FromUseCaseResponse(resp *applyRange.Response) *ApplyRangeResponse {
	result := &ApplyRangeResponse{
		ArtistID: resp.ArtistID,
		Mode:     string(resp.Mode),
		Added:    resp.Added,
		Removed:  resp.Removed,
	}
	if resp.Selection != nil {
		result.Selection = handlers.FromSelection(resp.Selection)
	}
	return result
}
