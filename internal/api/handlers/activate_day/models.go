package activate_day

// ActivateDayRequest HTTP request model
type ActivateDayRequest struct {
	Date string `json:"date"` // "2025-10-15"
}
