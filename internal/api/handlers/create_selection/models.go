package create_selection

// CreateSelectionRequest HTTP request model
type CreateSelectionRequest struct {
	LowerBound *string `json:"lowerBound,omitempty"` // "2025-10-15", пусто = граница по умолчанию
}
