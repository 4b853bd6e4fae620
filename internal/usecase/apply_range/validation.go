package apply_range

import (
	"fmt"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SelectionID == "" {
		return fmt.Errorf("%w: selectionID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	return nil
}

// validateRange проверяет, что выбор завершён и укладывается в ограничение длины
func validateRange(sel domain.RangeSelection, maxDays int) error {
	if !sel.IsComplete() {
		return ErrRangeIncomplete
	}

	// Границы могли быть выставлены напрямую без валидации
	if sel.End.Before(*sel.Start) {
		return ErrInvalidRange
	}

	if maxDays > 0 && sel.Days() > maxDays {
		return fmt.Errorf("%w: %d days, max %d", ErrRangeTooLong, sel.Days(), maxDays)
	}

	return nil
}
