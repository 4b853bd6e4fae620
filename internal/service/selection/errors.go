package selection

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSessionNotFound = errors.New("selection session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	// или пользователь не управляет календарём артиста
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// errSelectionChanged выбор изменился после применения диапазона
	errSelectionChanged = errors.New("selection changed")
)
