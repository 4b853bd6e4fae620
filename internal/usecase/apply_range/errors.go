package apply_range

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия выбора не найдена
	ErrSessionNotFound = errors.New("selection session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	// или пользователь не управляет календарём артиста
	ErrAccessDenied = errors.New("access denied")

	// ErrRangeIncomplete возвращается, когда выбрана только одна граница или ни одной
	ErrRangeIncomplete = errors.New("selection range is incomplete")

	// ErrInvalidRange возвращается, когда конец диапазона раньше начала
	ErrInvalidRange = errors.New("selection range end is before start")

	// ErrRangeTooLong возвращается, когда диапазон длиннее допустимого
	ErrRangeTooLong = errors.New("selection range is too long")

	// ErrInvalidMode возвращается при неизвестном режиме применения
	ErrInvalidMode = errors.New("invalid range mode")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
