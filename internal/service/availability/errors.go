package availability

import "errors"

var (
	// ErrSlotNotFound возвращается, когда день доступности не найден
	ErrSlotNotFound = errors.New("availability slot not found")

	// ErrSlotAlreadyExists возвращается, когда день уже отмечен доступным
	ErrSlotAlreadyExists = errors.New("availability slot already exists")

	// ErrAccessDenied возвращается, когда пользователь не управляет календарём артиста
	ErrAccessDenied = errors.New("access denied")

	// ErrDateInPast возвращается при попытке отметить прошедший день
	ErrDateInPast = errors.New("date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
