package availability

import "errors"

var (
	// ErrSlotNotFound возвращается, когда день доступности не найден
	ErrSlotNotFound = errors.New("availability.repository: slot not found")

	// ErrSlotAlreadyExists возвращается, когда день уже отмечен доступным
	ErrSlotAlreadyExists = errors.New("availability.repository: slot already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
