package delete_selection

import "context"

type SelectionService interface {
	Delete(ctx context.Context, id string, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
