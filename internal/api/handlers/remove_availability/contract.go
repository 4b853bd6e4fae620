package remove_availability

import "context"

type AvailabilityService interface {
	Remove(ctx context.Context, userID, artistID, slotID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
