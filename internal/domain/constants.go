package domain

import "time"

// Default configuration values
const (
	DefaultSessionTTL   = 30 * time.Minute
	DefaultMaxRangeDays = 366
	DefaultTimezone     = "Europe/Berlin"
)

// Business validation constants
const (
	MinMaxRangeDays = 1
	MaxMaxRangeDays = 3660 // 10 лет
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
