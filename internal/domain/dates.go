package domain

import (
	"fmt"
	"time"
)

// DateOnly отбрасывает время, оставляя календарную дату (полночь UTC).
// Все даты выбора и доступности хранятся в этом виде.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfDay возвращает календарную дату момента now в часовом поясе loc
func StartOfDay(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOnly(now.In(loc))
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOnly(t), nil
}

// FormatDate форматирует дату как YYYY-MM-DD, nil даёт nil
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateFormat)
	return &s
}

// DaysBetween количество календарных дней от from до to (может быть отрицательным)
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// EachDay возвращает все даты от start до end включительно
func EachDay(start, end time.Time) []time.Time {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
