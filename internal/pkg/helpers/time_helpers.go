package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Accepted layouts for wall-clock values, in the lexical format the TIME columns use
const (
	TimeOfDayLayout      = "15:04:05"
	ShortTimeOfDayLayout = "15:04"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// EndOfDay is the TIME value PostgreSQL accepts for midnight at the end of a day
const EndOfDay = "24:00:00"

// ParseTimeOfDay parses "HH:MM:SS" or "HH:MM" into the offset since midnight.
// "24:00" and "24:00:00" yield 24h, as PostgreSQL TIME allows.
func ParseTimeOfDay(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == EndOfDay || value == EndOfDay[:5] {
		return 24 * time.Hour, nil
	}

	t, err := time.Parse(TimeOfDayLayout, value)
	if err != nil {
		if t, err = time.Parse(ShortTimeOfDayLayout, value); err != nil {
			return 0, fmt.Errorf("invalid time of day %q", value)
		}
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// FormatTimeOfDay renders an offset since midnight as HH:MM:SS
func FormatTimeOfDay(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

// NormalizeTimeOfDay returns the value in HH:MM:SS form
func NormalizeTimeOfDay(value string) (string, error) {
	d, err := ParseTimeOfDay(value)
	if err != nil {
		return "", err
	}
	return FormatTimeOfDay(d), nil
}

// HoursBetween returns end minus start in hours.
// The result is negative when end precedes start.
func HoursBetween(start, end string) (float64, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return 0, err
	}
	return (e - s).Hours(), nil
}
