package domain

import (
	"strings"
	"time"
)

// SuppressedAdvisory silences one advisory text until ExpiresAt.
type SuppressedAdvisory struct {
	Message   string
	ExpiresAt time.Time
}

func (s SuppressedAdvisory) Valid() bool {
	return strings.TrimSpace(s.Message) != "" && !s.ExpiresAt.IsZero()
}

func (s SuppressedAdvisory) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Suppresses reports whether message must be skipped at now: identical text and
// not yet expired.
func (s SuppressedAdvisory) Suppresses(message string, now time.Time) bool {
	if !s.Valid() {
		return false
	}

	return s.Message == message && now.Before(s.ExpiresAt)
}

type Advisory struct {
	HasMessage bool
	Message    string
}

func (a Advisory) Present() bool {
	return a.HasMessage && strings.TrimSpace(a.Message) != ""
}

// NextLocalMidnight returns the first midnight strictly after now in now's location.
func NextLocalMidnight(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, now.Location())
}

func SuppressUntilMidnight(message string, now time.Time) SuppressedAdvisory {
	return SuppressedAdvisory{Message: message, ExpiresAt: NextLocalMidnight(now)}
}
