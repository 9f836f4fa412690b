package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type GameID string

type Version string

type Channel int

func (c Channel) String() string {
	return strconv.Itoa(int(c))
}

func ParseChannel(raw string) (Channel, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse channel %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("channel %d is negative", value)
	}

	return Channel(value), nil
}

type Game struct {
	ID           GameID
	Name         string
	LastPlayedAt time.Time
}

// LaunchContext is the selection a launch runs for. It only lives while a
// launch is in flight.
type LaunchContext struct {
	Game    GameID
	Version Version
	Channel Channel
}

func (c LaunchContext) Validate() error {
	if strings.TrimSpace(string(c.Game)) == "" {
		return fmt.Errorf("game is required")
	}
	if strings.TrimSpace(string(c.Version)) == "" {
		return fmt.Errorf("version is required")
	}

	return nil
}

func (c LaunchContext) String() string {
	return fmt.Sprintf("%s %s (channel %d)", c.Game, c.Version, c.Channel)
}
