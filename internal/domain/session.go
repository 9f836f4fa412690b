package domain

import "time"

type SessionEndReason string

const (
	SessionEndExited       SessionEndReason = "exited"
	SessionEndStopped      SessionEndReason = "stopped"
	SessionEndMonitorError SessionEndReason = "monitor-error"
)

// Session is one Running period of a launched game.
type Session struct {
	ID        string
	Launch    LaunchContext
	Path      string
	ProcessID int
	StartedAt time.Time
	EndedAt   time.Time
	EndReason SessionEndReason
}

func (s Session) Active() bool {
	return s.EndedAt.IsZero()
}

func (s Session) Duration(now time.Time) time.Duration {
	if s.Active() {
		return now.Sub(s.StartedAt)
	}

	return s.EndedAt.Sub(s.StartedAt)
}
