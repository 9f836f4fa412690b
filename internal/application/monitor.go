package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

const DefaultMonitorInterval = 5 * time.Second

// MonitorEvent reports the end of a monitor session detected by polling.
type MonitorEvent struct {
	SessionID uint64
	ProcessID int
	Reason    domain.SessionEndReason
	Err       error
}

// Monitor polls backend liveness of a launched game. At most one session is
// active; every poll timer belongs to exactly one session and is cancelled
// with it.
type Monitor struct {
	backend  ports.MonitorBackend
	clock    ports.Clock
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	nextID  uint64
	session *monitorSession
}

type monitorSession struct {
	id        uint64
	processID int
	timer     ports.Timer
	onStop    func(MonitorEvent)
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewMonitor(backend ports.MonitorBackend, clock ports.Clock, interval time.Duration, logger *slog.Logger) *Monitor {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}

	return &Monitor{backend: backend, clock: clock, interval: interval, logger: loggerOrDiscard(logger)}
}

// Start replaces any running session with a new one and returns its id.
// onStop is called once, outside the monitor lock, when polling detects that
// the game is gone or the probe fails.
func (m *Monitor) Start(processID int, onStop func(MonitorEvent)) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.teardownLocked()

	m.nextID++
	ctx, cancel := context.WithCancel(context.Background())
	session := &monitorSession{
		id:        m.nextID,
		processID: processID,
		onStop:    onStop,
		ctx:       ctx,
		cancel:    cancel,
	}
	m.session = session
	m.scheduleLocked(session)

	m.logger.Debug("monitor started", "session", session.id, "pid", processID)
	return session.id
}

// Stop tears the active session down without calling its onStop. It reports
// whether a session was active.
func (m *Monitor) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.teardownLocked()
}

func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session != nil
}

func (m *Monitor) SessionID() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return 0
	}
	return m.session.id
}

func (m *Monitor) ProcessID() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.session.processID <= 0 {
		return 0, false
	}
	return m.session.processID, true
}

// Probe asks the backend once whether a game monitor is active.
func (m *Monitor) Probe(ctx context.Context) (bool, error) {
	return m.backend.IsGameMonitorActive(ctx)
}

func (m *Monitor) scheduleLocked(session *monitorSession) {
	id := session.id
	session.timer = m.clock.AfterFunc(m.interval, func() { m.poll(id) })
}

func (m *Monitor) poll(id uint64) {
	m.mu.Lock()
	session := m.session
	if session == nil || session.id != id {
		m.mu.Unlock()
		return
	}
	ctx := session.ctx
	m.mu.Unlock()

	active, err := m.backend.IsGameMonitorActive(ctx)

	m.mu.Lock()
	if m.session == nil || m.session.id != id {
		m.mu.Unlock()
		return
	}
	if err == nil && active {
		m.scheduleLocked(session)
		m.mu.Unlock()
		return
	}

	event := MonitorEvent{SessionID: id, ProcessID: session.processID, Reason: domain.SessionEndExited}
	if err != nil {
		// An unanswerable probe counts as termination so the game never looks
		// stuck in a running state.
		event.Reason = domain.SessionEndMonitorError
		event.Err = err
		m.logger.Warn("monitor probe failed", "session", id, "err", err)
	} else {
		m.logger.Info("game no longer running", "session", id, "pid", session.processID)
	}
	m.teardownLocked()
	m.mu.Unlock()

	if session.onStop != nil {
		session.onStop(event)
	}
}

func (m *Monitor) teardownLocked() bool {
	session := m.session
	if session == nil {
		return false
	}
	if session.timer != nil {
		session.timer.Stop()
	}
	session.cancel()
	m.session = nil

	return true
}
