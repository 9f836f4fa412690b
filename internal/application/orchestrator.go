package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

const (
	DefaultAdvisoryCountdown  = 30
	DefaultAdvisoryTick       = time.Second
	DefaultStopReconcileDelay = time.Second
)

var ErrOrchestratorClosed = errors.New("launch orchestrator closed")

type PathResolver interface {
	Resolve(ctx context.Context, game domain.GameID, version domain.Version, channel domain.Channel) (string, bool, error)
}

// LaunchBridge is the part of the backend a launch talks to.
type LaunchBridge interface {
	ports.GateBackend
	ports.LaunchBackend
	ports.MonitorBackend
}

type OrchestratorConfig struct {
	AdvisoryCountdown  int
	AdvisoryTick       time.Duration
	StopReconcileDelay time.Duration
	MonitorInterval    time.Duration
}

func (c OrchestratorConfig) withDefaults() OrchestratorConfig {
	if c.AdvisoryCountdown <= 0 {
		c.AdvisoryCountdown = DefaultAdvisoryCountdown
	}
	if c.AdvisoryTick <= 0 {
		c.AdvisoryTick = DefaultAdvisoryTick
	}
	if c.StopReconcileDelay <= 0 {
		c.StopReconcileDelay = DefaultStopReconcileDelay
	}
	if c.MonitorInterval <= 0 {
		c.MonitorInterval = DefaultMonitorInterval
	}

	return c
}

type OrchestratorDeps struct {
	Paths       PathResolver
	Bridge      LaunchBridge
	Preferences ports.PreferenceRepository
	Games       ports.GameRepository
	Sessions    ports.SessionLog
	Presenter   ports.LaunchPresenter
	Clock       ports.Clock
	Logger      *slog.Logger
}

// Orchestrator drives one launch at a time from path resolution through the
// advisory and certificate gates to a monitored running game.
//
// flow serializes every transition together with the backend calls it makes,
// so at most one gate check or launch call is outstanding. mu only guards
// reads of state from outside the flow.
type Orchestrator struct {
	paths     PathResolver
	bridge    LaunchBridge
	prefs     ports.PreferenceRepository
	games     ports.GameRepository
	sessions  ports.SessionLog
	presenter ports.LaunchPresenter
	clock     ports.Clock
	logger    *slog.Logger
	cfg       OrchestratorConfig
	monitor   *Monitor

	ctx    context.Context
	cancel context.CancelFunc

	flow sync.Mutex
	mu   sync.RWMutex

	state          domain.LaunchState
	countdown      ports.Timer
	countdownID    uint64
	reconcile      ports.Timer
	reconcileID    uint64
	monitorSession uint64
	historyID      string
	closed         bool
}

func NewOrchestrator(deps OrchestratorDeps, cfg OrchestratorConfig) *Orchestrator {
	cfg = cfg.withDefaults()
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Presenter == nil {
		deps.Presenter = ports.NopPresenter{}
	}
	logger := loggerOrDiscard(deps.Logger)
	ctx, cancel := context.WithCancel(context.Background())

	return &Orchestrator{
		paths:     deps.Paths,
		bridge:    deps.Bridge,
		prefs:     deps.Preferences,
		games:     deps.Games,
		sessions:  deps.Sessions,
		presenter: deps.Presenter,
		clock:     deps.Clock,
		logger:    logger,
		cfg:       cfg,
		monitor:   NewMonitor(deps.Bridge, deps.Clock, cfg.MonitorInterval, logger),
		ctx:       ctx,
		cancel:    cancel,
		state:     domain.Idle{},
	}
}

func (o *Orchestrator) State() domain.LaunchState {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.state
}

// GameRunning reports the local view of whether the launched game is alive.
func (o *Orchestrator) GameRunning() bool {
	_, running := o.State().(domain.Running)
	return running && o.monitor.Running()
}

// Select starts a launch for the chosen game, version and channel. It returns
// once the launch is running, waiting on a gate, or back in Idle.
func (o *Orchestrator) Select(ctx context.Context, launch domain.LaunchContext) error {
	o.flow.Lock()
	defer o.flow.Unlock()

	if o.closed {
		return ErrOrchestratorClosed
	}
	if err := launch.Validate(); err != nil {
		return fmt.Errorf("select launch: %w", err)
	}
	if current := o.State(); current.Kind() != domain.StateIdle {
		return fmt.Errorf("%w: select while %s", domain.ErrInvalidTransition, current.Kind())
	}

	o.transitionLocked(domain.ResolvingPath{Launch: launch})
	path, ok, err := o.paths.Resolve(ctx, launch.Game, launch.Version, launch.Channel)
	if err != nil {
		o.logger.Warn("installation path lookup failed", "game", launch.Game, "version", launch.Version, "channel", launch.Channel, "err", err)
	}
	if err != nil || !ok {
		o.presenter.PathNotConfigured(launch)
		o.transitionLocked(domain.Idle{})
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrPathNotConfigured, launch, err)
		}
		return fmt.Errorf("%w: %s", domain.ErrPathNotConfigured, launch)
	}

	return o.checkAdvisoryLocked(ctx, launch, path)
}

// ContinueAdvisory leaves the advisory gate, honouring the suppress flag.
func (o *Orchestrator) ContinueAdvisory(ctx context.Context) error {
	o.flow.Lock()
	defer o.flow.Unlock()

	pending, ok := o.State().(domain.AdvisoryPending)
	if !ok {
		return fmt.Errorf("%w: continue advisory while %s", domain.ErrInvalidTransition, o.State().Kind())
	}
	o.stopCountdownLocked()

	return o.continueAdvisoryLocked(ctx, pending)
}

func (o *Orchestrator) CancelAdvisory() error {
	o.flow.Lock()
	defer o.flow.Unlock()

	if _, ok := o.State().(domain.AdvisoryPending); !ok {
		return fmt.Errorf("%w: cancel advisory while %s", domain.ErrInvalidTransition, o.State().Kind())
	}
	o.stopCountdownLocked()
	o.transitionLocked(domain.Idle{})

	return nil
}

// SetSuppressAdvisory updates the suppress flag of the pending advisory. The
// value is read when the gate is left, whether by the user or the countdown.
func (o *Orchestrator) SetSuppressAdvisory(suppress bool) error {
	o.flow.Lock()
	defer o.flow.Unlock()

	pending, ok := o.State().(domain.AdvisoryPending)
	if !ok {
		return fmt.Errorf("%w: toggle suppression while %s", domain.ErrInvalidTransition, o.State().Kind())
	}
	pending.Suppress = suppress
	o.transitionLocked(pending)

	return nil
}

// CompleteSSLInstall leaves the certificate gate after the certificate was
// installed.
func (o *Orchestrator) CompleteSSLInstall(ctx context.Context) error {
	o.flow.Lock()
	defer o.flow.Unlock()

	pending, ok := o.State().(domain.SSLPending)
	if !ok {
		return fmt.Errorf("%w: complete certificate install while %s", domain.ErrInvalidTransition, o.State().Kind())
	}

	return o.launchLocked(ctx, pending.Launch, pending.Path)
}

// CloseSSLPrompt asks the user whether to launch without the certificate.
// Declining, or failing to ask, cancels the launch.
func (o *Orchestrator) CloseSSLPrompt(ctx context.Context) error {
	o.flow.Lock()
	defer o.flow.Unlock()

	pending, ok := o.State().(domain.SSLPending)
	if !ok {
		return fmt.Errorf("%w: close certificate prompt while %s", domain.ErrInvalidTransition, o.State().Kind())
	}

	confirmed, err := o.presenter.ConfirmLaunchWithoutCertificate(ctx)
	if err != nil {
		o.logger.Warn("certificate confirmation failed", "err", err)
	}
	if err != nil || !confirmed {
		o.transitionLocked(domain.Idle{})
		return nil
	}

	return o.launchLocked(ctx, pending.Launch, pending.Path)
}

// Stop terminates the running game. Local state flips to Idle right away
// even when the backend stop calls fail; a delayed probe restores Running if
// the backend still reports the game alive.
func (o *Orchestrator) Stop(ctx context.Context) error {
	o.flow.Lock()
	defer o.flow.Unlock()

	running, ok := o.State().(domain.Running)
	if !ok {
		return fmt.Errorf("%w: stop while %s", domain.ErrInvalidTransition, o.State().Kind())
	}

	o.transitionLocked(domain.Stopping{Launch: running.Launch, Path: running.Path, ProcessID: running.ProcessID})
	o.monitor.Stop()

	var stopErr error
	if err := o.bridge.ForceStopGameMonitor(ctx); err != nil {
		stopErr = errors.Join(stopErr, fmt.Errorf("force stop game monitor: %w", err))
	}
	if running.KnownProcess() {
		if err := o.bridge.StopGameProcess(ctx, running.ProcessID); err != nil {
			stopErr = errors.Join(stopErr, fmt.Errorf("stop game process %d: %w", running.ProcessID, err))
		}
	} else {
		if err := o.bridge.StopGame(ctx, running.Launch.Game); err != nil {
			stopErr = errors.Join(stopErr, fmt.Errorf("stop game %s: %w", running.Launch.Game, err))
		}
	}
	if stopErr != nil {
		o.logger.Warn("stop game failed", "game", running.Launch.Game, "err", stopErr)
		o.presenter.StopFailed(stopErr)
	}

	o.finishRunningLocked(ctx, domain.SessionEndStopped)
	o.scheduleReconcileLocked(running)

	return stopErr
}

// Close cancels every pending timer and the monitor. It does not stop a
// running game.
func (o *Orchestrator) Close() {
	o.flow.Lock()
	defer o.flow.Unlock()

	if o.closed {
		return
	}
	o.closed = true
	o.stopCountdownLocked()
	o.stopReconcileLocked()
	o.monitor.Stop()
	o.cancel()
}

func (o *Orchestrator) checkAdvisoryLocked(ctx context.Context, launch domain.LaunchContext, path string) error {
	o.transitionLocked(domain.CheckingAdvisory{Launch: launch, Path: path})

	advisory, err := o.bridge.CheckPatchMessage(ctx, launch, path)
	if err != nil {
		o.logger.Warn("advisory check failed, continuing", "game", launch.Game, "version", launch.Version, "channel", launch.Channel, "err", err)
		return o.checkSSLLocked(ctx, launch, path)
	}
	if !advisory.Present() {
		return o.checkSSLLocked(ctx, launch, path)
	}

	now := o.clock.Now()
	suppressed, ok, err := o.prefs.SuppressedAdvisory(ctx, now)
	if err != nil {
		o.logger.Warn("read suppressed advisory failed", "err", err)
		ok = false
	}
	if ok && suppressed.Suppresses(advisory.Message, now) {
		o.logger.Debug("advisory suppressed", "until", suppressed.ExpiresAt)
		return o.checkSSLLocked(ctx, launch, path)
	}

	o.transitionLocked(domain.AdvisoryPending{
		Launch:    launch,
		Path:      path,
		Message:   advisory.Message,
		Remaining: o.cfg.AdvisoryCountdown,
	})
	o.startCountdownLocked()

	return nil
}

func (o *Orchestrator) continueAdvisoryLocked(ctx context.Context, pending domain.AdvisoryPending) error {
	if pending.Suppress {
		suppressed := domain.SuppressUntilMidnight(pending.Message, o.clock.Now())
		if err := o.prefs.SaveSuppressedAdvisory(ctx, suppressed); err != nil {
			o.logger.Warn("save suppressed advisory failed", "err", err)
		}
	}

	return o.checkSSLLocked(ctx, pending.Launch, pending.Path)
}

func (o *Orchestrator) checkSSLLocked(ctx context.Context, launch domain.LaunchContext, path string) error {
	o.transitionLocked(domain.CheckingSSL{Launch: launch, Path: path})

	installed, err := o.bridge.CheckSSLCertificateInstalled(ctx)
	if err != nil {
		o.logger.Warn("certificate check failed, continuing", "game", launch.Game, "err", err)
		return o.launchLocked(ctx, launch, path)
	}
	if installed {
		return o.launchLocked(ctx, launch, path)
	}

	o.transitionLocked(domain.SSLPending{Launch: launch, Path: path})
	return nil
}

func (o *Orchestrator) launchLocked(ctx context.Context, launch domain.LaunchContext, path string) error {
	o.transitionLocked(domain.Launching{Launch: launch, Path: path})

	deleteHoyoPass := true
	if value, err := o.prefs.DeleteHoyoPass(ctx); err != nil {
		o.logger.Warn("read launch preference failed, using default", "err", err)
	} else {
		deleteHoyoPass = value
	}

	result, err := o.bridge.LaunchGame(ctx, ports.LaunchRequest{
		Launch:         launch,
		GameFolderPath: path,
		DeleteHoyoPass: deleteHoyoPass,
	})
	if err != nil {
		if diag, ok := domain.ParsePatchDiagnostic(err.Error()); ok {
			o.presenter.PatchNotFound(diag)
		} else {
			o.presenter.LaunchFailed(err)
		}
		o.transitionLocked(domain.Idle{})
		return fmt.Errorf("launch game: %w", err)
	}

	processID, _ := domain.ParseProcessID(result)
	running := domain.Running{Launch: launch, Path: path, ProcessID: processID, StartedAt: o.clock.Now()}
	o.startRunningLocked(ctx, running)

	if o.games != nil {
		if err := o.games.MarkPlayed(ctx, launch.Game, running.StartedAt); err != nil {
			o.logger.Warn("record last played failed", "game", launch.Game, "err", err)
		}
	}

	return nil
}

func (o *Orchestrator) startRunningLocked(ctx context.Context, running domain.Running) {
	o.transitionLocked(running)
	o.monitorSession = o.monitor.Start(running.ProcessID, o.onMonitorStopped)

	if o.sessions == nil {
		return
	}
	id, err := o.sessions.Start(ctx, domain.Session{
		Launch:    running.Launch,
		Path:      running.Path,
		ProcessID: running.ProcessID,
		StartedAt: running.StartedAt,
	})
	if err != nil {
		o.logger.Warn("record session start failed", "game", running.Launch.Game, "err", err)
		return
	}
	o.historyID = id
}

func (o *Orchestrator) onMonitorStopped(event MonitorEvent) {
	o.flow.Lock()
	defer o.flow.Unlock()

	if o.closed || event.SessionID != o.monitorSession {
		return
	}
	if _, ok := o.State().(domain.Running); !ok {
		return
	}

	o.finishRunningLocked(o.ctx, event.Reason)
}

// finishRunningLocked is the single way out of a running game. It always
// stops the proxy.
func (o *Orchestrator) finishRunningLocked(ctx context.Context, reason domain.SessionEndReason) {
	if err := o.bridge.StopProxy(ctx); err != nil {
		o.logger.Warn("stop proxy failed", "err", err)
	}
	o.monitorSession = 0
	o.transitionLocked(domain.Idle{})

	if o.sessions == nil || o.historyID == "" {
		return
	}
	if err := o.sessions.Finish(ctx, o.historyID, o.clock.Now(), reason); err != nil {
		o.logger.Warn("record session end failed", "session", o.historyID, "err", err)
	}
	o.historyID = ""
}

func (o *Orchestrator) scheduleReconcileLocked(running domain.Running) {
	o.stopReconcileLocked()
	o.reconcileID++
	id := o.reconcileID
	o.reconcile = o.clock.AfterFunc(o.cfg.StopReconcileDelay, func() { o.reconcileAfterStop(id, running) })
}

func (o *Orchestrator) reconcileAfterStop(id uint64, running domain.Running) {
	o.flow.Lock()
	defer o.flow.Unlock()

	if o.closed || id != o.reconcileID {
		return
	}
	o.reconcile = nil
	if o.State().Kind() != domain.StateIdle {
		return
	}

	active, err := o.bridge.IsGameMonitorActive(o.ctx)
	if err != nil {
		o.logger.Debug("post-stop probe failed", "err", err)
		return
	}
	if !active {
		return
	}

	o.logger.Warn("game still running after stop", "game", running.Launch.Game, "pid", running.ProcessID)
	o.startRunningLocked(o.ctx, running)
}

func (o *Orchestrator) startCountdownLocked() {
	o.stopCountdownLocked()
	id := o.countdownID
	o.countdown = o.clock.AfterFunc(o.cfg.AdvisoryTick, func() { o.countdownTick(id) })
}

func (o *Orchestrator) stopCountdownLocked() {
	o.countdownID++
	if o.countdown != nil {
		o.countdown.Stop()
		o.countdown = nil
	}
}

func (o *Orchestrator) countdownTick(id uint64) {
	o.flow.Lock()
	defer o.flow.Unlock()

	if o.closed || id != o.countdownID {
		return
	}
	pending, ok := o.State().(domain.AdvisoryPending)
	if !ok {
		return
	}

	pending.Remaining--
	if pending.Remaining > 0 {
		o.transitionLocked(pending)
		o.countdown = o.clock.AfterFunc(o.cfg.AdvisoryTick, func() { o.countdownTick(id) })
		return
	}

	o.stopCountdownLocked()
	o.transitionLocked(pending)
	if err := o.continueAdvisoryLocked(o.ctx, pending); err != nil {
		o.logger.Warn("launch after advisory countdown failed", "game", pending.Launch.Game, "err", err)
	}
}

func (o *Orchestrator) stopReconcileLocked() {
	if o.reconcile != nil {
		o.reconcile.Stop()
		o.reconcile = nil
	}
}

func (o *Orchestrator) transitionLocked(state domain.LaunchState) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()

	o.presenter.StateChanged(state)
}
