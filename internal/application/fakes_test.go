package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type fakeBridge struct {
	mu sync.Mutex

	advisory     domain.Advisory
	advisoryErr  error
	sslInstalled bool
	sslErr       error
	launchResult any
	launchErr    error
	active       bool
	activeErr    error
	forceStopErr error
	stopPIDErr   error
	stopGameErr  error
	stopProxyErr error

	calls        map[string]int
	requests     []ports.LaunchRequest
	stoppedPIDs  []int
	stoppedGames []domain.GameID
}

var _ LaunchBridge = (*fakeBridge)(nil)

func newFakeBridge() *fakeBridge {
	return &fakeBridge{sslInstalled: true, active: true, launchResult: 4242, calls: map[string]int{}}
}

func (b *fakeBridge) record(name string) {
	b.calls[name]++
}

func (b *fakeBridge) count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls[name]
}

func (b *fakeBridge) set(fn func(*fakeBridge)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fn(b)
}

func (b *fakeBridge) CheckPatchMessage(_ context.Context, _ domain.LaunchContext, _ string) (domain.Advisory, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("check_patch_message")
	return b.advisory, b.advisoryErr
}

func (b *fakeBridge) CheckSSLCertificateInstalled(context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("check_ssl")
	return b.sslInstalled, b.sslErr
}

func (b *fakeBridge) LaunchGame(_ context.Context, req ports.LaunchRequest) (any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("launch_game")
	b.requests = append(b.requests, req)
	return b.launchResult, b.launchErr
}

func (b *fakeBridge) StopGameProcess(_ context.Context, processID int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("stop_game_process")
	b.stoppedPIDs = append(b.stoppedPIDs, processID)
	return b.stopPIDErr
}

func (b *fakeBridge) StopGame(_ context.Context, game domain.GameID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("stop_game")
	b.stoppedGames = append(b.stoppedGames, game)
	return b.stopGameErr
}

func (b *fakeBridge) StopProxy(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("stop_proxy")
	return b.stopProxyErr
}

func (b *fakeBridge) IsGameMonitorActive(context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("is_game_monitor_active")
	return b.active, b.activeErr
}

func (b *fakeBridge) ForceStopGameMonitor(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record("force_stop_game_monitor")
	return b.forceStopErr
}

type recordingPresenter struct {
	mu sync.Mutex

	states            []domain.LaunchState
	pathNotConfigured []domain.LaunchContext
	launchFailures    []error
	patchNotFound     []domain.PatchDiagnostic
	stopFailures      []error

	confirm      bool
	confirmErr   error
	confirmCalls int
}

var _ ports.LaunchPresenter = (*recordingPresenter)(nil)

func (p *recordingPresenter) StateChanged(state domain.LaunchState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, state)
}

func (p *recordingPresenter) PathNotConfigured(launch domain.LaunchContext) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pathNotConfigured = append(p.pathNotConfigured, launch)
}

func (p *recordingPresenter) ConfirmLaunchWithoutCertificate(context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirmCalls++
	return p.confirm, p.confirmErr
}

func (p *recordingPresenter) LaunchFailed(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.launchFailures = append(p.launchFailures, err)
}

func (p *recordingPresenter) PatchNotFound(diag domain.PatchDiagnostic) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.patchNotFound = append(p.patchNotFound, diag)
}

func (p *recordingPresenter) StopFailed(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopFailures = append(p.stopFailures, err)
}

func (p *recordingPresenter) kinds() []domain.LaunchStateKind {
	p.mu.Lock()
	defer p.mu.Unlock()

	kinds := make([]domain.LaunchStateKind, 0, len(p.states))
	for _, state := range p.states {
		kinds = append(kinds, state.Kind())
	}
	return kinds
}

type memPaths struct {
	mu      sync.Mutex
	records map[domain.GameID]domain.InstallRecord
	saved   int
}

var _ ports.PathRepository = (*memPaths)(nil)

func newMemPaths(records ...domain.InstallRecord) *memPaths {
	repo := &memPaths{records: map[domain.GameID]domain.InstallRecord{}}
	for _, record := range records {
		repo.records[record.Game] = record
	}
	return repo
}

func (r *memPaths) Get(_ context.Context, game domain.GameID) (domain.InstallRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[game]
	if !ok {
		return domain.InstallRecord{}, fmt.Errorf("%w: %s", domain.ErrGameNotFound, game)
	}
	return record, nil
}

func (r *memPaths) List(context.Context) ([]domain.InstallRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.InstallRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *memPaths) Save(_ context.Context, record domain.InstallRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.Game] = record
	r.saved++
	return nil
}

type memPrefs struct {
	mu sync.Mutex

	deleteHoyoPass    bool
	deleteHoyoPassErr error
	suppressed        *domain.SuppressedAdvisory
	saves             []domain.SuppressedAdvisory
}

var _ ports.PreferenceRepository = (*memPrefs)(nil)

func newMemPrefs() *memPrefs {
	return &memPrefs{deleteHoyoPass: true}
}

func (p *memPrefs) DeleteHoyoPass(context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.deleteHoyoPass, p.deleteHoyoPassErr
}

func (p *memPrefs) SetDeleteHoyoPass(_ context.Context, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleteHoyoPass = value
	return nil
}

func (p *memPrefs) SuppressedAdvisory(_ context.Context, now time.Time) (domain.SuppressedAdvisory, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.suppressed == nil {
		return domain.SuppressedAdvisory{}, false, nil
	}
	if !p.suppressed.Valid() || p.suppressed.Expired(now) {
		p.suppressed = nil
		return domain.SuppressedAdvisory{}, false, nil
	}
	return *p.suppressed, true, nil
}

func (p *memPrefs) SaveSuppressedAdvisory(_ context.Context, advisory domain.SuppressedAdvisory) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.suppressed = &advisory
	p.saves = append(p.saves, advisory)
	return nil
}

func (p *memPrefs) ClearSuppressedAdvisory(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.suppressed = nil
	return nil
}

type memGames struct {
	mu     sync.Mutex
	played map[domain.GameID]time.Time
}

var _ ports.GameRepository = (*memGames)(nil)

func newMemGames() *memGames {
	return &memGames{played: map[domain.GameID]time.Time{}}
}

func (g *memGames) GetByID(_ context.Context, id domain.GameID) (domain.Game, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return domain.Game{ID: id, LastPlayedAt: g.played[id]}, nil
}

func (g *memGames) List(context.Context) ([]domain.Game, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.Game, 0, len(g.played))
	for id, at := range g.played {
		out = append(out, domain.Game{ID: id, LastPlayedAt: at})
	}
	return out, nil
}

func (g *memGames) MarkPlayed(_ context.Context, id domain.GameID, at time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.played[id] = at
	return nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions []domain.Session
}

var _ ports.SessionLog = (*memSessions)(nil)

func (s *memSessions) Start(_ context.Context, session domain.Session) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.ID = fmt.Sprintf("session-%d", len(s.sessions)+1)
	s.sessions = append(s.sessions, session)
	return session.ID, nil
}

func (s *memSessions) Finish(_ context.Context, id string, endedAt time.Time, reason domain.SessionEndReason) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions[i].EndedAt = endedAt
			s.sessions[i].EndReason = reason
			return nil
		}
	}
	return fmt.Errorf("session %s not found", id)
}

func (s *memSessions) Recent(_ context.Context, limit int) ([]domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 || limit > len(s.sessions) {
		limit = len(s.sessions)
	}
	return append([]domain.Session(nil), s.sessions[len(s.sessions)-limit:]...), nil
}

func (s *memSessions) all() []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Session(nil), s.sessions...)
}
