package domain

import "time"

type LaunchStateKind string

const (
	StateIdle             LaunchStateKind = "Idle"
	StateResolvingPath    LaunchStateKind = "ResolvingPath"
	StateCheckingAdvisory LaunchStateKind = "CheckingAdvisory"
	StateAdvisoryPending  LaunchStateKind = "AdvisoryPending"
	StateCheckingSSL      LaunchStateKind = "CheckingSSL"
	StateSSLPending       LaunchStateKind = "SSLPending"
	StateLaunching        LaunchStateKind = "Launching"
	StateRunning          LaunchStateKind = "Running"
	StateStopping         LaunchStateKind = "Stopping"
)

// LaunchState is the single active state of a launch. Each variant carries
// only the fields that are valid while it is active.
type LaunchState interface {
	Kind() LaunchStateKind
	isLaunchState()
}

type Idle struct{}

type ResolvingPath struct {
	Launch LaunchContext
}

type CheckingAdvisory struct {
	Launch LaunchContext
	Path   string
}

type AdvisoryPending struct {
	Launch    LaunchContext
	Path      string
	Message   string
	Remaining int
	Suppress  bool
}

type CheckingSSL struct {
	Launch LaunchContext
	Path   string
}

type SSLPending struct {
	Launch LaunchContext
	Path   string
}

type Launching struct {
	Launch LaunchContext
	Path   string
}

type Running struct {
	Launch    LaunchContext
	Path      string
	ProcessID int
	StartedAt time.Time
}

type Stopping struct {
	Launch    LaunchContext
	Path      string
	ProcessID int
}

func (Idle) Kind() LaunchStateKind             { return StateIdle }
func (ResolvingPath) Kind() LaunchStateKind    { return StateResolvingPath }
func (CheckingAdvisory) Kind() LaunchStateKind { return StateCheckingAdvisory }
func (AdvisoryPending) Kind() LaunchStateKind  { return StateAdvisoryPending }
func (CheckingSSL) Kind() LaunchStateKind      { return StateCheckingSSL }
func (SSLPending) Kind() LaunchStateKind       { return StateSSLPending }
func (Launching) Kind() LaunchStateKind        { return StateLaunching }
func (Running) Kind() LaunchStateKind          { return StateRunning }
func (Stopping) Kind() LaunchStateKind         { return StateStopping }

func (Idle) isLaunchState()             {}
func (ResolvingPath) isLaunchState()    {}
func (CheckingAdvisory) isLaunchState() {}
func (AdvisoryPending) isLaunchState()  {}
func (CheckingSSL) isLaunchState()      {}
func (SSLPending) isLaunchState()       {}
func (Launching) isLaunchState()        {}
func (Running) isLaunchState()          {}
func (Stopping) isLaunchState()         {}

func (r Running) KnownProcess() bool {
	return r.ProcessID > 0
}

// LaunchOf returns the launch context carried by state, if any.
func LaunchOf(state LaunchState) (LaunchContext, bool) {
	switch s := state.(type) {
	case ResolvingPath:
		return s.Launch, true
	case CheckingAdvisory:
		return s.Launch, true
	case AdvisoryPending:
		return s.Launch, true
	case CheckingSSL:
		return s.Launch, true
	case SSLPending:
		return s.Launch, true
	case Launching:
		return s.Launch, true
	case Running:
		return s.Launch, true
	case Stopping:
		return s.Launch, true
	default:
		return LaunchContext{}, false
	}
}
