package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bnema/gamectl/internal/application"
	"github.com/bnema/gamectl/internal/domain"
	"github.com/spf13/cobra"
)

const reconcileGrace = 500 * time.Millisecond

func newLaunchCmd(app *app) *cobra.Command {
	var (
		flags     launchFlags
		assumeYes bool
		detach    bool
	)

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch a game through the advisory and certificate checks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			launch, err := flags.launch()
			if err != nil {
				return err
			}

			prompt := interactive(cmd.InOrStdin(), cmd.OutOrStdout())
			var clipboard io.Writer
			if isTerminal(cmd.ErrOrStderr()) {
				clipboard = cmd.ErrOrStderr()
			}
			presenter := newCLIPresenter(prompt, assumeYes, clipboard, app.logger)
			orchestrator := app.newOrchestrator(presenter)

			session := &launchSession{
				app:          app,
				orchestrator: orchestrator,
				presenter:    presenter,
				detach:       detach,
				assumeYes:    assumeYes,
			}
			defer session.close()

			if prompt {
				return session.runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), launch)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return session.runPlain(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), launch)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the advisory countdown and launch without a trusted certificate")
	cmd.Flags().BoolVar(&detach, "detach", false, "Return once the game runs instead of waiting for it to exit")

	return cmd
}

// launchSession drives one orchestrator from a command. It owns the trust
// store watch and decides when the command is finished.
type launchSession struct {
	app          *app
	orchestrator *application.Orchestrator
	presenter    *cliPresenter
	detach       bool
	assumeYes    bool

	mu          sync.Mutex
	stopWatch   context.CancelFunc
	failures    []string
	prev        domain.LaunchState
	leftIdle    bool
	finishTimer *time.Timer
	finished    chan struct{}
	finishOnce  sync.Once
}

func (s *launchSession) close() {
	s.mu.Lock()
	if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}
	if s.finishTimer != nil {
		s.finishTimer.Stop()
	}
	s.mu.Unlock()

	s.presenter.close()
	s.orchestrator.Close()
	s.finish()
}

func (s *launchSession) init() {
	s.finished = make(chan struct{})
	s.prev = domain.Idle{}
}

// observe updates the session with one presenter event.
func (s *launchSession) observe(event any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev := event.(type) {
	case failureEvent:
		s.failures = append(s.failures, ev.text)
	case stateEvent:
		s.observeStateLocked(ev.state)
	}
}

func (s *launchSession) observeStateLocked(state domain.LaunchState) {
	prev := s.prev
	s.prev = state

	if _, pending := state.(domain.SSLPending); pending {
		s.startCertWatchLocked()
	} else if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}

	if s.finishTimer != nil && state.Kind() != domain.StateIdle {
		s.finishTimer.Stop()
		s.finishTimer = nil
	}

	switch state.Kind() {
	case domain.StateIdle:
		if !s.leftIdle {
			return
		}
		if _, stopping := prev.(domain.Stopping); stopping {
			// Give the post-stop probe a chance to bring Running back.
			s.finishTimer = time.AfterFunc(s.app.orchestratorConfig.StopReconcileDelay+reconcileGrace, s.finish)
			return
		}
		s.finish()
	case domain.StateRunning:
		s.leftIdle = true
		if s.detach {
			s.finish()
		}
	default:
		s.leftIdle = true
	}
}

func (s *launchSession) finish() {
	if s.finished == nil {
		return
	}
	s.finishOnce.Do(func() { close(s.finished) })
}

func (s *launchSession) err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.failures) == 0 {
		return nil
	}
	return errors.New(strings.Join(s.failures, "\n"))
}

func (s *launchSession) startCertWatchLocked() {
	if s.stopWatch != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	err := watchTrustStore(ctx, s.app.backend.TrustDirs(), s.app.logger, func() {
		installed, err := s.app.backend.CheckSSLCertificateInstalled(ctx)
		if err != nil || !installed {
			return
		}
		if err := s.orchestrator.CompleteSSLInstall(context.Background()); err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
			s.app.logger.Warn("complete certificate install failed", "err", err)
		}
	})
	if err != nil {
		s.app.logger.Debug("trust store watch unavailable", "err", err)
		cancel()
		return
	}
	s.stopWatch = cancel
}

// start runs Select in the background. Presenter events must be passed to
// dispatch by the caller until the session finishes.
func (s *launchSession) start(ctx context.Context, launch domain.LaunchContext) <-chan error {
	s.init()
	selectErr := make(chan error, 1)
	go func() {
		selectErr <- s.orchestrator.Select(ctx, launch)
	}()

	return selectErr
}

func (s *launchSession) dispatch(event any, handle func(any)) {
	s.observe(event)
	handle(event)
}

// drain dispatches the events already queued by the presenter.
func (s *launchSession) drain(handle func(any)) {
	for {
		select {
		case event := <-s.presenter.events:
			s.dispatch(event, handle)
		default:
			return
		}
	}
}

func (s *launchSession) runPlain(ctx context.Context, out, errOut io.Writer, launch domain.LaunchContext) error {
	var advisoryShown bool
	handle := func(event any) {
		switch ev := event.(type) {
		case failureEvent:
			_, _ = fmt.Fprintln(errOut, ev.text)
		case stateEvent:
			switch state := ev.state.(type) {
			case domain.AdvisoryPending:
				if !advisoryShown {
					advisoryShown = true
					_, _ = fmt.Fprintf(out, "Advisory for %s:\n%s\n", state.Launch, state.Message)
					if s.assumeYes {
						go s.act(func() error { return s.orchestrator.ContinueAdvisory(context.Background()) })
						return
					}
				}
				if state.Remaining%10 == 0 {
					_, _ = fmt.Fprintf(out, "Launching in %ds (Ctrl-C to cancel)\n", state.Remaining)
				}
			case domain.SSLPending:
				if s.assumeYes {
					go s.act(func() error { return s.orchestrator.CloseSSLPrompt(context.Background()) })
					return
				}
				_, _ = fmt.Fprintln(out, "The proxy certificate is not trusted yet. Install it and the launch continues, or rerun with --yes.")
			case domain.Running:
				advisoryShown = false
				_, _ = fmt.Fprintf(out, "%s is running (pid %d). Press Ctrl-C to stop it.\n", state.Launch.Game, state.ProcessID)
			case domain.Stopping:
				_, _ = fmt.Fprintf(out, "Stopping %s...\n", state.Launch.Game)
			}
		}
	}

	selectErr := s.start(ctx, launch)

	interrupted := ctx.Done()
	for {
		select {
		case event := <-s.presenter.events:
			s.dispatch(event, handle)
		case err := <-selectErr:
			if err != nil {
				s.drain(handle)
				return err
			}
			selectErr = nil
		case <-interrupted:
			interrupted = nil
			s.interrupt()
		case <-s.finished:
			s.drain(handle)
			return s.err()
		}
	}
}

// interrupt stops the running game or abandons a pending gate.
func (s *launchSession) interrupt() {
	switch s.orchestrator.State().(type) {
	case domain.Running:
		go s.act(func() error { return s.orchestrator.Stop(context.Background()) })
	case domain.AdvisoryPending:
		go s.act(s.orchestrator.CancelAdvisory)
	default:
		s.finish()
	}
}

func (s *launchSession) act(action func() error) {
	if err := action(); err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
		s.app.logger.Warn("launch action failed", "err", err)
	}
}
