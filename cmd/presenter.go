package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

const presenterQueueSize = 256

type stateEvent struct {
	state domain.LaunchState
}

type failureEvent struct {
	text string
}

type confirmEvent struct {
	reply chan bool
}

// cliPresenter queues orchestrator callbacks for the launch loop. It never
// calls back into the orchestrator itself.
type cliPresenter struct {
	events    chan any
	done      chan struct{}
	clipboard io.Writer
	prompt    bool
	assumeYes bool
	logger    *slog.Logger
}

var _ ports.LaunchPresenter = (*cliPresenter)(nil)

// newCLIPresenter builds a presenter. When prompt is false the certificate
// question is answered with assumeYes. Patch diagnostics are copied to
// clipboard with OSC 52 when it is set.
func newCLIPresenter(prompt, assumeYes bool, clipboard io.Writer, logger *slog.Logger) *cliPresenter {
	return &cliPresenter{
		events:    make(chan any, presenterQueueSize),
		done:      make(chan struct{}),
		clipboard: clipboard,
		prompt:    prompt,
		assumeYes: assumeYes,
		logger:    logger,
	}
}

func (p *cliPresenter) StateChanged(state domain.LaunchState) {
	p.push(stateEvent{state: state})
}

func (p *cliPresenter) PathNotConfigured(launch domain.LaunchContext) {
	p.push(failureEvent{text: fmt.Sprintf(
		"No installation path for %s %s channel %d. Run gamectl path set or gamectl scan --save first.",
		launch.Game, launch.Version, launch.Channel,
	)})
}

func (p *cliPresenter) ConfirmLaunchWithoutCertificate(ctx context.Context) (bool, error) {
	if !p.prompt {
		return p.assumeYes, nil
	}

	reply := make(chan bool, 1)
	p.push(confirmEvent{reply: reply})
	select {
	case confirmed := <-reply:
		return confirmed, nil
	case <-p.done:
		return false, context.Canceled
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (p *cliPresenter) LaunchFailed(err error) {
	p.push(failureEvent{text: fmt.Sprintf("Launch failed: %v", err)})
}

func (p *cliPresenter) PatchNotFound(diag domain.PatchDiagnostic) {
	text := diag.Text()
	if p.clipboard != nil {
		if encoded, err := diag.Encode(); err == nil {
			if _, err := osc52.New(encoded).WriteTo(p.clipboard); err != nil {
				p.logger.Debug("copy diagnostic to clipboard failed", "err", err)
			} else {
				text += "\n(diagnostic copied to clipboard)"
			}
		}
	}
	p.push(failureEvent{text: text})
}

func (p *cliPresenter) StopFailed(err error) {
	p.push(failureEvent{text: fmt.Sprintf("Stop failed: %v", err)})
}

// close releases pending confirmations and drops later callbacks.
func (p *cliPresenter) close() {
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

func (p *cliPresenter) push(event any) {
	select {
	case p.events <- event:
	case <-p.done:
	}
}
