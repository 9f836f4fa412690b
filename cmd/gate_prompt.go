package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/gamectl/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type launchDoneMsg struct{}

type selectFailedMsg struct {
	err error
}

type actionDoneMsg struct {
	err error
}

var (
	gateTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	gateMessageStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")).Padding(0, 1)
	gateHintStyle    = lipgloss.NewStyle().Faint(true)
	gateWarnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	gateOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

// gateModel is the interactive view of one launch: the advisory countdown,
// the certificate prompt and the running game.
type gateModel struct {
	session *launchSession
	state   domain.LaunchState
	confirm *confirmEvent
	notes   []string
	err     error
	quit    bool
}

func newGateModel(session *launchSession) gateModel {
	return gateModel{session: session, state: domain.Idle{}}
}

func (m gateModel) Init() tea.Cmd {
	return nil
}

func (m gateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateEvent:
		m.state = msg.state
		return m, nil
	case failureEvent:
		m.notes = append(m.notes, msg.text)
		return m, nil
	case confirmEvent:
		m.confirm = &msg
		return m, nil
	case actionDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, domain.ErrInvalidTransition) {
			m.notes = append(m.notes, msg.err.Error())
		}
		return m, nil
	case selectFailedMsg:
		m.err = msg.err
		m.quit = true
		return m, tea.Quit
	case launchDoneMsg:
		m.quit = true
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	default:
		return m, nil
	}
}

func (m gateModel) handleKey(key string) (tea.Model, tea.Cmd) {
	orchestrator := m.session.orchestrator

	if m.confirm != nil {
		switch key {
		case "y", "Y":
			m.confirm.reply <- true
			m.confirm = nil
		case "n", "N", "esc", "ctrl+c":
			m.confirm.reply <- false
			m.confirm = nil
		}
		return m, nil
	}

	switch state := m.state.(type) {
	case domain.AdvisoryPending:
		switch key {
		case "enter":
			return m, action(func() error { return orchestrator.ContinueAdvisory(context.Background()) })
		case "s", " ":
			return m, action(func() error { return orchestrator.SetSuppressAdvisory(!state.Suppress) })
		case "esc", "q", "ctrl+c":
			return m, action(orchestrator.CancelAdvisory)
		}
	case domain.SSLPending:
		switch key {
		case "i":
			return m, action(func() error { return orchestrator.CompleteSSLInstall(context.Background()) })
		case "c", "enter", "esc", "q":
			return m, action(func() error { return orchestrator.CloseSSLPrompt(context.Background()) })
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		}
	case domain.Running:
		switch key {
		case "s", "ctrl+c":
			return m, action(func() error { return orchestrator.Stop(context.Background()) })
		case "d":
			m.quit = true
			return m, tea.Quit
		}
	default:
		if key == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func action(run func() error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: run()}
	}
}

func (m gateModel) View() string {
	if m.quit {
		return ""
	}

	var lines []string
	if launch, ok := domain.LaunchOf(m.state); ok {
		lines = append(lines, gateTitleStyle.Render(launch.String()))
	}

	switch state := m.state.(type) {
	case domain.AdvisoryPending:
		suppress := "[ ]"
		if state.Suppress {
			suppress = "[x]"
		}
		lines = append(lines,
			gateMessageStyle.Render(state.Message),
			fmt.Sprintf("Launching in %ds", state.Remaining),
			fmt.Sprintf("%s don't show this message again today", suppress),
			gateHintStyle.Render("enter: continue  s: toggle  esc: cancel"),
		)
	case domain.SSLPending:
		lines = append(lines,
			gateWarnStyle.Render("The proxy certificate is not trusted."),
			"Install it and the launch continues on its own.",
			gateHintStyle.Render("i: installed  c: continue without it"),
		)
	case domain.Running:
		lines = append(lines,
			gateOKStyle.Render(fmt.Sprintf("Running (pid %d)", state.ProcessID)),
			gateHintStyle.Render("s: stop game  d: detach"),
		)
	case domain.Idle:
	default:
		lines = append(lines, gateHintStyle.Render(string(m.state.Kind())+"..."))
	}

	if m.confirm != nil {
		lines = append(lines, gateWarnStyle.Render("Launch without the certificate? [y/N]"))
	}
	for _, note := range m.notes {
		lines = append(lines, gateWarnStyle.Render(note))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (s *launchSession) runInteractive(ctx context.Context, in io.Reader, out io.Writer, launch domain.LaunchContext) error {
	p := tea.NewProgram(
		newGateModel(s),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	send := func(event any) { p.Send(event) }
	selectErr := s.start(ctx, launch)
	go func() {
		for {
			select {
			case event := <-s.presenter.events:
				s.dispatch(event, send)
			case err := <-selectErr:
				if err != nil {
					s.drain(send)
					p.Send(selectFailedMsg{err: err})
					return
				}
				selectErr = nil
			case <-s.finished:
				s.drain(send)
				p.Send(launchDoneMsg{})
				return
			case <-s.presenter.done:
				return
			}
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(gateModel)
	if !ok {
		return fmt.Errorf("unexpected final launch model type %T", finalModel)
	}
	if result.err != nil {
		return result.err
	}
	if len(result.notes) > 0 {
		_, _ = fmt.Fprintln(out, strings.Join(result.notes, "\n"))
		return s.err()
	}

	return nil
}
