package scan

import (
	"errors"
	"io"

	"github.com/bnema/gamectl/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func run(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// Drives renders the drive table with a free space bar per drive.
func Drives(drives []domain.DriveInfo) (string, error) {
	return run(func(s styles) string { return renderDrives(drives, s) })
}

// Results renders the verification state of discovered paths in order.
func Results(game domain.GameID, results []domain.PathCheckResult) (string, error) {
	return run(func(s styles) string { return renderResults(game, results, s) })
}

func Paths(records []domain.InstallRecord) (string, error) {
	return run(func(s styles) string { return renderPaths(records, s) })
}

// History renders launch sessions, newest first, relative to opts.Now.
func History(sessions []domain.Session, games []domain.Game, opts RenderOptions) (string, error) {
	return run(func(s styles) string { return renderHistory(sessions, games, opts, s) })
}
