package cmd

import (
	"context"
	"fmt"
	"io"

	scanrender "github.com/bnema/gamectl/internal/adapters/render/scan"
	"github.com/bnema/gamectl/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type scanDoneMsg struct {
	found []string
	err   error
}

type scanProgressMsg domain.ScanProgress

type scanSpinnerModel struct {
	spinner  spinner.Model
	label    string
	scan     tea.Cmd
	progress domain.ScanProgress
	found    []string
	err      error
	done     bool
}

func newScanSpinnerModel(label string, scan tea.Cmd) scanSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return scanSpinnerModel{
		spinner: s,
		label:   label,
		scan:    scan,
	}
}

func (m scanSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scan)
}

func (m scanSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case scanProgressMsg:
		m.progress = domain.ScanProgress(msg)
		return m, nil
	case scanDoneMsg:
		m.done = true
		m.found = msg.found
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m scanSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, scanrender.ProgressLine(m.progress))
}

type scanFunc func(ctx context.Context, onProgress func(domain.ScanProgress)) ([]string, error)

// runScanSpinner runs scan behind a spinner that follows its progress events.
func runScanSpinner(ctx context.Context, output io.Writer, label string, scan scanFunc) ([]string, error) {
	var p *tea.Program
	scanCmd := func() tea.Msg {
		found, err := scan(ctx, func(progress domain.ScanProgress) {
			p.Send(scanProgressMsg(progress))
		})
		return scanDoneMsg{found: found, err: err}
	}

	p = tea.NewProgram(
		newScanSpinnerModel(label, scanCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(scanSpinnerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.found, result.err
}
