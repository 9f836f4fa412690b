package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errFolderPickCancelled = errors.New("folder selection cancelled")

type folderPickerModel struct {
	picker   filepicker.Model
	title    string
	selected string
	quit     bool
}

func newFolderPickerModel(title, start string) folderPickerModel {
	picker := filepicker.New()
	picker.CurrentDirectory = start
	picker.DirAllowed = true
	picker.FileAllowed = false
	picker.ShowHidden = false

	return folderPickerModel{picker: picker, title: title}
}

func (m folderPickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m folderPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.selected = path
		return m, tea.Quit
	}

	return m, cmd
}

func (m folderPickerModel) View() string {
	if m.quit || m.selected != "" {
		return ""
	}

	header := lipgloss.NewStyle().Bold(true).Render(m.title)
	hint := lipgloss.NewStyle().Faint(true).Render("enter: select folder, q: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.picker.CurrentDirectory, m.picker.View(), hint)
}

// pickFolder asks the user to choose an installation folder.
func pickFolder(ctx context.Context, input io.Reader, output io.Writer, title string) (string, error) {
	start, err := os.UserHomeDir()
	if err != nil {
		start = "."
	}

	p := tea.NewProgram(
		newFolderPickerModel(title, start),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(folderPickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected final picker model type %T", finalModel)
	}
	if result.selected == "" {
		return "", errFolderPickCancelled
	}

	return result.selected, nil
}
