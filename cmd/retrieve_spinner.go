package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fetchStatusMsg struct {
	status string
}

type fetchDoneMsg struct {
	err error
}

// fetchSpinnerModel animates a spinner while the retrieval runs and shows
// the latest progress report next to the label, so a long lazy drain is
// visible series by series.
type fetchSpinnerModel struct {
	spinner  spinner.Model
	label    string
	status   string
	fetch    tea.Cmd
	statusCh <-chan string
	err      error
	done     bool
}

func newFetchSpinnerModel(label string, fetch tea.Cmd, statusCh <-chan string) fetchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	)

	return fetchSpinnerModel{
		spinner:  s,
		label:    label,
		fetch:    fetch,
		statusCh: statusCh,
	}
}

func (m fetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch, waitForStatus(m.statusCh))
}

func (m fetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchStatusMsg:
		m.status = msg.status
		return m, waitForStatus(m.statusCh)
	case fetchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	line := fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	if m.status != "" {
		line += fmt.Sprintf(" (%s)", m.status)
	}
	return line
}

func waitForStatus(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		status, ok := <-ch
		if !ok {
			return nil
		}
		return fetchStatusMsg{status: status}
	}
}

// runFetchSpinner runs fetch under a spinner. The report callback handed to
// fetch pushes progress lines into the spinner view; it never blocks, a
// report arriving faster than the UI drains is dropped.
func runFetchSpinner(ctx context.Context, output io.Writer, fetch func(ctx context.Context, report func(string)) error) error {
	statusCh := make(chan string, 8)
	report := func(status string) {
		select {
		case statusCh <- status:
		default:
		}
	}

	fetchCmd := func() tea.Msg {
		err := fetch(ctx, report)
		close(statusCh)
		return fetchDoneMsg{err: err}
	}

	p := tea.NewProgram(
		newFetchSpinnerModel("Retrieving study metadata...", fetchCmd, statusCh),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(fetchSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
