package study

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"wadofetch/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	study  *domain.Study
	opts   RenderOptions
	styles styles
	output string
}

func newModel(study *domain.Study, opts RenderOptions) model {
	return model{
		study:  study,
		opts:   opts,
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
		m.output = renderView(m.study, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render formats a study tree for terminal output.
func Render(study *domain.Study, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(study, opts),
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
