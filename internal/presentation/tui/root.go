package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hilthontt/playbutton/internal/domain"
	"github.com/hilthontt/playbutton/internal/presentation/tui/theme"
)

// Presser is the control the terminal button drives.
type Presser interface {
	ID() string
	Press(source string)
}

type model struct {
	renderer       *lipgloss.Renderer
	theme          theme.Theme
	button         Presser
	help           help.Model
	viewportWidth  int
	viewportHeight int
}

func NewModel(renderer *lipgloss.Renderer, button Presser) tea.Model {
	return model{
		renderer: renderer,
		theme:    theme.BasicTheme(renderer),
		button:   button,
		help:     help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Press):
			// fire and forget: the outcome goes to the diagnostic sinks,
			// not to the screen
			m.button.Press(domain.SourceTUI)
		}
	}

	return m, nil
}

func (m model) View() string {
	title := m.theme.TextBrand().Bold(true).Render("playbutton")
	button := m.theme.Button().Render("▶  Play")
	id := m.theme.Base().Faint(true).Render("#" + m.button.ID())
	footer := m.help.View(keys)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		button,
		id,
		"",
		footer,
	)

	if m.viewportWidth == 0 || m.viewportHeight == 0 {
		return content
	}

	return m.renderer.Place(
		m.viewportWidth,
		m.viewportHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, button Presser, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	_, err := tea.NewProgram(NewModel(lipgloss.DefaultRenderer(), button), opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
