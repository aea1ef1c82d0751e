package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	renderer *lipgloss.Renderer

	border lipgloss.TerminalColor
	brand  lipgloss.TerminalColor
	body   lipgloss.TerminalColor
	accent lipgloss.TerminalColor

	base lipgloss.Style
}

func BasicTheme(renderer *lipgloss.Renderer) Theme {
	base := Theme{
		renderer: renderer,
	}

	base.border = lipgloss.AdaptiveColor{Dark: "#2D3748", Light: "#CBD5E0"}
	base.body = lipgloss.AdaptiveColor{Dark: "#94A3B8", Light: "#64748B"}
	base.accent = lipgloss.AdaptiveColor{Dark: "#F1F5F9", Light: "#0F172A"}
	base.brand = lipgloss.Color("#22C55E") // Green

	base.base = renderer.NewStyle().Foreground(base.body)

	return base
}

func (b Theme) Base() lipgloss.Style {
	return b.base
}

func (b Theme) Border() lipgloss.TerminalColor {
	return b.border
}

func (b Theme) TextAccent() lipgloss.Style {
	return b.Base().Foreground(b.accent)
}

func (b Theme) TextBrand() lipgloss.Style {
	return b.Base().Foreground(b.brand)
}

// Button is the only interactive element; its style never depends on state.
func (b Theme) Button() lipgloss.Style {
	return b.Base().
		Foreground(b.accent).
		Bold(true).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.brand)
}
