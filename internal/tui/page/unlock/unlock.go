package unlock

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tally/internal/tui/components/input"
	"github.com/garrettladley/tally/internal/tui/page/splash"
	"github.com/garrettladley/tally/internal/tui/theme"
)

type Phase uint

const (
	PhasePrompt Phase = iota
	PhaseSubmitting
	PhaseDenied
)

type State struct {
	Phase    Phase
	Reason   string
	Password input.Input
}

func NewState() State {
	s := State{Password: input.New("Password", input.Masked())}
	s.Password.Focus()
	return s
}

func View(t theme.Theme, state State, width, height int) string {
	var (
		title = t.Title().Render("Enter edit mode")
		hint  = t.Hint().Render("enter submit · esc back")
		body  string
	)

	switch state.Phase {
	case PhasePrompt:
		body = state.Password.View()
	case PhaseSubmitting:
		body = lipgloss.NewStyle().Foreground(theme.ColorWarning).Render("Checking password...")
	case PhaseDenied:
		body = lipgloss.JoinVertical(
			lipgloss.Center,
			state.Password.View(),
			"",
			t.Error().Render(state.Reason),
		)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		title,
		"",
		body,
		"",
		"",
		hint,
	)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
