package auth

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tally/internal/auth"
	"github.com/garrettladley/tally/internal/tui/theme"
)

const statusDot = "●"

// Indicator shows whether the board is read-only or in edit mode.
type Indicator struct {
	State   auth.State
	Pending bool
}

func (a Indicator) Render() string {
	if a.Pending {
		return lipgloss.NewStyle().
			Foreground(theme.ColorWarning).
			Render(statusDot + " checking...")
	}

	switch a.State {
	case auth.Authenticated:
		return lipgloss.NewStyle().
			Foreground(theme.ColorPositive).
			Render(statusDot + " editing")
	case auth.Denied:
		return lipgloss.NewStyle().
			Foreground(theme.ColorNegative).
			Render(statusDot + " denied")
	default:
		return lipgloss.NewStyle().
			Foreground(theme.ColorInfo).
			Render(statusDot + " read only")
	}
}
