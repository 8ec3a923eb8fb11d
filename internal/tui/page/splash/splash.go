package splash

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tally/internal/tui/theme"
)

const Logo = `
 ▄▄▄▄▄▄▄▄    ▄▄▄▄    ▄▄        ▄▄        ▄▄    ▄▄
 ▀▀▀██▀▀▀   ██▀▀██   ██        ██        ▀██  ██▀
    ██     ██    ██  ██        ██         ▀████▀
    ██     ████████  ██        ██           ██
    ██     ██    ██  ██        ██           ██
    ██     ██    ██  ██▄▄▄▄▄▄  ██▄▄▄▄▄▄     ██
    ▀▀     ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀▀▀▀▀▀     ▀▀`

func LogoView(t theme.Theme) string {
	return t.TextAccent().Render(Logo)
}

// View shows the logo until the first refresh of the board finishes.
func View(t theme.Theme, width, height int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		LogoView(t),
		"",
		"",
		t.Hint().Render("loading board..."),
	)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
