package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) TextAccent() lipgloss.Style {
	return t.base.Foreground(ColorAccent)
}

func (t Theme) Title() lipgloss.Style {
	return t.base.Foreground(ColorAccent).Bold(true)
}

func (t Theme) Hint() lipgloss.Style {
	return t.base.Foreground(ColorDim)
}

func (t Theme) Error() lipgloss.Style {
	return t.base.Foreground(ColorNegative)
}

// Panel frames one side of the board; the focused panel gets the accent border.
func (t Theme) Panel(focused bool) lipgloss.Style {
	border := ColorBgLight
	if focused {
		border = ColorAccent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func (t Theme) Background() color.Color {
	return t.background
}
