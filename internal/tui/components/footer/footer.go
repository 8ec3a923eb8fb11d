package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tally/internal/tui/theme"
)

type Footer struct {
	rightContent string
	width        int
	padding      int
}

func New(rightContent string, width int) Footer {
	return Footer{
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

func (f Footer) Render() string {
	leftContent := f.leftContent()

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(f.rightContent)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 0)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + f.rightContent)
}

// Hints renders key bindings as "key action" pairs separated by dots.
func Hints(pairs ...[2]string) string {
	var (
		keyStyle    = lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true)
		actionStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)
		parts       = make([]string, 0, len(pairs))
	)
	for _, p := range pairs {
		parts = append(parts, keyStyle.Render(p[0])+" "+actionStyle.Render(p[1]))
	}
	return strings.Join(parts, actionStyle.Render(" · "))
}
