package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent   = lipgloss.Color("#00F19F") // titles, selection, edit mode
	ColorPositive = lipgloss.Color("#16EC06") // increments, granted session
	ColorWarning  = lipgloss.Color("#FFDE00") // pending requests
	ColorNegative = lipgloss.Color("#FF0026") // decrements, denials, remove
	ColorInfo     = lipgloss.Color("#67AEE6") // read-only session
)

var (
	ColorBgDark  = lipgloss.Color("#101518") // screen background
	ColorBgLight = lipgloss.Color("#283339") // panels, empty chart outline
)
