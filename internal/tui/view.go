package tui

import (
	"charm.land/lipgloss/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/tally/internal/tui/components/footer"
	"github.com/garrettladley/tally/internal/tui/page/overview"
	"github.com/garrettladley/tally/internal/tui/page/splash"
	"github.com/garrettladley/tally/internal/tui/page/unlock"
	"github.com/garrettladley/tally/internal/tui/theme"
)

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case unlockPage:
		content = unlock.View(m.theme, m.state.unlock, m.viewportWidth, m.viewportHeight)
	case overviewPage:
		content = m.overviewView()
	}

	view.SetContent(content)
	return view
}

func (m *Model) overviewView() string {
	var (
		s      = m.state.overview
		header = m.headerView()
		status = overview.StatusView(m.theme, s)
		foot   = footer.New(m.hints(), m.viewportWidth).Render()
	)

	bodyHeight := max(m.viewportHeight-lipgloss.Height(header)-lipgloss.Height(foot)-1, 0)
	body := overview.View(m.theme, s, m.viewportWidth, bodyHeight)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		lipgloss.NewStyle().PaddingLeft(2).Render(status),
		foot,
	)
}

// headerView puts the service address on the left and the session state on the right.
func (m *Model) headerView() string {
	var (
		left    = m.theme.Title().Render("tally") + m.theme.Hint().Render("  "+m.deps.ServerURL)
		right   = overview.AuthIndicatorView(m.state.overview)
		spacing = max(m.viewportWidth-lipgloss.Width(left)-lipgloss.Width(right)-4, 1)
	)
	return lipgloss.NewStyle().
		Padding(1, 2, 0, 2).
		Render(left + lipgloss.NewStyle().Width(spacing).Render("") + right)
}

func (m *Model) hints() string {
	s := m.state.overview
	switch {
	case s.Form != overview.FormNone:
		return footer.Hints([2]string{"enter", "add"}, [2]string{"tab", "next field"}, [2]string{"esc", "cancel"})
	case s.Editing:
		return footer.Hints(
			[2]string{"tab", "panel"}, [2]string{"+/-", "adjust"}, [2]string{"x", "remove"},
			[2]string{"a", "add"}, [2]string{"esc", "done"}, [2]string{"q", "quit"},
		)
	default:
		return footer.Hints(
			[2]string{"tab", "panel"}, [2]string{"↑/↓", "select"}, [2]string{"p", "edit"},
			[2]string{"r", "refresh"}, [2]string{"q", "quit"},
		)
	}
}
