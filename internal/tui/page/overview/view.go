package overview

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tally/internal/board"
	"github.com/garrettladley/tally/internal/tui/components/pie"
	"github.com/garrettladley/tally/internal/tui/theme"
)

const (
	panelWidth = 34
	selector   = "▸ "
)

func View(t theme.Theme, state State, width, height int) string {
	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Panel(state.Focus == CountersPanel).Width(panelWidth).Render(countersView(t, state)),
		"  ",
		t.Panel(state.Focus == CausesPanel).Render(causesView(t, state)),
	)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		panels,
	)
}

func AuthIndicatorView(state State) string {
	return state.AuthIndicator.Render()
}

// StatusView describes outstanding requests and stale data.
func StatusView(t theme.Theme, state State) string {
	switch {
	case state.Pending > 0:
		return lipgloss.NewStyle().Foreground(theme.ColorWarning).Render("syncing...")
	case state.FailedOp != "":
		return t.Error().Render(strings.ReplaceAll(state.FailedOp, "_", " ") + " failed")
	case state.Stale:
		return t.Error().Render("service unreachable, showing last snapshot")
	default:
		return ""
	}
}

func countersView(t theme.Theme, state State) string {
	lines := []string{t.Title().Render(state.CountersTitle), ""}

	if len(state.Counters) == 0 {
		lines = append(lines, t.Hint().Render("nobody here yet"))
	}

	labelWidth := panelWidth - 16
	for i, c := range state.Counters {
		selected := state.Focus == CountersPanel && i == state.CounterCursor
		label := lipgloss.NewStyle().Width(labelWidth).MaxWidth(labelWidth).Render(c.Label)
		lines = append(lines, row(t, selected, label, valueView(c.Value, state.Editing)))
	}

	if state.Form == FormCounter {
		lines = append(lines, "", state.Label.View(), formHint(t, board.ValidCounterLabel(state.Label.Value)))
	}

	return strings.Join(lines, "\n")
}

func causesView(t theme.Theme, state State) string {
	lines := []string{
		t.Title().Render(state.CausesTitle),
		"",
		pie.New(state.Causes).Render(),
	}

	// the per-cause controls only exist in edit mode; the legend covers reading
	if state.Editing {
		lines = append(lines, "")
		for i, c := range state.Causes {
			selected := state.Focus == CausesPanel && i == state.CauseCursor
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■ ")
			name := lipgloss.NewStyle().Width(panelWidth - 18).MaxWidth(panelWidth - 18).Render(c.Cause)
			lines = append(lines, row(t, selected, swatch+name, valueView(c.Value, true)))
		}
	}

	if state.Form == FormCause {
		color := state.Color.View()
		if board.IsHexColor(state.Color.Value) {
			color += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(state.Color.Value)).Render("■")
		}
		lines = append(lines,
			"",
			state.CauseName.View(),
			color,
			formHint(t, board.ValidCause(state.CauseName.Value, state.Color.Value)),
		)
	}

	return strings.Join(lines, "\n")
}

func row(t theme.Theme, selected bool, label, value string) string {
	prefix := "  "
	if selected {
		prefix = t.TextAccent().Render(selector)
		label = t.TextAccent().Bold(true).Render(label)
	}
	return prefix + label + " " + value
}

func valueView(v int64, editing bool) string {
	value := lipgloss.NewStyle().Bold(true).Width(5).Align(lipgloss.Right).Render(strconv.FormatInt(v, 10))
	if !editing {
		return value
	}
	var (
		minus  = lipgloss.NewStyle().Foreground(theme.ColorNegative).Render("-")
		plus   = lipgloss.NewStyle().Foreground(theme.ColorPositive).Render("+")
		remove = lipgloss.NewStyle().Foreground(theme.ColorDim).Render("x")
	)
	return fmt.Sprintf("%s %s %s  %s", minus, value, plus, remove)
}

func formHint(t theme.Theme, valid bool) string {
	if valid {
		return t.Hint().Render("enter add · tab next · esc cancel")
	}
	return lipgloss.NewStyle().Foreground(theme.ColorBgLight).Render("enter add · tab next · esc cancel")
}
