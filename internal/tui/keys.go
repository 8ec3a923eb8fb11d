package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/tally/internal/board"
	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/tui/page/overview"
	"github.com/garrettladley/tally/internal/tui/page/unlock"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.page {
	case splashPage:
		if msg.String() == "q" {
			return m.quit()
		}
		return nil
	case unlockPage:
		return m.handleUnlockKey(msg)
	default:
		if m.state.overview.Form != overview.FormNone {
			return m.handleFormKey(msg)
		}
		return m.handleOverviewKey(msg)
	}
}

func (m *Model) handleUnlockKey(msg tea.KeyPressMsg) tea.Cmd {
	s := &m.state.unlock

	switch msg.String() {
	case "esc":
		m.state.unlock = unlock.NewState()
		m.page = overviewPage
		return nil
	case "enter":
		if s.Phase == unlock.PhaseSubmitting {
			return nil
		}
		password := s.Password.Value
		s.Password.Reset()
		s.Phase = unlock.PhaseSubmitting
		m.state.overview.AuthIndicator.Pending = true
		return unlock.LoginCmd(m.deps.Ctx, m.deps.Session, password, m.deps.RequestTimeout)
	}

	if s.Phase == unlock.PhaseSubmitting {
		return nil
	}
	if s.Password.Update(msg) {
		m.deps.Session.Edit()
		if s.Phase == unlock.PhaseDenied {
			s.Phase = unlock.PhasePrompt
			s.Reason = ""
			m.state.overview.AuthIndicator.State = m.deps.Session.State()
		}
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg) tea.Cmd {
	s := &m.state.overview

	switch msg.String() {
	case "esc":
		s.CloseForm()
		return nil
	case "tab":
		s.NextField()
		return nil
	case "enter":
		return m.submitForm()
	}

	if in := s.FocusedInput(); in != nil {
		in.Update(msg)
	}
	return nil
}

// submitForm sends the open form. Invalid input is ignored by the stores,
// so the form only clears when a request is actually sent.
func (m *Model) submitForm() tea.Cmd {
	var (
		s = &m.state.overview
		b = m.deps.Board
	)

	switch s.Form {
	case overview.FormCounter:
		label := s.Label.Value
		if !board.ValidCounterLabel(label) {
			return nil
		}
		s.ResetForm()
		return m.mutate(tally.OpAddPerson, func(ctx context.Context) error {
			return b.Counters.Add(ctx, label)
		})
	case overview.FormCause:
		cause, color := s.CauseName.Value, s.Color.Value
		if !board.ValidCause(cause, color) {
			return nil
		}
		s.ResetForm()
		return m.mutate(tally.OpAddCause, func(ctx context.Context) error {
			return b.Causes.Add(ctx, cause, color)
		})
	}
	return nil
}

func (m *Model) handleOverviewKey(msg tea.KeyPressMsg) tea.Cmd {
	s := &m.state.overview

	switch msg.String() {
	case "q":
		return m.quit()
	case "tab":
		s.TogglePanel()
	case "up", "k":
		s.Move(-1)
	case "down", "j":
		s.Move(1)
	case "r":
		s.Pending++
		return overview.RefreshCmd(m.deps.Ctx, m.deps.Board, m.deps.RequestTimeout)
	case "p":
		if !s.Editing {
			m.state.unlock = unlock.NewState()
			m.page = unlockPage
		}
	}

	if !s.Editing || !m.deps.Session.CanEdit() {
		return nil
	}

	switch msg.String() {
	case "+", "=":
		return m.adjustSelected(1)
	case "-":
		return m.adjustSelected(-1)
	case "x":
		return m.removeSelected()
	case "a":
		s.OpenForm()
	case "esc":
		m.deps.Session.Exit()
		s.Editing = false
		s.CloseForm()
		s.AuthIndicator.State = m.deps.Session.State()
	}
	return nil
}

func (m *Model) adjustSelected(delta int) tea.Cmd {
	var (
		s = &m.state.overview
		b = m.deps.Board
	)

	switch s.Focus {
	case overview.CountersPanel:
		c, ok := s.SelectedCounter()
		if !ok {
			return nil
		}
		if delta > 0 {
			return m.mutate(tally.OpIncrementCounter, func(ctx context.Context) error { return b.Counters.Increment(ctx, c.ID) })
		}
		return m.mutate(tally.OpDecrementCounter, func(ctx context.Context) error { return b.Counters.Decrement(ctx, c.ID) })
	case overview.CausesPanel:
		c, ok := s.SelectedCause()
		if !ok {
			return nil
		}
		if delta > 0 {
			return m.mutate(tally.OpIncrementCause, func(ctx context.Context) error { return b.Causes.Increment(ctx, c.Cause) })
		}
		return m.mutate(tally.OpDecrementCause, func(ctx context.Context) error { return b.Causes.Decrement(ctx, c.Cause) })
	}
	return nil
}

func (m *Model) removeSelected() tea.Cmd {
	var (
		s = &m.state.overview
		b = m.deps.Board
	)

	switch s.Focus {
	case overview.CountersPanel:
		if c, ok := s.SelectedCounter(); ok {
			return m.mutate(tally.OpRemovePerson, func(ctx context.Context) error { return b.Counters.Remove(ctx, c.ID) })
		}
	case overview.CausesPanel:
		if c, ok := s.SelectedCause(); ok {
			return m.mutate(tally.OpRemoveCause, func(ctx context.Context) error { return b.Causes.Remove(ctx, c.Cause) })
		}
	}
	return nil
}

func (m *Model) mutate(op string, write func(context.Context) error) tea.Cmd {
	m.state.overview.Pending++
	return overview.MutateCmd(m.deps.Ctx, m.deps.RequestTimeout, op, write)
}
