package overview

import (
	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/tui/components/auth"
	"github.com/garrettladley/tally/internal/tui/components/input"
)

type Panel uint

const (
	CountersPanel Panel = iota
	CausesPanel
)

type Form uint

const (
	FormNone Form = iota
	FormCounter
	FormCause
)

type State struct {
	CountersTitle string
	CausesTitle   string

	// Counters is kept in display order: ascending by value.
	Counters []tally.Counter
	Causes   []tally.Cause
	Stale    bool
	Pending  int
	// FailedOp names the last write the service rejected, if any.
	FailedOp string

	Focus         Panel
	CounterCursor int
	CauseCursor   int

	Editing   bool
	Form      Form
	Label     input.Input
	CauseName input.Input
	Color     input.Input

	AuthIndicator auth.Indicator
}

func NewState(countersTitle, causesTitle string) State {
	return State{
		CountersTitle: countersTitle,
		CausesTitle:   causesTitle,
		Label:         input.New("Name", input.WithPlaceholder("new person")),
		CauseName:     input.New("Cause", input.WithPlaceholder("new cause")),
		Color:         input.New("Color", input.WithPlaceholder("#RRGGBB"), input.WithCharLimit(7)),
	}
}

// SetSnapshot installs fresh collections and keeps both cursors in range.
func (s *State) SetSnapshot(counters []tally.Counter, causes []tally.Cause) {
	s.Counters = counters
	s.Causes = causes
	s.CounterCursor = clamp(s.CounterCursor, len(counters))
	s.CauseCursor = clamp(s.CauseCursor, len(causes))
}

func (s *State) TogglePanel() {
	if s.Focus == CountersPanel {
		s.Focus = CausesPanel
	} else {
		s.Focus = CountersPanel
	}
}

// Move shifts the cursor of the focused panel by delta.
func (s *State) Move(delta int) {
	switch s.Focus {
	case CountersPanel:
		s.CounterCursor = clamp(s.CounterCursor+delta, len(s.Counters))
	case CausesPanel:
		s.CauseCursor = clamp(s.CauseCursor+delta, len(s.Causes))
	}
}

// ScrollToTop resets both cursors and focus to the first counter.
func (s *State) ScrollToTop() {
	s.Focus = CountersPanel
	s.CounterCursor = 0
	s.CauseCursor = 0
}

func (s State) SelectedCounter() (tally.Counter, bool) {
	if s.CounterCursor < 0 || s.CounterCursor >= len(s.Counters) {
		return tally.Counter{}, false
	}
	return s.Counters[s.CounterCursor], true
}

func (s State) SelectedCause() (tally.Cause, bool) {
	if s.CauseCursor < 0 || s.CauseCursor >= len(s.Causes) {
		return tally.Cause{}, false
	}
	return s.Causes[s.CauseCursor], true
}

// OpenForm starts the add form for the focused panel.
func (s *State) OpenForm() {
	s.CloseForm()
	switch s.Focus {
	case CountersPanel:
		s.Form = FormCounter
		s.Label.Focus()
	case CausesPanel:
		s.Form = FormCause
		s.CauseName.Focus()
	}
}

// CloseForm hides the add form without clearing what was typed.
func (s *State) CloseForm() {
	s.Form = FormNone
	s.Label.Blur()
	s.CauseName.Blur()
	s.Color.Blur()
}

// ResetForm clears the inputs of the open form after a send.
func (s *State) ResetForm() {
	switch s.Form {
	case FormCounter:
		s.Label.Reset()
	case FormCause:
		s.CauseName.Reset()
		s.Color.Reset()
	}
}

// NextField moves focus between the cause and color inputs.
func (s *State) NextField() {
	if s.Form != FormCause {
		return
	}
	if s.CauseName.Focused {
		s.CauseName.Blur()
		s.Color.Focus()
	} else {
		s.Color.Blur()
		s.CauseName.Focus()
	}
}

// FocusedInput returns the input receiving keys, or nil when no form is open.
func (s *State) FocusedInput() *input.Input {
	switch {
	case s.Form == FormNone:
		return nil
	case s.Label.Focused:
		return &s.Label
	case s.CauseName.Focused:
		return &s.CauseName
	case s.Color.Focused:
		return &s.Color
	default:
		return nil
	}
}

func clamp(cursor, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(cursor, n-1))
}
