// Package input is a single-line text field for the board's forms.
package input

import (
	"strings"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tally/internal/tui/theme"
)

const (
	cursor   = "▏"
	maskRune = "•"
)

type Input struct {
	Label       string
	Placeholder string
	Value       string
	CharLimit   int
	Masked      bool
	Focused     bool
}

type Option func(*Input)

func WithPlaceholder(p string) Option {
	return func(i *Input) { i.Placeholder = p }
}

func WithCharLimit(n int) Option {
	return func(i *Input) { i.CharLimit = n }
}

// Masked hides the value, for passwords.
func Masked() Option {
	return func(i *Input) { i.Masked = true }
}

func New(label string, opts ...Option) Input {
	i := Input{Label: label, CharLimit: 64}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// Update applies a key press and reports whether the value changed.
// Keys the field does not handle are ignored.
func (i *Input) Update(msg tea.KeyPressMsg) bool {
	if !i.Focused {
		return false
	}

	switch msg.String() {
	case "backspace":
		if i.Value == "" {
			return false
		}
		_, size := utf8.DecodeLastRuneInString(i.Value)
		i.Value = i.Value[:len(i.Value)-size]
		return true
	case "ctrl+u":
		if i.Value == "" {
			return false
		}
		i.Value = ""
		return true
	}

	text := msg.Text
	if text == "" || strings.ContainsAny(text, "\r\n\t") {
		return false
	}
	if i.CharLimit > 0 && utf8.RuneCountInString(i.Value)+utf8.RuneCountInString(text) > i.CharLimit {
		return false
	}
	i.Value += text
	return true
}

func (i *Input) Focus() { i.Focused = true }

func (i *Input) Blur() { i.Focused = false }

func (i *Input) Reset() { i.Value = "" }

func (i Input) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorDim)
	if i.Focused {
		labelStyle = labelStyle.Foreground(theme.ColorAccent)
	}

	var value string
	switch {
	case i.Value == "" && i.Placeholder != "":
		value = lipgloss.NewStyle().Foreground(theme.ColorBgLight).Render(i.Placeholder)
	case i.Masked:
		value = strings.Repeat(maskRune, utf8.RuneCountInString(i.Value))
	default:
		value = i.Value
	}
	if i.Focused {
		value += lipgloss.NewStyle().Foreground(theme.ColorAccent).Render(cursor)
	}

	return labelStyle.Render(i.Label+": ") + value
}
