package tui

// PollMsg is delivered after each background refresh of the board.
type PollMsg struct {
	Err error
}

type PollStoppedMsg struct{}
