package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/tally/internal/aggregate"
	"github.com/garrettladley/tally/internal/auth"
	"github.com/garrettladley/tally/internal/tui/page/overview"
	"github.com/garrettladley/tally/internal/tui/page/unlock"
	"github.com/garrettladley/tally/internal/tui/theme"
	"github.com/garrettladley/tally/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	overviewPage
	unlockPage
)

type state struct {
	overview overview.State
	unlock   unlock.State
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps
	pollCh         chan error
}

func New(deps Deps) Model {
	return Model{
		page:   splashPage,
		theme:  theme.New(),
		deps:   deps,
		pollCh: make(chan error),
		state: state{
			overview: overview.NewState(deps.CountersTitle, deps.CausesTitle),
			unlock:   unlock.NewState(),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	m.state.overview.Pending++
	cmds := []tea.Cmd{
		overview.RefreshCmd(m.deps.Ctx, m.deps.Board, m.deps.RequestTimeout),
	}
	if m.deps.RefreshInterval > 0 {
		cmds = append(cmds,
			StartPollCmd(m.deps.Ctx, m.deps.Board, m.deps.RefreshInterval, m.pollCh),
			ListenPollCmd(m.deps.Ctx, m.pollCh),
		)
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case overview.RefreshedMsg:
		m.state.overview.Pending = max(m.state.overview.Pending-1, 0)
		m.syncBoard()

	case overview.MutatedMsg:
		m.state.overview.Pending = max(m.state.overview.Pending-1, 0)
		m.state.overview.FailedOp = ""
		if msg.Err != nil {
			m.state.overview.FailedOp = msg.Op
		}
		m.syncBoard()

	case PollMsg:
		m.syncBoard()
		return m, ListenPollCmd(m.deps.Ctx, m.pollCh)

	case PollStoppedMsg:
		m.deps.Logger.Debug("board poller exited")

	case unlock.LoginMsg:
		m.handleLogin(msg)
	}

	return m, nil
}

// syncBoard copies the latest store snapshots into the view. The stale marker
// follows the board, so a write whose follow-up refresh failed still shows it.
func (m *Model) syncBoard() {
	b := m.deps.Board
	m.state.overview.SetSnapshot(
		aggregate.OrderCounters(b.Counters.Snapshot()),
		b.Causes.Snapshot(),
	)
	m.state.overview.Stale = b.Stale()

	if m.page == splashPage && b.Loaded() {
		m.deps.Logger.Debug("board loaded",
			xslog.Count(len(m.state.overview.Counters)+len(m.state.overview.Causes)),
		)
		m.page = overviewPage
	}
}

func (m *Model) handleLogin(msg unlock.LoginMsg) {
	m.state.overview.AuthIndicator.Pending = false
	m.state.overview.AuthIndicator.State = msg.State

	if msg.State == auth.Authenticated {
		m.state.unlock = unlock.NewState()
		m.state.overview.Editing = true
		m.state.overview.ScrollToTop()
		m.page = overviewPage
		return
	}

	m.state.unlock.Phase = unlock.PhaseDenied
	m.state.unlock.Reason = msg.Reason
}

func (m *Model) quit() tea.Cmd {
	if m.deps.Cancel != nil {
		m.deps.Cancel()
	}
	return tea.Quit
}
