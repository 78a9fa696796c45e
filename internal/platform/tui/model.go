package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/runner"
	"github.com/vovakirdan/lanerun/internal/session"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

var screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"))

// Options configures a Model.
type Options struct {
	Runtime       core.RuntimeConfig // Initial terminal size
	ScreenshotDir string             // Where ctrl+s writes frames; empty disables it
}

// Model is the Bubble Tea model for one player's lane runner session.
type Model struct {
	sess     *session.Session
	cfg      config.Config
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	ease     *laneEase
	width    int
	height   int
	shotDir  string
	quitting bool
}

// NewModel creates a model around an idle session.
func NewModel(sess *session.Session, opts Options) Model {
	m := Model{
		sess:    sess,
		cfg:     sess.Config(),
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		ease:    &laneEase{},
		shotDir: opts.ScreenshotDir,
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Init waits on the start screen; the tick chain begins with the first run.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("lanerun")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, screenshotKey):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	if m.sess.Handle(action) {
		// A new run invalidates the previous tick chain.
		m.ease.snap(m.sess.Snapshot().Player.X)
		return m, tickCmd(m.cfg.Tick(), m.sess.Generation())
	}
	m.ease.retarget(m.sess.Snapshot().Player.X)
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	res, ok := m.sess.Tick(msg.Gen)
	if !ok {
		return m, nil
	}

	x := res.Snapshot.Player.X
	if res.Snapshot.Phase != runner.PhaseRunning {
		m.ease.snap(x)
		return m, nil
	}
	m.ease.retarget(x)
	if !res.Snapshot.Paused {
		m.ease.advance(m.cfg.Tick())
	}
	return m, tickCmd(m.cfg.Tick(), msg.Gen)
}

// resize fits the play area to the terminal. Lanes are recomputed from the
// column count; the player is snapped into range without easing.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	lanes := width / m.cfg.Render.ColumnsPerLane
	m.sess.Resize(float64(lanes) * m.cfg.Field.LaneWidth)
	m.ease.snap(m.sess.Snapshot().Player.X)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	name := fmt.Sprintf("lanerun_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(m.shotDir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(footer), 0))

	snap := m.sess.Snapshot()
	snap.Player.X = m.ease.value()
	runner.Render(m.screen, snap, m.cfg)

	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for a local session.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(NewModel(sess, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
