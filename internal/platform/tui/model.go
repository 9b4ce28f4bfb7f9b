package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const (
	bannerTitle    = "FLAPPY"
	bannerSubtitle = "press enter to start"
)

var reasonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Model is the Bubble Tea model for a single flappy session.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	canvas   *core.Canvas
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	latch    ascendLatch
	interval time.Duration
	gen      int // Current tick chain; bumped on every Start
	now      func() time.Time
	quitting bool
}

// NewModel creates a model with an idle game sized to the terminal in runtime.
// The last terminal row is reserved for the help line.
func NewModel(cfg config.FlappyConfig, runtime core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(runtime.ScreenW, max(runtime.ScreenH-1, 0))
	canvas := core.NewCanvas(screen, cfg.Area.Width, cfg.Area.Height)

	h := help.New()
	h.Width = runtime.ScreenW

	m := Model{
		game:     flappy.New(cfg, canvas, flappy.DefaultAssets(), runtime.Seed),
		screen:   screen,
		canvas:   canvas,
		config:   runtime,
		keys:     DefaultKeyMap(),
		help:     h,
		latch:    newAscendLatch(time.Duration(cfg.Input.ReleaseAfterMS) * time.Millisecond),
		interval: tickInterval(cfg.Loop.TickRate),
		now:      time.Now,
	}
	m.redraw()
	return m
}

// Init does nothing; the game waits in Idle for a start key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		m.screen.Clear()
		m.game.Start()
		m.latch.Reset()
		m.gen++
		return m, tickCmd(m.interval, m.gen)

	case core.ActionAscend:
		if m.game.Phase() == flappy.PhaseRunning && m.latch.Press(m.now()) {
			m.game.AscendBegin()
		}
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// only its picture is rebuilt at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	m.redraw()
	return m, nil
}

// handleTick advances the game if the tick belongs to the current chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	if m.latch.Expired(msg.Time) {
		m.game.AscendEnd()
	}

	if !m.game.Tick() {
		// Chain ends here; the next Start opens a new one
		return m, nil
	}
	return m, tickCmd(m.interval, m.gen)
}

// redraw repaints the whole screen from the current game state.
func (m Model) redraw() {
	m.screen.Clear()
	if m.game.Phase() == flappy.PhaseIdle {
		drawBanner(m.screen, bannerTitle, bannerSubtitle)
		return
	}
	m.game.Redraw()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if s := m.game.Snapshot(); s.Phase == flappy.PhaseGameOver {
		footer = reasonStyle.Render(fmt.Sprintf("%s, score %d", s.Reason, s.Score)) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Game returns the game driven by this model.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Screen returns the screen buffer the game draws on.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.FlappyConfig, runtime core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, runtime),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
