package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bloop/internal/assets"
	"github.com/vovakirdan/bloop/internal/core"
	"github.com/vovakirdan/bloop/internal/registry"
	"github.com/vovakirdan/bloop/internal/storage"
)

// starCount is the number of background stars.
const starCount = 120

// phasePlaying is the GameState phase of a running frame.
const phasePlaying = "playing"

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(e storage.RunEntry) (string, error)
}

// Model is the Bubble Tea model for running a game.
// One tick message is one frame: input is collected between ticks and the
// game is stepped with the wall time since the previous tick.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	raster   *Rasterizer
	drawList *core.DrawList
	runs     RunRecorder
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	tracker  *KeyTracker

	gameState     core.GameState
	lastTick      time.Time
	clock         float64 // Seconds of game time, fed to the background
	quitting      bool
	runSaved      bool // Whether the current game over has been recorded
	screenshotDir string
	textures      *assets.Library
	holdWindow    time.Duration
}

// Option configures a Model.
type Option func(*Model)

// WithRunRecorder records finished runs.
func WithRunRecorder(r RunRecorder) Option {
	return func(m *Model) {
		m.runs = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithTextures sets the sprite sheets used by the rasterizer.
func WithTextures(lib *assets.Library) Option {
	return func(m *Model) {
		m.textures = lib
	}
}

// WithHoldWindow sets how long an arrow counts as held after a key event.
func WithHoldWindow(d time.Duration) Option {
	return func(m *Model) {
		m.holdWindow = d
	}
}

// WithScreenshotDir sets where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.Cols

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.Cols, cfg.Rows),
		drawList: core.NewDrawList(),
		config:   cfg,
		keys:     DefaultGameKeyMap(),
		help:     h,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.screenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			m.screenshotDir = filepath.Join(home, ".bloop", "screenshots")
		}
	}
	m.tracker = NewKeyTracker(m.holdWindow)
	m.raster = NewRasterizer(cfg.CellW, cfg.CellH, m.textures, NewStarfield(starCount, cfg.Seed))

	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.tracker.Press(m.keys.Action(msg), now)
	return m, nil
}

// handleResize processes window resize events. The run continues in the
// resized viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.Cols = msg.Width
	m.config.Rows = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.config)
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now
	m.clock += dt

	wasPlaying := m.playing()
	result := m.game.Step(m.tracker.Frame(now), dt)
	m.gameState = result.State

	// Arrows still inside the hold window must not carry over a pause.
	if wasPlaying && !m.playing() {
		m.tracker.Reset()
	}

	if m.gameState.Exit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver {
		if !m.runSaved {
			m.recordRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the run that just ended. Empty runs are skipped.
func (m *Model) recordRun() {
	st := m.gameState
	if m.runs == nil || st.Score <= 0 {
		return
	}

	id, err := m.runs.SaveRun(storage.RunEntry{
		GameID:    m.game.ID(),
		Score:     st.Score,
		HighScore: st.HighScore,
		Duration:  time.Duration(st.Elapsed * float64(time.Second)),
		Shots:     st.Shots,
		Hits:      st.Hits,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("run not recorded", "error", err)
		return
	}
	m.logger.Debug("run recorded", "run", id, "score", st.Score)
}

// draw renders the current frame into the screen buffer.
func (m Model) draw() {
	m.drawList.Reset()
	m.game.Draw(m.drawList, m.raster)
	m.raster.Render(m.screen, m.drawList.Commands(), m.clock)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	m.draw()

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	frame := RenderScreen(m.screen)
	if m.playing() {
		return frame
	}
	return overlayBottom(frame, m.help.View(m.keys))
}

// playing reports whether the last frame was a playing one.
func (m Model) playing() bool {
	return m.gameState.Phase == phasePlaying
}

// overlayBottom replaces the last lines of frame with bar.
// Bars taller than the frame are dropped.
func overlayBottom(frame, bar string) string {
	lines := strings.Split(frame, "\n")
	barLines := strings.Split(bar, "\n")
	if bar == "" || len(barLines) > len(lines) {
		return frame
	}
	copy(lines[len(lines)-len(barLines):], barLines)
	return strings.Join(lines, "\n")
}

// GameState returns the state reported by the last frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
