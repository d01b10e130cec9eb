// Package bloop implements a vertical shooter.
// The player flies a ship at the bottom of the screen, shoots falling squares
// for points and loses the run as soon as a square touches the ship.
package bloop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bloop/internal/config"
	"github.com/vovakirdan/bloop/internal/core"
	"github.com/vovakirdan/bloop/internal/particles"
	"github.com/vovakirdan/bloop/internal/registry"
	"github.com/vovakirdan/bloop/internal/sprite"
	"github.com/vovakirdan/bloop/internal/storage"
)

// GameID is the registry identifier of the game.
const GameID = "bloop"

// State is the phase of the game state machine.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the phase name reported to the platform.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Ship animation indices, in the order of shipAnimations.
const (
	animIdle = iota
	animLeft
	animRight
)

var shipAnimations = []sprite.Animation{
	{Name: "idle", Row: 0, Frames: 2, FPS: 12},
	{Name: "left", Row: 2, Frames: 2, FPS: 12},
	{Name: "right", Row: 4, Frames: 2, FPS: 12},
}

var boltAnimations = []sprite.Animation{
	{Name: "bullet", Row: 0, Frames: 2, FPS: 12},
	{Name: "bolt", Row: 1, Frames: 2, FPS: 12},
}

// Explosion is a particle burst anchored where a square was destroyed.
type Explosion struct {
	X, Y      float64
	Particles int // Particles per burst
	Emitter   *particles.Emitter
}

// Game implements the shooter logic.
type Game struct {
	cfg    config.BloopConfig
	rt     core.RuntimeConfig
	rng    *rand.Rand
	spawn  *Spawner
	store  storage.HighScoreStore
	logger *log.Logger

	state       State
	ship        Shape
	projectiles []Shape
	obstacles   []Shape
	explosions  []Explosion

	score     int
	highScore int
	loaded    bool // High score read from the store
	shots     int
	hits      int
	elapsed   float64 // Seconds spent in Playing this run
	exit      bool

	directionModifier float64

	shipSprite *sprite.AnimatedSprite
	boltSprite *sprite.AnimatedSprite
}

// Package-level settings applied to games created by the registry.
var (
	gameConfig    = config.DefaultBloopConfig()
	highScorePath = storage.DefaultHighScoreFile
	gameLogger    *log.Logger
)

// SetConfig sets the tuning used by new games.
func SetConfig(cfg config.BloopConfig) {
	gameConfig = cfg
}

// SetHighScorePath sets the high score file used by new games.
func SetHighScorePath(path string) {
	highScorePath = path
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	gameLogger = l
}

// Option configures a Game.
type Option func(*Game)

// WithConfig overrides the tuning.
func WithConfig(cfg config.BloopConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithStore overrides the high score store.
func WithStore(s storage.HighScoreStore) Option {
	return func(g *Game) {
		g.store = s
	}
}

// WithLogger overrides the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game. Nothing is loaded until Reset.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    gameConfig,
		logger: gameLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = storage.NewFileStore(highScorePath)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bloop"
}

// Reset initializes the game and returns to the main menu.
// The high score is read from the store on the first call only.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.spawn = NewSpawner(g.rng, g.cfg.Obstacles)

	g.shipSprite = sprite.New(16, 24, shipAnimations, true)
	g.boltSprite = sprite.New(16, 16, boltAnimations, true)
	g.boltSprite.SetAnimationByName("bolt")

	g.state = StateMainMenu
	g.exit = false
	g.directionModifier = 0
	g.resetRun()

	if !g.loaded {
		g.highScore = g.loadHighScore()
		g.loaded = true
	}
}

// Resize updates the viewport without touching the run.
// A ship left outside a smaller viewport is pulled back to its edge.
func (g *Game) Resize(rt core.RuntimeConfig) {
	g.rt.Cols, g.rt.Rows = rt.Cols, rt.Rows
	g.rt.CellW, g.rt.CellH = rt.CellW, rt.CellH
	g.clampShip()
}

// resetRun clears the field for a new run.
func (g *Game) resetRun() {
	g.projectiles = g.projectiles[:0]
	g.obstacles = g.obstacles[:0]
	g.explosions = g.explosions[:0]
	g.ship = NewShape(g.cfg.Ship.Size, g.cfg.Ship.Speed, g.rt.ViewportW()/2, g.rt.ViewportH()/2)
	g.score = 0
	g.shots = 0
	g.hits = 0
	g.elapsed = 0
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	it := intentsFor(g.state, in)

	switch g.state {
	case StateMainMenu:
		if it.Exit {
			g.exit = true
			break
		}
		if it.Confirm {
			g.resetRun()
			g.state = StatePlaying
		}
	case StatePlaying:
		// Pausing takes effect from the next frame; this one still plays out.
		if it.Pause {
			g.state = StatePaused
		}
		g.simulate(it, dt)
	case StatePaused:
		if it.Confirm {
			g.state = StatePlaying
		}
	case StateGameOver:
		if it.Confirm {
			g.state = StateMainMenu
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.state.String(),
		Score:     g.score,
		HighScore: g.highScore,
		Shots:     g.shots,
		Hits:      g.hits,
		Elapsed:   g.elapsed,
		GameOver:  g.state == StateGameOver,
		Paused:    g.state == StatePaused,
		Exit:      g.exit,
	}
}

// Phase returns the state machine phase.
func (g *Game) Phase() State {
	return g.state
}
