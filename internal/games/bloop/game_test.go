package bloop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/bloop/internal/config"
	"github.com/vovakirdan/bloop/internal/core"
	"github.com/vovakirdan/bloop/internal/registry"
	"github.com/vovakirdan/bloop/internal/storage"
)

const frameDT = 1.0 / 60

// testRuntime is an 800x600 pixel viewport with one pixel per cell.
func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{Cols: 800, Rows: 600, CellW: 1, CellH: 1, TickRate: 60, Seed: 1}
}

// quietConfig never spawns squares, so tests control the field.
func quietConfig() config.BloopConfig {
	cfg := config.DefaultBloopConfig()
	cfg.Obstacles.SpawnThreshold = cfg.Obstacles.SpawnRoll
	return cfg
}

func newTestGame(t *testing.T, store storage.HighScoreStore) *Game {
	t.Helper()
	g := New(WithConfig(quietConfig()), WithStore(store))
	g.Reset(testRuntime())
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press(core.ActionPrimary), frameDT)
	if g.Phase() != StatePlaying {
		t.Fatalf("expected Playing after Space, got %v", g.Phase())
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("bloop should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "bloop" || g.Title() != "Bloop" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})

	if g.Phase() != StateMainMenu {
		t.Errorf("initial state = %v, expected MainMenu", g.Phase())
	}
	st := g.State()
	if st.Phase != "menu" || st.GameOver || st.Paused || st.Exit {
		t.Errorf("unexpected initial GameState %+v", st)
	}
}

func TestIntentsByState(t *testing.T) {
	in := press(core.ActionPrimary, core.ActionCancel)
	in.Hold(core.ActionLeft)
	in.Hold(core.ActionUp)

	tests := []struct {
		state State
		want  Intents
	}{
		{StateMainMenu, Intents{Confirm: true, Exit: true}},
		{StatePlaying, Intents{Left: true, Up: true, Fire: true, Pause: true}},
		{StatePaused, Intents{Confirm: true}},
		{StateGameOver, Intents{Confirm: true}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := intentsFor(tt.state, in); got != tt.want {
				t.Errorf("intentsFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStartAndFire(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})

	startPlaying(t, g)
	snap := g.Snapshot()
	if len(snap.Projectiles) != 0 || len(snap.Obstacles) != 0 || len(snap.Explosions) != 0 {
		t.Fatalf("lists should be empty after start: %+v", snap)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if snap.Ship.X != 400 || snap.Ship.Y != 300 {
		t.Errorf("ship at (%v, %v), expected centre (400, 300)", snap.Ship.X, snap.Ship.Y)
	}

	// dt = 0 keeps the projectile at its spawn point.
	g.Step(press(core.ActionPrimary), 0)
	if len(g.projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(g.projectiles))
	}
	p := g.projectiles[0]
	if p.X != 400 || p.Y != 276 {
		t.Errorf("projectile at (%v, %v), expected (400, 276)", p.X, p.Y)
	}
	if p.Speed != 400 || p.Size != 32 {
		t.Errorf("projectile speed/size = %v/%v, expected 400/32", p.Speed, p.Size)
	}
	if g.State().Shots != 1 {
		t.Errorf("shots = %d, expected 1", g.State().Shots)
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)

	// Holding space without a new press does not fire.
	for range 10 {
		g.Step(hold(core.ActionPrimary), frameDT)
	}
	if len(g.projectiles) != 0 {
		t.Errorf("held space fired %d projectiles", len(g.projectiles))
	}
}

func TestScoreOnHit(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)
	g.highScore = 5

	g.obstacles = append(g.obstacles, Shape{Size: 20, Speed: 0, X: 100, Y: 100})
	g.projectiles = append(g.projectiles, Shape{Size: 32, Speed: 0, X: 100, Y: 100})

	g.Step(core.NewInputFrame(), 0.016)

	if g.score != 20 {
		t.Errorf("score = %d, expected 20", g.score)
	}
	if g.highScore != 20 {
		t.Errorf("highScore = %d, expected 20", g.highScore)
	}
	if len(g.explosions) != 1 {
		t.Fatalf("expected 1 explosion, got %d", len(g.explosions))
	}
	e := g.explosions[0]
	if e.X != 100 || e.Y != 100 || e.Particles != 20 {
		t.Errorf("explosion at (%v, %v) with %d particles", e.X, e.Y, e.Particles)
	}
	if len(g.obstacles) != 0 || len(g.projectiles) != 0 {
		t.Errorf("collided entities should be retired: %d obstacles, %d projectiles",
			len(g.obstacles), len(g.projectiles))
	}
	if g.Phase() != StatePlaying {
		t.Errorf("state = %v, expected Playing", g.Phase())
	}
	if g.State().Hits != 1 {
		t.Errorf("hits = %d, expected 1", g.State().Hits)
	}
}

func TestScoreRoundsSize(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)
	g.highScore = 1000

	g.obstacles = append(g.obstacles, Shape{Size: 20.5, X: 100, Y: 100})
	g.projectiles = append(g.projectiles, Shape{Size: 32, X: 100, Y: 100})
	g.Step(core.NewInputFrame(), 0)

	if g.score != 21 {
		t.Errorf("score = %d, expected round(20.5) = 21", g.score)
	}
	if g.highScore != 1000 {
		t.Errorf("highScore should stay 1000, got %d", g.highScore)
	}
	if g.explosions[0].Particles != 21 {
		t.Errorf("explosion amount = %d, expected 21", g.explosions[0].Particles)
	}
}

func TestProjectileHitsOneSquarePerFrame(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)

	// One projectile overlaps two squares.
	g.obstacles = append(g.obstacles,
		Shape{Size: 20, X: 100, Y: 100},
		Shape{Size: 30, X: 110, Y: 100},
	)
	g.projectiles = append(g.projectiles, Shape{Size: 32, X: 105, Y: 100})
	g.Step(core.NewInputFrame(), 0)

	if g.score != 20 {
		t.Errorf("score = %d, expected only the first square (20)", g.score)
	}
	if len(g.obstacles) != 1 || g.obstacles[0].Size != 30 {
		t.Errorf("second square should survive, got %+v", g.obstacles)
	}
	if len(g.explosions) != 1 {
		t.Errorf("expected 1 explosion, got %d", len(g.explosions))
	}
}

func TestTwoProjectilesTwoSquares(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)

	g.obstacles = append(g.obstacles,
		Shape{Size: 16, X: 100, Y: 100},
		Shape{Size: 16, X: 300, Y: 100},
	)
	g.projectiles = append(g.projectiles,
		Shape{Size: 32, X: 300, Y: 100},
		Shape{Size: 32, X: 100, Y: 100},
	)
	g.Step(core.NewInputFrame(), 0)

	if g.score != 32 || len(g.explosions) != 2 {
		t.Errorf("score = %d, explosions = %d; expected 32 and 2", g.score, len(g.explosions))
	}
	if len(g.obstacles) != 0 || len(g.projectiles) != 0 {
		t.Error("all entities should be retired")
	}
}

func TestGameOverPersistsHighScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.dat")
	if err := os.WriteFile(path, []byte("10"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, storage.NewFileStore(path))
	if g.highScore != 10 {
		t.Fatalf("high score should load as 10, got %d", g.highScore)
	}
	startPlaying(t, g)

	// A hit bumps the score past the old high score.
	g.score = 22
	g.obstacles = append(g.obstacles, Shape{Size: 20, X: 100, Y: 100})
	g.projectiles = append(g.projectiles, Shape{Size: 32, X: 100, Y: 100})
	g.Step(core.NewInputFrame(), 0)
	if g.score != 42 || g.highScore != 42 {
		t.Fatalf("score/highScore = %d/%d, expected 42/42", g.score, g.highScore)
	}

	// A square sitting on the ship ends the run.
	g.obstacles = append(g.obstacles, Shape{Size: 20, X: g.ship.X, Y: g.ship.Y})
	res := g.Step(core.NewInputFrame(), 0)

	if g.Phase() != StateGameOver || !res.State.GameOver {
		t.Fatalf("expected GameOver, got %v", g.Phase())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "42" {
		t.Errorf("highscore.dat = %q, expected %q", data, "42")
	}
}

func TestGameOverWithoutRecordDoesNotPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.dat")
	if err := os.WriteFile(path, []byte("99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, storage.NewFileStore(path))
	startPlaying(t, g)

	g.score = 5
	g.obstacles = append(g.obstacles, Shape{Size: 20, X: g.ship.X + 5, Y: g.ship.Y + 5})
	g.Step(core.NewInputFrame(), 0)

	if g.Phase() != StateGameOver {
		t.Fatalf("expected GameOver, got %v", g.Phase())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "99\n" {
		t.Errorf("highscore.dat changed to %q", data)
	}
}

func TestGameOverSaveFailureIsIgnored(t *testing.T) {
	store := &storage.MemoryStore{SaveErr: errors.New("read-only filesystem")}
	g := newTestGame(t, store)
	startPlaying(t, g)

	g.obstacles = append(g.obstacles, Shape{Size: 20, X: g.ship.X, Y: g.ship.Y})
	g.Step(core.NewInputFrame(), 0)
	if g.Phase() != StateGameOver {
		t.Fatalf("expected GameOver, got %v", g.Phase())
	}

	// The session carries on with the in-memory value.
	g.Step(press(core.ActionPrimary), frameDT)
	startPlaying(t, g)
	if g.Phase() != StatePlaying {
		t.Errorf("expected a new run, got %v", g.Phase())
	}
}

func TestHighScoreLoadFailuresYieldZero(t *testing.T) {
	tests := []struct {
		name  string
		store storage.HighScoreStore
	}{
		{"missing", &storage.MemoryStore{}},
		{"unreadable", &storage.MemoryStore{LoadErr: errors.New("permission denied")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.store)
			if g.HighScore() != 0 {
				t.Errorf("HighScore() = %d, expected 0", g.HighScore())
			}
		})
	}

	t.Run("unparseable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "highscore.dat")
		if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
			t.Fatal(err)
		}
		g := newTestGame(t, storage.NewFileStore(path))
		if g.HighScore() != 0 {
			t.Errorf("HighScore() = %d, expected 0", g.HighScore())
		}
	})
}

func TestHighScoreLoadedOnce(t *testing.T) {
	store := &storage.MemoryStore{Score: 7, Saved: true}
	g := newTestGame(t, store)
	if g.HighScore() != 7 {
		t.Fatalf("HighScore() = %d, expected 7", g.HighScore())
	}

	store.Score = 500
	g.Reset(testRuntime())
	if g.HighScore() != 7 {
		t.Errorf("Reset should keep the in-memory high score, got %d", g.HighScore())
	}
}

func TestPausePreservesState(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)

	g.obstacles = append(g.obstacles,
		Shape{Size: 20, Speed: 100, X: 100, Y: 50},
		Shape{Size: 40, Speed: 60, X: 600, Y: 10},
	)
	g.Step(press(core.ActionPrimary), frameDT)
	g.Step(press(core.ActionPrimary), frameDT)

	g.Step(press(core.ActionCancel), frameDT)
	if g.Phase() != StatePaused {
		t.Fatalf("expected Paused after Esc, got %v", g.Phase())
	}
	if !g.State().Paused {
		t.Error("GameState.Paused should be set")
	}
	before := g.Snapshot()

	// Inputs other than Space are ignored, and nothing moves.
	for range 10 {
		in := press(core.ActionCancel)
		in.Hold(core.ActionRight)
		g.Step(in, frameDT)
	}
	if g.Phase() != StatePaused {
		t.Fatalf("still expected Paused, got %v", g.Phase())
	}
	mid := g.Snapshot()
	if mid.Hash() != before.Hash() {
		t.Error("state drifted while paused")
	}

	g.Step(press(core.ActionPrimary), frameDT)
	if g.Phase() != StatePlaying {
		t.Fatalf("expected Playing after Space, got %v", g.Phase())
	}
	after := g.Snapshot()
	if len(after.Obstacles) != 2 || len(after.Projectiles) != 2 {
		t.Errorf("resume lost entities: %d obstacles, %d projectiles",
			len(after.Obstacles), len(after.Projectiles))
	}
	for i := range after.Obstacles {
		if after.Obstacles[i] != before.Obstacles[i] {
			t.Errorf("obstacle %d moved during pause: %+v -> %+v", i, before.Obstacles[i], after.Obstacles[i])
		}
	}
}

func TestAnimationsFrozenOutsidePlaying(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})

	for range 30 {
		g.Step(core.NewInputFrame(), 0.1)
	}
	if g.shipSprite.Frame().Source.X != 0 || g.boltSprite.Frame().Source.X != 0 {
		t.Error("animations should not advance in the main menu")
	}

	startPlaying(t, g)
	g.Step(core.NewInputFrame(), 0.1)
	if x := g.shipSprite.Frame().Source.X; x != 16 {
		t.Errorf("ship animation should advance to the second tile while playing, x = %v", x)
	}
}

func TestEscFromMenuExits(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})

	res := g.Step(press(core.ActionCancel), frameDT)
	if !res.State.Exit {
		t.Error("Esc in the main menu should request exit")
	}
	if g.Phase() != StateMainMenu {
		t.Errorf("state = %v, expected MainMenu", g.Phase())
	}
}

func TestGameOverReturnsToMenuWithoutReset(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)

	g.score = 3
	g.projectiles = append(g.projectiles, Shape{Size: 32, X: 10, Y: 500})
	g.obstacles = append(g.obstacles, Shape{Size: 20, X: g.ship.X, Y: g.ship.Y})
	g.Step(core.NewInputFrame(), 0)
	if g.Phase() != StateGameOver {
		t.Fatalf("expected GameOver, got %v", g.Phase())
	}

	// Esc does nothing in GameOver.
	g.Step(press(core.ActionCancel), frameDT)
	if g.Phase() != StateGameOver || g.State().Exit {
		t.Fatal("Esc should be ignored in GameOver")
	}

	g.Step(press(core.ActionPrimary), frameDT)
	if g.Phase() != StateMainMenu {
		t.Fatalf("expected MainMenu, got %v", g.Phase())
	}
	if g.score != 3 || len(g.obstacles) != 1 || len(g.projectiles) != 1 {
		t.Error("returning to the menu should not reset the field")
	}

	g.ship.X, g.ship.Y = 5, 5
	startPlaying(t, g)
	if g.score != 0 || len(g.obstacles) != 0 || len(g.projectiles) != 0 || len(g.explosions) != 0 {
		t.Error("starting a run should clear the field")
	}
	if g.ship.X != 400 || g.ship.Y != 300 {
		t.Errorf("ship should be recentred, got (%v, %v)", g.ship.X, g.ship.Y)
	}
	if g.State().Shots != 0 || g.State().Elapsed != 0 {
		t.Error("run statistics should reset")
	}
}

func TestEscWhilePlayingPausesAfterFrame(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)
	g.obstacles = append(g.obstacles, Shape{Size: 20, Speed: 100, X: 100, Y: 50})

	g.Step(press(core.ActionCancel), 0.1)
	if g.Phase() != StatePaused {
		t.Fatalf("expected Paused, got %v", g.Phase())
	}
	if g.obstacles[0].Y != 60 {
		t.Errorf("the frame that pauses still simulates; y = %v, expected 60", g.obstacles[0].Y)
	}
}

func TestResizeKeepsShipInside(t *testing.T) {
	g := newTestGame(t, &storage.MemoryStore{})
	startPlaying(t, g)
	g.ship.X, g.ship.Y = 700, 500

	g.Step(press(core.ActionCancel), frameDT)
	if g.Phase() != StatePaused {
		t.Fatalf("expected Paused, got %v", g.Phase())
	}

	g.Resize(core.RuntimeConfig{Cols: 400, Rows: 300, CellW: 1, CellH: 1})
	if g.ship.X != 400 || g.ship.Y != 300 {
		t.Errorf("ship at (%v, %v), want clamped to (400, 300)", g.ship.X, g.ship.Y)
	}

	// Growing the viewport leaves the ship where it is.
	g.Resize(testRuntime())
	if g.ship.X != 400 || g.ship.Y != 300 {
		t.Errorf("ship moved to (%v, %v) on a larger viewport", g.ship.X, g.ship.Y)
	}
}
