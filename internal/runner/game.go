// Package runner implements the lane runner simulation: lanes, spawning,
// motion, collisions and the run state machine. It is driven by discrete
// ticks and intents and knows nothing about terminals or storage.
package runner

import (
	"github.com/vovakirdan/lanerun/internal/config"
)

// StepResult is returned by Step.
type StepResult struct {
	Events   []Event
	Snapshot Snapshot
}

// Game owns the run state and advances it one tick at a time.
// It is not safe for concurrent use; callers serialize access.
type Game struct {
	cfg     config.Config
	lanes   LaneSet
	width   float64
	spawner *Spawner
	assets  AssetProvider
	state   State
}

// Option configures a Game.
type Option func(*Game)

// WithSeed sets the RNG seed used for spawning.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.spawner.Reseed(seed)
	}
}

// WithAssets injects the custom image provider.
func WithAssets(a AssetProvider) Option {
	return func(g *Game) {
		if a != nil {
			g.assets = a
			g.spawner.assets = a
		}
	}
}

// WithHighScore seeds the persisted high score.
func WithHighScore(score int) Option {
	return func(g *Game) {
		g.state.HighScore = max(score, 0)
	}
}

// WithWidth sets the initial play-area width.
func WithWidth(width float64) Option {
	return func(g *Game) {
		g.width = width
	}
}

// New creates an idle game. The default width fits the minimum lane count.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		width:  float64(cfg.Field.MinLanes) * cfg.Field.LaneWidth,
		assets: noAssets{},
	}
	g.spawner = NewSpawner(0, cfg, g.assets)
	g.state = State{Phase: PhaseIdle, Speed: cfg.Speed.Initial}

	for _, opt := range opts {
		opt(g)
	}
	g.lanes = NewLaneSet(g.width, cfg.Field.LaneWidth, cfg.Field.MinLanes)
	g.state.Player.Lane = g.lanes.Center()
	return g
}

// Config returns the game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Lanes returns the current lane set.
func (g *Game) Lanes() LaneSet {
	return g.lanes
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state.clone()
}

// Generation returns the current run generation.
func (g *Game) Generation() uint64 {
	return g.state.Generation
}

// Start resets every transient value and enters running. Calling it while
// a run is active restarts from scratch; the high score and play count are
// the only values that survive.
func (g *Game) Start() []Event {
	prev := g.state
	next := State{
		Phase:      PhaseRunning,
		Generation: prev.Generation + 1,
		Plays:      prev.Plays + 1,
		Speed:      g.cfg.Speed.Initial,
		HighScore:  prev.HighScore,
		Player:     Player{Lane: g.lanes.Center()},
		Obstacles:  []Obstacle{},
		PowerUps:   []PowerUp{},
		NextID:     prev.NextID,
	}

	// The first obstacle drops immediately; the first power-up waits one
	// jittered delay.
	next.NextPowerUpAt = g.spawner.PowerUpDelay()
	g.spawner.spawnDue(&next, g.lanes)

	g.state = next
	return []Event{RunStarted{Generation: next.Generation, Plays: next.Plays}}
}

// Step advances the simulation by one tick: expire timers, move and evict
// entities, resolve obstacle hits, resolve pickups, then spawn. Ticks while
// idle, paused or over change nothing.
func (g *Game) Step() StepResult {
	if !g.state.Active() {
		return StepResult{Snapshot: g.Snapshot()}
	}

	next := g.state.clone()
	var events []Event

	next.Now += g.cfg.Tick()
	events = expireTimers(&next, events)
	events = advanceObstacles(&next, g.cfg, events)
	advancePowerUps(&next, g.cfg)
	events = resolveObstacles(&next, g.cfg, g.lanes, events)

	if next.Phase == PhaseRunning {
		events = resolvePowerUps(&next, g.cfg, g.lanes, events)
		g.spawner.spawnDue(&next, g.lanes)
	}

	g.state = next
	return StepResult{Events: events, Snapshot: g.Snapshot()}
}

// StepGen advances only if gen matches the current run. A tick scheduled
// for an earlier run is dropped silently.
func (g *Game) StepGen(gen uint64) (StepResult, bool) {
	if gen != g.state.Generation {
		return StepResult{Snapshot: g.Snapshot()}, false
	}
	return g.Step(), true
}

// Resize recomputes the lanes for a new play-area width. The player and
// every entity are clamped into the new set, so nothing is left in a lane
// that no longer exists.
func (g *Game) Resize(width float64) {
	g.width = width
	g.lanes = NewLaneSet(width, g.cfg.Field.LaneWidth, g.cfg.Field.MinLanes)

	next := g.state.clone()
	next.Player.Lane = g.lanes.Clamp(next.Player.Lane)
	for i := range next.Obstacles {
		next.Obstacles[i].Lane = g.lanes.Snap(next.Obstacles[i].Lane, g.cfg.Field.LaneWidth)
	}
	for i := range next.PowerUps {
		next.PowerUps[i].Lane = g.lanes.Snap(next.PowerUps[i].Lane, g.cfg.Field.LaneWidth)
	}
	g.state = next
}
