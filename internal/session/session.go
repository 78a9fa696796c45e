// Package session glues one runner.Game to persistence and logging. It is
// shared by local play and SSH sessions and knows nothing about terminals.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/logging"
	"github.com/vovakirdan/lanerun/internal/runner"
	"github.com/vovakirdan/lanerun/internal/storage"
)

// HighScoreStore persists the all-time high score.
type HighScoreStore interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
}

// RunRecorder records finished runs.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a Session. Every collaborator is optional; a missing
// store just means nothing is persisted.
type Options struct {
	Player string
	Seed   int64
	Width  float64
	Assets runner.AssetProvider
	Scores HighScoreStore
	Runs   RunRecorder
	Logger *log.Logger
}

// Session owns a game and reacts to its events.
type Session struct {
	game   *runner.Game
	player string
	scores HighScoreStore
	runs   RunRecorder
	log    *log.Logger
}

// New creates an idle session, seeding the game with the stored high score.
func New(cfg config.Config, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	high := 0
	if opts.Scores != nil {
		stored, err := opts.Scores.HighScore()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		high = stored
	}

	gameOpts := []runner.Option{runner.WithSeed(opts.Seed), runner.WithHighScore(high)}
	if opts.Assets != nil {
		gameOpts = append(gameOpts, runner.WithAssets(opts.Assets))
	}
	if opts.Width > 0 {
		gameOpts = append(gameOpts, runner.WithWidth(opts.Width))
	}

	return &Session{
		game:   runner.New(cfg, gameOpts...),
		player: player,
		scores: opts.Scores,
		runs:   opts.Runs,
		log:    logger.With("player", player),
	}
}

// Handle applies an action. It reports whether the action started a new
// run, in which case the caller should start a fresh tick chain.
func (s *Session) Handle(a core.Action) bool {
	events := s.game.Apply(a)
	s.dispatch(events)
	return a == core.ActionStart
}

// Tick advances the game if gen is the current run generation. Ticks from
// an earlier run are dropped and reported as not applied.
func (s *Session) Tick(gen uint64) (runner.StepResult, bool) {
	res, ok := s.game.StepGen(gen)
	if !ok {
		s.log.Debug("dropped stale tick", "gen", gen, "current", s.game.Generation())
		return res, false
	}
	s.dispatch(res.Events)
	return res, true
}

// Resize recomputes lanes for a play-area width in field units.
func (s *Session) Resize(width float64) {
	s.game.Resize(width)
}

// Snapshot returns the current frame.
func (s *Session) Snapshot() runner.Snapshot {
	return s.game.Snapshot()
}

// Generation returns the current run generation.
func (s *Session) Generation() uint64 {
	return s.game.Generation()
}

// Running reports whether the current run is still going (paused or not).
func (s *Session) Running() bool {
	return s.game.State().Phase == runner.PhaseRunning
}

// Config returns the game configuration.
func (s *Session) Config() config.Config {
	return s.game.Config()
}

func (s *Session) dispatch(events []runner.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case runner.RunStarted:
			s.log.Debug("run started", "gen", e.Generation, "plays", e.Plays)
		case runner.ShieldConsumed:
			s.log.Debug("shield absorbed hit", "obstacle", e.ObstacleID, "remaining", e.Remaining)
		case runner.PowerUpApplied:
			s.log.Debug("power-up", "type", e.Type, "shields", e.Shields, "until", e.Until)
		case runner.ModifierExpired:
			s.log.Debug("modifier expired", "type", e.Type)
		case runner.GameOver:
			s.log.Info("run over", "score", e.Score, "high", e.HighScore, "speed", e.Speed, "duration", e.Duration)
			s.recordRun(e)
		case runner.HighScoreUpdated:
			s.log.Info("new high score", "previous", e.Previous, "score", e.Current)
			s.saveHighScore(e.Current)
		}
	}
}

// recordRun is best-effort; the game goes on without storage.
func (s *Session) recordRun(e runner.GameOver) {
	if s.runs == nil || e.Score <= 0 {
		return
	}
	run := storage.Run{
		Player:   s.player,
		Score:    e.Score,
		Speed:    e.Speed,
		Duration: e.Duration,
	}
	if _, err := s.runs.SaveRun(run); err != nil {
		s.log.Warn("could not record run", "error", err)
	}
}

func (s *Session) saveHighScore(score int) {
	if s.scores == nil {
		return
	}
	if err := s.scores.SaveHighScore(score); err != nil {
		s.log.Warn("could not save high score", "error", err)
	}
}
