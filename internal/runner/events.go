package runner

import "time"

// Event is an outcome emitted by a tick or an intent.
type Event interface {
	runEvent()
}

// RunStarted is emitted when a run (re)starts.
type RunStarted struct {
	Generation uint64
	Plays      int
}

// ScoreAccrued is emitted for every obstacle that leaves the field.
type ScoreAccrued struct {
	ObstacleID uint64
	Points     int
}

// ShieldConsumed is emitted when a shield absorbs a fatal hit.
type ShieldConsumed struct {
	ObstacleID        uint64
	Remaining         int
	InvulnerableUntil time.Duration
}

// PowerUpApplied is emitted on pickup. Until is zero for shields.
type PowerUpApplied struct {
	Type    PowerUpType
	Shields int
	Until   time.Duration
}

// ModifierExpired is emitted when a timed effect runs out.
type ModifierExpired struct {
	Type PowerUpType
}

// GameOver is emitted when an unshielded fatal hit ends the run.
type GameOver struct {
	ObstacleID uint64
	Score      int
	HighScore  int
	NewHigh    bool
	Speed      int
	Duration   time.Duration
}

// HighScoreUpdated is emitted at game over when the run beat the record.
type HighScoreUpdated struct {
	Previous int
	Current  int
}

func (RunStarted) runEvent()       {}
func (ScoreAccrued) runEvent()     {}
func (ShieldConsumed) runEvent()   {}
func (PowerUpApplied) runEvent()   {}
func (ModifierExpired) runEvent()  {}
func (GameOver) runEvent()         {}
func (HighScoreUpdated) runEvent() {}
