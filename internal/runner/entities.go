package runner

import (
	"time"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
)

// HeightClass decides whether an obstacle can be jumped.
type HeightClass int

const (
	HeightLow  HeightClass = iota // Jumpable
	HeightTall                    // Must be dodged
)

// String returns the name of the height class.
func (h HeightClass) String() string {
	switch h {
	case HeightLow:
		return "low"
	case HeightTall:
		return "tall"
	default:
		return "?"
	}
}

// Obstacle is a falling block in one lane. Its height never changes after
// it is spawned.
type Obstacle struct {
	ID     uint64
	Lane   float64 // Lane offset (left edge)
	Top    float64
	Class  HeightClass
	Height float64
	Image  string // Custom image reference, empty for the placeholder

	// Absorbed is set once a shield has paid for this obstacle. It is not
	// fatal for the rest of its pass.
	Absorbed bool
}

// Rect returns the obstacle hitbox.
func (o Obstacle) Rect(cfg config.Config) core.Rect {
	return core.NewRect(o.Lane, o.Top, cfg.Obstacles.Width, o.Height)
}

// FatalTo reports whether an overlap with this obstacle is fatal.
// Low obstacles only hurt a grounded player; tall ones always do.
func (o Obstacle) FatalTo(jumping bool) bool {
	if o.Class == HeightLow {
		return !jumping
	}
	return true
}

// PowerUpType represents the different pickups.
type PowerUpType int

const (
	PowerUpShield      PowerUpType = iota // Absorbs one fatal hit
	PowerUpDoubleScore                    // Doubles eviction score
	PowerUpSlowMotion                     // Halves motion
	PowerUpCount                          // Sentinel for counting types
)

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpShield:
		return "shield"
	case PowerUpDoubleScore:
		return "double-score"
	case PowerUpSlowMotion:
		return "slow-motion"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up type.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpShield:
		return 'S'
	case PowerUpDoubleScore:
		return '2'
	case PowerUpSlowMotion:
		return '~'
	default:
		return '?'
	}
}

// PowerUp is a falling pickup in one lane.
type PowerUp struct {
	ID   uint64
	Lane float64
	Top  float64
	Type PowerUpType
}

// Rect returns the power-up hitbox.
func (p PowerUp) Rect(cfg config.Config) core.Rect {
	return core.NewRect(p.Lane, p.Top, cfg.PowerUps.Size, cfg.PowerUps.Size)
}

// Player is the runner avatar.
type Player struct {
	Lane              int           // Lane index into the current LaneSet
	Offset            float64       // Vertical offset: 0 grounded, -jumpHeight airborne
	Jumping           bool          // Whether the jump arc is in progress
	JumpEndsAt        time.Duration // Simulation time the jump lands
	Shields           int           // Never negative
	InvulnerableUntil time.Duration // Fatal hits are ignored before this time
}

// Invulnerable reports whether a recent shield hit still protects the player.
func (p Player) Invulnerable(now time.Duration) bool {
	return now < p.InvulnerableUntil
}

// Modifiers holds the expiry times of timed power-up effects.
// A zero expiry means the effect is off.
type Modifiers struct {
	DoubleScoreUntil time.Duration
	SlowMotionUntil  time.Duration
}

// DoubleScore reports whether double score is active at now.
func (m Modifiers) DoubleScore(now time.Duration) bool {
	return now < m.DoubleScoreUntil
}

// SlowMotion reports whether slow motion is active at now.
func (m Modifiers) SlowMotion(now time.Duration) bool {
	return now < m.SlowMotionUntil
}

// extend applies latest-expiry-wins: a refresh never shortens an effect.
func extend(current, candidate time.Duration) time.Duration {
	return max(current, candidate)
}
