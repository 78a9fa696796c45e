package runner

import (
	"github.com/vovakirdan/lanerun/internal/config"
)

// motionStep returns how far an entity falls in one tick.
// factor is 1 for obstacles and the configured step factor for power-ups.
func motionStep(cfg config.Config, speed int, slow bool, factor float64) float64 {
	step := cfg.Field.BaseStep * factor * float64(speed)
	if slow {
		step *= cfg.Field.SlowFactor
	}
	return step
}

// scoreMultiplier returns the per-eviction multiplier for the current tick.
func scoreMultiplier(cfg config.Config, double bool) int {
	if double {
		return cfg.PowerUps.ScoreMultiplier
	}
	return 1
}

// advanceObstacles moves every obstacle and evicts those whose top reached
// the field height. Eviction is the only source of score.
func advanceObstacles(s *State, cfg config.Config, events []Event) []Event {
	step := motionStep(cfg, s.Speed, s.Modifiers.SlowMotion(s.Now), 1)
	points := s.Speed * scoreMultiplier(cfg, s.Modifiers.DoubleScore(s.Now))

	kept := make([]Obstacle, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		o.Top += step
		if o.Top >= cfg.Field.Height {
			s.Score += points
			events = append(events, ScoreAccrued{ObstacleID: o.ID, Points: points})
			continue
		}
		kept = append(kept, o)
	}
	s.Obstacles = kept
	return events
}

// advancePowerUps moves every power-up and drops those that left the field.
func advancePowerUps(s *State, cfg config.Config) {
	step := motionStep(cfg, s.Speed, s.Modifiers.SlowMotion(s.Now), cfg.PowerUps.StepFactor)

	kept := make([]PowerUp, 0, len(s.PowerUps))
	for _, p := range s.PowerUps {
		p.Top += step
		if p.Top >= cfg.Field.Height {
			continue
		}
		kept = append(kept, p)
	}
	s.PowerUps = kept
}

// expireTimers lands finished jumps and switches off lapsed modifiers.
func expireTimers(s *State, events []Event) []Event {
	if s.Player.Jumping && s.Now >= s.Player.JumpEndsAt {
		s.Player.Jumping = false
		s.Player.Offset = 0
		s.Player.JumpEndsAt = 0
	}
	if s.Modifiers.DoubleScoreUntil != 0 && !s.Modifiers.DoubleScore(s.Now) {
		s.Modifiers.DoubleScoreUntil = 0
		events = append(events, ModifierExpired{Type: PowerUpDoubleScore})
	}
	if s.Modifiers.SlowMotionUntil != 0 && !s.Modifiers.SlowMotion(s.Now) {
		s.Modifiers.SlowMotionUntil = 0
		events = append(events, ModifierExpired{Type: PowerUpSlowMotion})
	}
	return events
}
