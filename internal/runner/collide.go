package runner

import (
	"time"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
)

// playerRect returns the player hitbox in field units.
func playerRect(s *State, cfg config.Config, lanes LaneSet) core.Rect {
	return core.NewRect(
		lanes.Offset(s.Player.Lane),
		cfg.Player.BaseTop+s.Player.Offset,
		cfg.Player.Size,
		cfg.Player.Size,
	)
}

// resolveObstacles applies the first fatal overlap, if any. A shield turns
// the hit into an invulnerability window and marks the obstacle absorbed,
// so it can never cost a second shield or end the run; otherwise the run
// ends. Nothing is evaluated while the window is open.
func resolveObstacles(s *State, cfg config.Config, lanes LaneSet, events []Event) []Event {
	if s.Player.Invulnerable(s.Now) {
		return events
	}

	pr := playerRect(s, cfg, lanes)
	for i, o := range s.Obstacles {
		if o.Absorbed || !o.FatalTo(s.Player.Jumping) || !pr.Intersects(o.Rect(cfg)) {
			continue
		}

		if s.Player.Shields > 0 {
			s.Obstacles[i].Absorbed = true
			s.Player.Shields--
			s.Player.InvulnerableUntil = s.Now + time.Duration(cfg.PowerUps.ShieldWindowMillis)*time.Millisecond
			return append(events, ShieldConsumed{
				ObstacleID:        o.ID,
				Remaining:         s.Player.Shields,
				InvulnerableUntil: s.Player.InvulnerableUntil,
			})
		}
		return endRun(s, o.ID, events)
	}
	return events
}

// endRun flips the state to over and commits the high score.
func endRun(s *State, obstacleID uint64, events []Event) []Event {
	previous := s.HighScore
	s.Phase = PhaseOver
	s.Paused = false
	s.HighScore = max(s.Score, previous)

	events = append(events, GameOver{
		ObstacleID: obstacleID,
		Score:      s.Score,
		HighScore:  s.HighScore,
		NewHigh:    s.HighScore > previous,
		Speed:      s.Speed,
		Duration:   s.Now,
	})
	if s.HighScore > previous {
		events = append(events, HighScoreUpdated{Previous: previous, Current: s.HighScore})
	}
	return events
}

// resolvePowerUps picks up every overlapping power-up. Each one is removed
// from the list as it is applied, so it can only be consumed once.
func resolvePowerUps(s *State, cfg config.Config, lanes LaneSet, events []Event) []Event {
	pr := playerRect(s, cfg, lanes)

	kept := make([]PowerUp, 0, len(s.PowerUps))
	for _, p := range s.PowerUps {
		if !pr.Intersects(p.Rect(cfg)) {
			kept = append(kept, p)
			continue
		}
		events = append(events, applyPowerUp(s, cfg, p.Type))
	}
	s.PowerUps = kept
	return events
}

// applyPowerUp applies a pickup effect. Timed effects use latest-expiry-wins
// so an earlier pickup can never cut a later one short.
func applyPowerUp(s *State, cfg config.Config, t PowerUpType) PowerUpApplied {
	until := s.Now + time.Duration(cfg.PowerUps.DurationMillis)*time.Millisecond

	switch t {
	case PowerUpShield:
		if limit := cfg.PowerUps.ShieldCap; limit == 0 || s.Player.Shields < limit {
			s.Player.Shields++
		}
		return PowerUpApplied{Type: t, Shields: s.Player.Shields}
	case PowerUpDoubleScore:
		s.Modifiers.DoubleScoreUntil = extend(s.Modifiers.DoubleScoreUntil, until)
		return PowerUpApplied{Type: t, Shields: s.Player.Shields, Until: s.Modifiers.DoubleScoreUntil}
	case PowerUpSlowMotion:
		s.Modifiers.SlowMotionUntil = extend(s.Modifiers.SlowMotionUntil, until)
		return PowerUpApplied{Type: t, Shields: s.Player.Shields, Until: s.Modifiers.SlowMotionUntil}
	default:
		return PowerUpApplied{Type: t, Shields: s.Player.Shields}
	}
}
