package runner

import (
	"time"

	"github.com/vovakirdan/lanerun/internal/core"
)

// Direction is a lane change intent.
type Direction int

const (
	Previous Direction = -1 // Toward lane 0
	Next     Direction = 1  // Toward the last lane
)

// Move shifts the player one lane, without wraparound.
// It is a no-op unless a run is active.
func (g *Game) Move(dir Direction) {
	if !g.state.Active() {
		return
	}
	next := g.state
	next.Player.Lane = g.lanes.Clamp(next.Player.Lane + int(dir))
	g.state = next
}

// Jump lifts the player for the configured jump duration. The arc has two
// positions only: airborne now, grounded once the duration has elapsed.
func (g *Game) Jump() {
	if !g.state.Active() || g.state.Player.Jumping {
		return
	}
	next := g.state
	next.Player.Jumping = true
	next.Player.Offset = -g.cfg.Player.JumpHeight
	next.Player.JumpEndsAt = next.Now + time.Duration(g.cfg.Player.JumpMillis)*time.Millisecond
	g.state = next
}

// SetSpeed clamps and applies a speed level. Speed can change any time a
// run is in progress, paused or not.
func (g *Game) SetSpeed(level int) {
	if g.state.Phase != PhaseRunning {
		return
	}
	next := g.state
	next.Speed = core.Clamp(level, g.cfg.Speed.Min, g.cfg.Speed.Max)
	g.state = next
}

// TogglePause freezes or resumes the simulation clock.
func (g *Game) TogglePause() {
	if g.state.Phase != PhaseRunning {
		return
	}
	next := g.state
	next.Paused = !next.Paused
	g.state = next
}

// Apply dispatches a semantic action. Only Start produces events.
func (g *Game) Apply(a core.Action) []Event {
	switch a {
	case core.ActionMoveLeft:
		g.Move(Previous)
	case core.ActionMoveRight:
		g.Move(Next)
	case core.ActionJump:
		g.Jump()
	case core.ActionSpeedUp:
		g.SetSpeed(g.state.Speed + 1)
	case core.ActionSpeedDown:
		g.SetSpeed(g.state.Speed - 1)
	case core.ActionPause:
		g.TogglePause()
	case core.ActionStart:
		return g.Start()
	}
	return nil
}
