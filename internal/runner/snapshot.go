package runner

import (
	"math"
	"time"
)

// PlayerView is the renderer's view of the player.
type PlayerView struct {
	Lane         int
	X            float64
	Y            float64
	Size         float64
	Jumping      bool
	Shields      int
	Invulnerable bool
	Image        string // Empty on the first run of a session
}

// Snapshot is everything a renderer needs for one frame. It shares no
// memory with the game.
type Snapshot struct {
	Phase      Phase
	Paused     bool
	Generation uint64
	Plays      int
	Now        time.Duration

	Score     int
	HighScore int
	Speed     int

	FieldWidth  float64
	FieldHeight float64
	Lanes       []float64
	Player      PlayerView
	Obstacles   []Obstacle
	PowerUps    []PowerUp

	DoubleScoreLeft time.Duration // Zero when inactive
	SlowMotionLeft  time.Duration // Zero when inactive
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Phase:       s.Phase,
		Paused:      s.Paused,
		Generation:  s.Generation,
		Plays:       s.Plays,
		Now:         s.Now,
		Score:       s.Score,
		HighScore:   s.HighScore,
		Speed:       s.Speed,
		FieldWidth:  g.lanes.Width(g.cfg.Field.LaneWidth),
		FieldHeight: g.cfg.Field.Height,
		Lanes:       g.lanes.Offsets(),
		Player: PlayerView{
			Lane:         s.Player.Lane,
			X:            g.lanes.Offset(s.Player.Lane),
			Y:            g.cfg.Player.BaseTop + s.Player.Offset,
			Size:         g.cfg.Player.Size,
			Jumping:      s.Player.Jumping,
			Shields:      s.Player.Shields,
			Invulnerable: s.Player.Invulnerable(s.Now),
			Image:        g.playerImage(s.Plays),
		},
		Obstacles:       append([]Obstacle(nil), s.Obstacles...),
		PowerUps:        append([]PowerUp(nil), s.PowerUps...),
		DoubleScoreLeft: remaining(s.Modifiers.DoubleScoreUntil, s.Now),
		SlowMotionLeft:  remaining(s.Modifiers.SlowMotionUntil, s.Now),
	}
}

// playerImage returns the skin for the given play count. The first run of
// a session always uses the placeholder.
func (g *Game) playerImage(plays int) string {
	if plays < 2 {
		return ""
	}
	return g.assets.PlayerImage()
}

func remaining(until, now time.Duration) time.Duration {
	if until <= now {
		return 0
	}
	return until - now
}

// Hash returns a hash of the simulation-relevant fields for determinism
// checks. Images are excluded.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Generation)
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Now)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Lane) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Player.Y)
	h = h*31 + uint64(snap.Player.Shields)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DoubleScoreLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SlowMotionLeft)  //#nosec G115 -- hash computation

	for _, o := range snap.Obstacles {
		h = h*31 + o.ID
		h = h*31 + math.Float64bits(o.Lane)
		h = h*31 + math.Float64bits(o.Top)
		h = h*31 + uint64(o.Class) //#nosec G115 -- hash computation
	}
	for _, p := range snap.PowerUps {
		h = h*31 + p.ID
		h = h*31 + math.Float64bits(p.Lane)
		h = h*31 + math.Float64bits(p.Top)
		h = h*31 + uint64(p.Type) //#nosec G115 -- hash computation
	}
	return h
}
