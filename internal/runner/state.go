package runner

import "time"

// Phase is the run lifecycle: idle -> running <-> over.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first run
	PhaseRunning              // Simulation active
	PhaseOver                 // Ended by an unshielded fatal hit
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "?"
	}
}

// State is the single aggregate a run mutates. Each tick computes a new
// State from the previous one and commits it whole.
type State struct {
	Phase      Phase
	Paused     bool
	Generation uint64 // Bumped on every start; stale ticks compare against it
	Plays      int    // Runs started this session

	Now       time.Duration // Simulation clock, reset on start
	Speed     int
	Score     int
	HighScore int

	Player    Player
	Modifiers Modifiers
	Obstacles []Obstacle
	PowerUps  []PowerUp

	NextObstacleAt time.Duration
	NextPowerUpAt  time.Duration
	NextID         uint64
}

// Active reports whether ticks should advance the simulation.
func (s State) Active() bool {
	return s.Phase == PhaseRunning && !s.Paused
}

// clone returns a copy that shares no slices with s.
func (s State) clone() State {
	next := s
	next.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	next.PowerUps = append([]PowerUp(nil), s.PowerUps...)
	return next
}

// newID returns the next entity ID. IDs are unique within a run.
func (s *State) newID() uint64 {
	s.NextID++
	return s.NextID
}
