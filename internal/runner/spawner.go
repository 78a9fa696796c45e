package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/lanerun/internal/config"
)

// AssetProvider supplies custom images. Implementations return an empty
// list or string when nothing is configured; the simulation never fails
// because of assets.
type AssetProvider interface {
	// ObstacleImages returns the active (non-deleted) obstacle images.
	ObstacleImages() []string
	// PlayerImage returns the custom player image, or "".
	PlayerImage() string
}

type noAssets struct{}

func (noAssets) ObstacleImages() []string { return nil }
func (noAssets) PlayerImage() string      { return "" }

// Spawner creates obstacles and power-ups on two independent cadences.
type Spawner struct {
	rng    *rand.Rand
	cfg    config.Config
	assets AssetProvider
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.Config, assets AssetProvider) *Spawner {
	if assets == nil {
		assets = noAssets{}
	}
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg,
		assets: assets,
	}
}

// Reseed resets the RNG so a run can be replayed.
func (sp *Spawner) Reseed(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
}

// ObstacleDelay returns max(floor, base - speed*step).
func (sp *Spawner) ObstacleDelay(speed int) time.Duration {
	o := sp.cfg.Obstacles
	ms := max(o.SpawnFloorMillis, o.SpawnBaseMillis-speed*o.SpawnStepMillis)
	return time.Duration(ms) * time.Millisecond
}

// PowerUpDelay returns a jittered delay in [min, max).
func (sp *Spawner) PowerUpDelay() time.Duration {
	p := sp.cfg.PowerUps
	ms := p.MinDelayMillis
	if span := p.MaxDelayMillis - p.MinDelayMillis; span > 0 {
		ms += sp.rng.Intn(span)
	}
	return time.Duration(ms) * time.Millisecond
}

// Obstacle creates one obstacle at the top of a random lane.
// Draw order is lane, height class, then image.
func (sp *Spawner) Obstacle(s *State, lanes LaneSet) Obstacle {
	lane := lanes.Offset(lanes.Random(sp.rng))

	o := Obstacle{
		ID:     s.newID(),
		Lane:   lane,
		Class:  HeightTall,
		Height: sp.cfg.Obstacles.TallHeight,
	}
	if sp.rng.Float64() < sp.cfg.Obstacles.LowChance {
		o.Class = HeightLow
		o.Height = sp.cfg.Obstacles.LowHeight
	}

	// An empty image set falls back to the placeholder.
	if images := sp.assets.ObstacleImages(); len(images) > 0 {
		o.Image = images[sp.rng.Intn(len(images))]
	}
	return o
}

// PowerUp creates one power-up of a uniformly chosen type.
func (sp *Spawner) PowerUp(s *State, lanes LaneSet) PowerUp {
	lane := lanes.Offset(lanes.Random(sp.rng))
	return PowerUp{
		ID:   s.newID(),
		Lane: lane,
		Type: PowerUpType(sp.rng.Intn(int(PowerUpCount))),
	}
}

// spawnDue fires every generator whose deadline has passed. Deadlines are
// absolute, so a long tick catches up instead of dropping spawns.
func (sp *Spawner) spawnDue(s *State, lanes LaneSet) {
	for s.NextObstacleAt <= s.Now {
		s.Obstacles = append(s.Obstacles, sp.Obstacle(s, lanes))
		s.NextObstacleAt += sp.ObstacleDelay(s.Speed)
	}
	for s.NextPowerUpAt <= s.Now {
		s.PowerUps = append(s.PowerUps, sp.PowerUp(s, lanes))
		s.NextPowerUpAt += sp.PowerUpDelay()
	}
}
