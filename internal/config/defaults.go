package config

import (
	_ "embed"
)

//go:embed defaults/lanerun.yaml
var defaultYAML []byte

// Default returns the built-in lane runner configuration.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Height:     600,
			LaneWidth:  100,
			MinLanes:   3,
			TickMillis: 100,
			BaseStep:   10,
			SlowFactor: 0.5,
		},
		Player: PlayerConfig{
			BaseTop:    500,
			Size:       50,
			JumpHeight: 80,
			JumpMillis: 1100,
		},
		Obstacles: ObstacleConfig{
			Width:            50,
			LowHeight:        30,
			TallHeight:       50,
			LowChance:        0.5,
			SpawnBaseMillis:  1000,
			SpawnStepMillis:  150,
			SpawnFloorMillis: 200,
		},
		PowerUps: PowerUpConfig{
			Size:               40,
			StepFactor:         0.5,
			MinDelayMillis:     5000,
			MaxDelayMillis:     10000,
			DurationMillis:     10000,
			ShieldWindowMillis: 1000,
			ShieldCap:          0,
			ScoreMultiplier:    2,
		},
		Speed: SpeedConfig{
			Min:     1,
			Max:     5,
			Initial: 1,
		},
		Render: RenderConfig{
			ColumnsPerLane: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
