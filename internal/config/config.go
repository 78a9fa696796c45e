// Package config provides YAML-based game configuration loading for the
// lane runner. Values are read once at startup and stay fixed for every run.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the lane runner.
type Config struct {
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Speed     SpeedConfig    `yaml:"speed"`
	Render    RenderConfig   `yaml:"render"`
}

// FieldConfig defines the play area and the simulation tick.
type FieldConfig struct {
	Height     float64 `yaml:"height"`
	LaneWidth  float64 `yaml:"lane_width"`
	MinLanes   int     `yaml:"min_lanes"`
	TickMillis int     `yaml:"tick_ms"`
	BaseStep   float64 `yaml:"base_step"`
	SlowFactor float64 `yaml:"slow_factor"`
}

// PlayerConfig defines the player hitbox and jump arc.
type PlayerConfig struct {
	BaseTop    float64 `yaml:"base_top"`
	Size       float64 `yaml:"size"`
	JumpHeight float64 `yaml:"jump_height"`
	JumpMillis int     `yaml:"jump_ms"`
}

// ObstacleConfig defines obstacle geometry and spawn cadence.
type ObstacleConfig struct {
	Width            float64 `yaml:"width"`
	LowHeight        float64 `yaml:"low_height"`
	TallHeight       float64 `yaml:"tall_height"`
	LowChance        float64 `yaml:"low_chance"`
	SpawnBaseMillis  int     `yaml:"spawn_base_ms"`
	SpawnStepMillis  int     `yaml:"spawn_step_ms"`
	SpawnFloorMillis int     `yaml:"spawn_floor_ms"`
}

// PowerUpConfig defines power-up geometry, cadence and effects.
type PowerUpConfig struct {
	Size               float64 `yaml:"size"`
	StepFactor         float64 `yaml:"step_factor"`
	MinDelayMillis     int     `yaml:"min_delay_ms"`
	MaxDelayMillis     int     `yaml:"max_delay_ms"`
	DurationMillis     int     `yaml:"duration_ms"`
	ShieldWindowMillis int     `yaml:"shield_window_ms"`
	ShieldCap          int     `yaml:"shield_cap"` // 0 = unbounded
	ScoreMultiplier    int     `yaml:"score_multiplier"`
}

// SpeedConfig bounds the player-adjustable speed level.
type SpeedConfig struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Initial int `yaml:"initial"`
}

// RenderConfig maps play-area units to terminal cells.
type RenderConfig struct {
	ColumnsPerLane int `yaml:"columns_per_lane"`
}

// Tick returns the simulation tick as a duration.
func (c Config) Tick() time.Duration {
	return time.Duration(c.Field.TickMillis) * time.Millisecond
}

// Validate reports every nonsensical value in the config, joined.
func (c Config) Validate() error {
	var errs []error
	if c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field.height must be positive, got %v", c.Field.Height))
	}
	if c.Field.LaneWidth <= 0 {
		errs = append(errs, fmt.Errorf("field.lane_width must be positive, got %v", c.Field.LaneWidth))
	}
	if c.Field.MinLanes < 1 {
		errs = append(errs, fmt.Errorf("field.min_lanes must be at least 1, got %d", c.Field.MinLanes))
	}
	if c.Field.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("field.tick_ms must be positive, got %d", c.Field.TickMillis))
	}
	if c.Field.BaseStep <= 0 {
		errs = append(errs, fmt.Errorf("field.base_step must be positive, got %v", c.Field.BaseStep))
	}
	if c.Field.SlowFactor <= 0 {
		errs = append(errs, fmt.Errorf("field.slow_factor must be positive, got %v", c.Field.SlowFactor))
	}
	if c.Player.Size <= 0 || c.Obstacles.Width <= 0 || c.PowerUps.Size <= 0 {
		errs = append(errs, errors.New("player.size, obstacles.width and powerups.size must be positive"))
	}
	if c.Obstacles.LowChance < 0 || c.Obstacles.LowChance > 1 {
		errs = append(errs, fmt.Errorf("obstacles.low_chance must be within [0,1], got %v", c.Obstacles.LowChance))
	}
	if c.Obstacles.SpawnFloorMillis <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_floor_ms must be positive, got %d", c.Obstacles.SpawnFloorMillis))
	}
	if c.PowerUps.MinDelayMillis <= 0 || c.PowerUps.MaxDelayMillis < c.PowerUps.MinDelayMillis {
		errs = append(errs, fmt.Errorf("powerups delay range [%d,%d) is invalid",
			c.PowerUps.MinDelayMillis, c.PowerUps.MaxDelayMillis))
	}
	if c.PowerUps.StepFactor <= 0 {
		errs = append(errs, fmt.Errorf("powerups.step_factor must be positive, got %v", c.PowerUps.StepFactor))
	}
	if c.PowerUps.DurationMillis <= 0 {
		errs = append(errs, fmt.Errorf("powerups.duration_ms must be positive, got %d", c.PowerUps.DurationMillis))
	}
	if c.PowerUps.ShieldWindowMillis < 0 {
		errs = append(errs, fmt.Errorf("powerups.shield_window_ms must not be negative, got %d", c.PowerUps.ShieldWindowMillis))
	}
	if c.PowerUps.ScoreMultiplier < 1 {
		errs = append(errs, fmt.Errorf("powerups.score_multiplier must be at least 1, got %d", c.PowerUps.ScoreMultiplier))
	}
	if c.PowerUps.ShieldCap < 0 {
		errs = append(errs, fmt.Errorf("powerups.shield_cap must not be negative, got %d", c.PowerUps.ShieldCap))
	}
	if c.Speed.Min < 1 || c.Speed.Max < c.Speed.Min {
		errs = append(errs, fmt.Errorf("speed range [%d,%d] is invalid", c.Speed.Min, c.Speed.Max))
	}
	if c.Speed.Initial < c.Speed.Min || c.Speed.Initial > c.Speed.Max {
		errs = append(errs, fmt.Errorf("speed.initial %d is outside [%d,%d]", c.Speed.Initial, c.Speed.Min, c.Speed.Max))
	}
	if c.Render.ColumnsPerLane < 1 {
		errs = append(errs, fmt.Errorf("render.columns_per_lane must be at least 1, got %d", c.Render.ColumnsPerLane))
	}
	return errors.Join(errs...)
}
