// Package config provides YAML-based configuration loading for the game:
// tick pacing per difficulty and the difficulty preselected in dialogs.
package config

import (
	"fmt"
	"time"
)

// Config is the full game configuration.
type Config struct {
	Delays     DelayConfig `yaml:"delays"`
	Difficulty string      `yaml:"difficulty"` // incremental, easy, medium or hard
}

// DelayConfig defines the per-tick suspension bounds in microseconds.
// Min paces Hard, Max paces Easy, and Incremental interpolates between
// them as the board fills.
type DelayConfig struct {
	MinUs    int `yaml:"min_us"`
	MediumUs int `yaml:"medium_us"`
	MaxUs    int `yaml:"max_us"`
}

// Min returns the fastest tick delay.
func (d DelayConfig) Min() time.Duration {
	return time.Duration(d.MinUs) * time.Microsecond
}

// Medium returns the middle tick delay.
func (d DelayConfig) Medium() time.Duration {
	return time.Duration(d.MediumUs) * time.Microsecond
}

// Max returns the slowest tick delay.
func (d DelayConfig) Max() time.Duration {
	return time.Duration(d.MaxUs) * time.Microsecond
}

// Validate checks that the delay table is usable.
func (c Config) Validate() error {
	d := c.Delays
	if d.MinUs <= 0 || d.MediumUs <= 0 || d.MaxUs <= 0 {
		return fmt.Errorf("config: delays must be positive, got min=%d medium=%d max=%d",
			d.MinUs, d.MediumUs, d.MaxUs)
	}
	if d.MinUs > d.MediumUs || d.MediumUs > d.MaxUs {
		return fmt.Errorf("config: delays must satisfy min <= medium <= max, got min=%d medium=%d max=%d",
			d.MinUs, d.MediumUs, d.MaxUs)
	}
	return nil
}
