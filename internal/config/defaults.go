package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the hardcoded stock configuration, used as the
// last fallback when even the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Delays: DelayConfig{
			MinUs:    33333, // 30 ticks per second
			MediumUs: 50000, // 20 ticks per second
			MaxUs:    83333, // 12 ticks per second
		},
		Difficulty: "incremental",
	}
}
