package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy configuration.
// It mirrors defaults/flappy.yaml and backs it up if the embed fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Area: Area{
			Width:  500,
			Height: 600,
		},
		Player: Player{
			X:      50,
			Y:      150,
			Width:  40,
			Height: 30,
		},
		Physics: Physics{
			Gravity:       0.25,
			AscendGravity: -0.4,
		},
		Obstacles: Obstacles{
			Width:      50,
			Gap:        120,
			MinHeight:  20,
			Speed:      2,
			SpawnEvery: 120,
		},
		Loop: Loop{
			TickRate: 50,
		},
		Score: Score{
			FramesPerPoint: 10,
		},
		Input: Input{
			ReleaseAfterMS: 500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
