package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default game configuration.
// Kept in sync with defaults/pacman.yaml as a fallback if the embedded
// file fails to parse.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Player: PlayerConfig{
			MoveEveryTicks: 8,
		},
		Ghosts: GhostConfig{
			Count:                3,
			MoveEveryTicks:       10,
			FrightenedEveryTicks: 20,
			VisionRange:          4,
			FrightenedTicks:      360,
			RespawnTicks:         300,
		},
		Scoring: ScoringConfig{
			Pellet:      10,
			PowerPellet: 50,
			Ghost:       200,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Generator: GeneratorConfig{
			Width:  25,
			Height: 15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "maze",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 5,
				VisionBonus:       4,
				ExtraGhosts:       2,
			},
		},
	}
}
