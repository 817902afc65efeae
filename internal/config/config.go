// Package config provides YAML-based game configuration loading and
// difficulty management for pacterm.
package config

// PacmanConfig contains all tunable parameters for the game.
type PacmanConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Ghosts     GhostConfig      `yaml:"ghosts"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// GhostConfig defines ghost behavior parameters.
type GhostConfig struct {
	Count                int `yaml:"count"`                  // Ghosts per maze
	MoveEveryTicks       int `yaml:"move_every_ticks"`       // Normal cadence
	FrightenedEveryTicks int `yaml:"frightened_every_ticks"` // Cadence while frightened
	VisionRange          int `yaml:"vision_range"`           // Line-of-sight chase range
	FrightenedTicks      int `yaml:"frightened_ticks"`       // Power pellet duration
	RespawnTicks         int `yaml:"respawn_ticks"`          // Delay after being eaten
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Ghost       int `yaml:"ghost"`
}

// GameplayConfig defines round-level parameters.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// GeneratorConfig defines the endless-mode maze size.
type GeneratorConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "maze", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Mazes cleared/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Ghost move interval reduction at max difficulty
	VisionBonus       int `yaml:"vision_bonus"`       // Extra vision range at max difficulty
	ExtraGhosts       int `yaml:"extra_ghosts"`       // Additional ghosts at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
