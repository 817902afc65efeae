package config

import "math"

// DifficultyManager calculates dynamic game parameters based on progress
// through a run: more mazes cleared means faster, sharper, more numerous
// ghosts.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on mazes
// cleared or score.
func (d *DifficultyManager) Level(mazesCleared, score int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "maze":
		progress = float64(mazesCleared) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GhostInterval returns the current ghost move interval in ticks.
// Smaller is faster; the floor keeps ghosts catchable.
func (d *DifficultyManager) GhostInterval(base, mazesCleared, score int) int {
	level := d.Level(mazesCleared, score)
	reduction := int(level * float64(d.cfg.Scaling.IntervalReduction))
	result := base - reduction
	if result < 3 {
		result = 3
	}
	return result
}

// VisionRange returns the current ghost line-of-sight range.
func (d *DifficultyManager) VisionRange(base, mazesCleared, score int) int {
	level := d.Level(mazesCleared, score)
	return base + int(level*float64(d.cfg.Scaling.VisionBonus))
}

// GhostCount returns how many ghosts the next maze should spawn.
func (d *DifficultyManager) GhostCount(base, mazesCleared, score int) int {
	level := d.Level(mazesCleared, score)
	return base + int(level*float64(d.cfg.Scaling.ExtraGhosts))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
