package pacman

import (
	"math/rand"
	"testing"

	"github.com/pacterm/pacterm/internal/core"
	"github.com/pacterm/pacterm/internal/maze"
)

func mustParse(t *testing.T, layout []string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(layout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return m
}

func TestGhostObserveMarksAdjacentTiles(t *testing.T) {
	m := mustParse(t, []string{
		"#####",
		"#G..#",
		"#####",
	})
	gh := NewGhost(m.GhostStarts[0], m.Width(), m.Height())

	if got := gh.recall(gh.Pos); got != memUnknown {
		t.Fatalf("fresh ghost recall(pos) = %v, want memUnknown", got)
	}
	gh.observe(m)
	if got := gh.recall(gh.Pos); got != memFloor {
		t.Errorf("after observe recall(pos) = %v, want memFloor", got)
	}
	if got := gh.recall(core.Point{X: 2, Y: 1}); got != memFloor {
		t.Errorf("after observe recall(right) = %v, want memFloor", got)
	}
	if got := gh.recall(core.Point{X: 1, Y: 0}); got != memWall {
		t.Errorf("after observe recall(up) = %v, want memWall", got)
	}
	// Tiles two steps away are out of observation reach.
	if got := gh.recall(core.Point{X: 3, Y: 1}); got != memUnknown {
		t.Errorf("after observe recall(two right) = %v, want memUnknown", got)
	}
}

func TestGhostSeesTarget(t *testing.T) {
	m := mustParse(t, []string{
		"#######",
		"#G...C#",
		"#######",
	})
	gh := NewGhost(m.GhostStarts[0], m.Width(), m.Height())

	d, seen := gh.seesTarget(m, m.PlayerStart, 4)
	if !seen {
		t.Fatal("seesTarget() = false, want true for clear corridor at range 4")
	}
	if d != maze.DirRight {
		t.Errorf("seesTarget() direction = %v, want DirRight", d)
	}
}

func TestGhostVisionRangeLimit(t *testing.T) {
	m := mustParse(t, []string{
		"########",
		"#G....C#",
		"########",
	})
	gh := NewGhost(m.GhostStarts[0], m.Width(), m.Height())

	if _, seen := gh.seesTarget(m, m.PlayerStart, 4); seen {
		t.Error("seesTarget() = true at distance 5 with range 4")
	}
	if _, seen := gh.seesTarget(m, m.PlayerStart, 5); !seen {
		t.Error("seesTarget() = false at distance 5 with range 5")
	}
}

func TestGhostVisionOccludedByMemory(t *testing.T) {
	m := mustParse(t, []string{
		"#####",
		"#G#C#",
		"#####",
	})
	gh := NewGhost(m.GhostStarts[0], m.Width(), m.Height())

	// The wall at (2,1) is not in memory yet, so the ghost sees through it.
	if _, seen := gh.seesTarget(m, m.PlayerStart, 4); !seen {
		t.Error("seesTarget() = false through an undiscovered wall, want true")
	}

	gh.remember(core.Point{X: 2, Y: 1}, memWall)
	if _, seen := gh.seesTarget(m, m.PlayerStart, 4); seen {
		t.Error("seesTarget() = true through a remembered wall, want false")
	}
}

func TestGhostChasesWhenTargetSeen(t *testing.T) {
	m := mustParse(t, []string{
		"#######",
		"#G...C#",
		"#######",
	})
	gh := NewGhost(m.GhostStarts[0], m.Width(), m.Height())
	rng := rand.New(rand.NewSource(1))

	d, ok := gh.NextMove(rng, m, m.PlayerStart, false, 4)
	if !ok {
		t.Fatal("NextMove() ok = false")
	}
	if d != maze.DirRight {
		t.Errorf("NextMove() = %v, want DirRight toward visible target", d)
	}
}

func TestGhostFleesWhenFrightened(t *testing.T) {
	m := mustParse(t, []string{
		"#######",
		"#C...G#",
		"#####.#",
		"#######",
	})
	gh := NewGhost(m.GhostStarts[0], m.Width(), m.Height())
	rng := rand.New(rand.NewSource(1))

	// Observation leaves the choice between moving toward the player (left)
	// and away (down).
	d, ok := gh.NextMove(rng, m, m.PlayerStart, true, 4)
	if !ok {
		t.Fatal("NextMove() ok = false")
	}
	if d != maze.DirDown {
		t.Errorf("frightened NextMove() = %v, want DirDown away from target", d)
	}
}

func TestGhostAvoidsObservedWall(t *testing.T) {
	m := mustParse(t, []string{
		"#####",
		"#G#C#",
		"#.#.#",
		"#####",
	})
	gh := NewGhost(m.GhostStarts[0], m.Width(), m.Height())
	rng := rand.New(rand.NewSource(1))

	// The wall between ghost and player is learned by observation, so the
	// ghost cannot see the player through it and takes the open corridor
	// down instead of wasting the turn.
	gh.Move(rng, m, m.PlayerStart, false, 4)

	if got := gh.recall(core.Point{X: 2, Y: 1}); got != memWall {
		t.Errorf("recall(adjacent wall) = %v, want memWall", got)
	}
	if want := (core.Point{X: 1, Y: 2}); gh.Pos != want {
		t.Errorf("ghost at %v, want %v", gh.Pos, want)
	}
}

func TestGhostEatenRespawn(t *testing.T) {
	m := mustParse(t, []string{
		"#####",
		"#G..#",
		"#####",
	})
	gh := NewGhost(m.GhostStarts[0], m.Width(), m.Height())
	gh.Pos = core.Point{X: 3, Y: 1}

	gh.MarkEaten(5)
	if !gh.Eaten {
		t.Fatal("MarkEaten() did not set Eaten")
	}
	if gh.Pos != gh.Spawn {
		t.Errorf("eaten ghost at %v, want spawn %v", gh.Pos, gh.Spawn)
	}

	// Eaten ghosts stay put.
	rng := rand.New(rand.NewSource(1))
	gh.Move(rng, m, core.Point{X: 3, Y: 1}, false, 4)
	if gh.Pos != gh.Spawn {
		t.Errorf("eaten ghost moved to %v", gh.Pos)
	}

	for i := 0; i < 5; i++ {
		if !gh.Eaten {
			t.Fatalf("ghost revived after %d ticks, want 5", i)
		}
		gh.TickRespawn()
	}
	if gh.Eaten {
		t.Error("ghost still eaten after respawn timer expired")
	}
}
