package maze

import (
	"math/rand"
	"testing"

	"github.com/pacterm/pacterm/internal/core"
)

func TestNewGeneratorValidation(t *testing.T) {
	if _, err := NewGenerator(5, 9); err == nil {
		t.Error("NewGenerator should reject widths below the minimum")
	}
	if _, err := NewGenerator(9, 5); err == nil {
		t.Error("NewGenerator should reject heights below the minimum")
	}

	// Even dimensions are rounded up to odd
	g, err := NewGenerator(10, 8)
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	m := g.Generate(rand.New(rand.NewSource(1)), 2)
	if m.Width() != 11 || m.Height() != 9 {
		t.Errorf("generated size = %dx%d, expected 11x9", m.Width(), m.Height())
	}
}

func TestGenerateDeterminism(t *testing.T) {
	g, err := NewGenerator(15, 11)
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}

	m1 := g.Generate(rand.New(rand.NewSource(42)), 3)
	m2 := g.Generate(rand.New(rand.NewSource(42)), 3)

	if m1.PlayerStart != m2.PlayerStart {
		t.Errorf("player starts differ: %+v vs %+v", m1.PlayerStart, m2.PlayerStart)
	}
	if len(m1.GhostStarts) != len(m2.GhostStarts) {
		t.Fatalf("ghost counts differ: %d vs %d", len(m1.GhostStarts), len(m2.GhostStarts))
	}
	for i := range m1.GhostStarts {
		if m1.GhostStarts[i] != m2.GhostStarts[i] {
			t.Errorf("ghost start %d differs: %+v vs %+v", i, m1.GhostStarts[i], m2.GhostStarts[i])
		}
	}
	for y := 0; y < m1.Height(); y++ {
		for x := 0; x < m1.Width(); x++ {
			p := core.Point{X: x, Y: y}
			if m1.IsWall(p) != m2.IsWall(p) {
				t.Fatalf("wall layout differs at (%d, %d)", x, y)
			}
		}
	}
}

func TestGenerateStructure(t *testing.T) {
	g, err := NewGenerator(21, 15)
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	m := g.Generate(rand.New(rand.NewSource(7)), 3)

	// Full wall border
	for x := 0; x < m.Width(); x++ {
		if !m.IsWall(core.Point{X: x, Y: 0}) || !m.IsWall(core.Point{X: x, Y: m.Height() - 1}) {
			t.Fatalf("border not solid at column %d", x)
		}
	}
	for y := 0; y < m.Height(); y++ {
		if !m.IsWall(core.Point{X: 0, Y: y}) || !m.IsWall(core.Point{X: m.Width() - 1, Y: y}) {
			t.Fatalf("border not solid at row %d", y)
		}
	}

	// Spawns are on open tiles
	if m.IsWall(m.PlayerStart) {
		t.Error("player spawn is a wall")
	}
	for _, gs := range m.GhostStarts {
		if m.IsWall(gs) {
			t.Errorf("ghost spawn %+v is a wall", gs)
		}
	}

	// Player spawn holds no pellet
	if has, _ := m.PelletAt(m.PlayerStart); has {
		t.Error("player spawn should not hold a pellet")
	}

	if m.PelletsRemaining() == 0 {
		t.Error("generated maze should contain pellets")
	}
}

func TestGenerateGhostDistance(t *testing.T) {
	g, err := NewGenerator(21, 15)
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}

	for seed := int64(0); seed < 10; seed++ {
		m := g.Generate(rand.New(rand.NewSource(seed)), 3)
		minDistance := (m.Width() + m.Height()) / 4
		for _, gs := range m.GhostStarts {
			if d := gs.Manhattan(m.PlayerStart); d <= minDistance {
				// Allowed only when the maze had too few safe cells, which
				// cannot happen at this size.
				t.Errorf("seed %d: ghost at %+v too close to player %+v (distance %d)",
					seed, gs, m.PlayerStart, d)
			}
		}
	}
}

func TestGenerateConnectivity(t *testing.T) {
	g, err := NewGenerator(21, 15)
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	m := g.Generate(rand.New(rand.NewSource(3)), 3)

	// Flood fill from the player spawn must reach every pellet.
	visited := map[core.Point]bool{m.PlayerStart: true}
	queue := []core.Point{m.PlayerStart}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if to, ok := m.Step(p, d); ok && !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := core.Point{X: x, Y: y}
			if has, _ := m.PelletAt(p); has && !visited[p] {
				t.Fatalf("pellet at (%d, %d) unreachable from player spawn", x, y)
			}
		}
	}
}
