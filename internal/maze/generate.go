package maze

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/pacterm/pacterm/internal/core"
)

// Generator produces random mazes using a randomized Prim's algorithm.
// Corridors are carved on odd coordinates, every carved cell gets a pellet,
// and one power pellet is placed near each corner.
type Generator struct {
	width  int
	height int
}

// MinGeneratorSize is the smallest usable maze dimension.
const MinGeneratorSize = 7

// NewGenerator creates a generator for mazes of the given size.
// Even dimensions are rounded up to odd so the carving algorithm lines up.
func NewGenerator(width, height int) (*Generator, error) {
	if width < MinGeneratorSize || height < MinGeneratorSize {
		return nil, fmt.Errorf("maze: dimensions must be at least %dx%d, got %dx%d",
			MinGeneratorSize, MinGeneratorSize, width, height)
	}
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	return &Generator{width: width, height: height}, nil
}

// Generate carves a maze and places pellets, power pellets, and spawn
// points for the player and up to ghostCount ghosts. All randomness comes
// from rng, so equal seeds produce equal mazes.
func (g *Generator) Generate(rng *rand.Rand, ghostCount int) *Maze {
	grid := make([][]bool, g.height) // true = wall
	for y := range grid {
		grid[y] = make([]bool, g.width)
		for x := range grid[y] {
			grid[y][x] = true
		}
	}

	g.carve(rng, grid)

	m := &Maze{
		width:  g.width,
		height: g.height,
	}
	m.tiles = make([][]Tile, g.height)
	for y := range m.tiles {
		m.tiles[y] = make([]Tile, g.width)
		for x := range m.tiles[y] {
			if grid[y][x] {
				m.tiles[y][x].Wall = true
			} else {
				m.tiles[y][x].Pellet = true
			}
		}
	}

	g.placePowerPellets(m)
	g.placeStarts(rng, m, ghostCount)

	m.initBorders()
	m.initGlyphs()
	return m
}

// carve runs randomized Prim's algorithm: start from a random odd cell,
// then repeatedly open a random frontier cell and connect it to an already
// carved neighbor two cells away.
func (g *Generator) carve(rng *rand.Rand, grid [][]bool) {
	startX := 1 + 2*rng.Intn((g.width-1)/2)
	startY := 1 + 2*rng.Intn((g.height-1)/2)
	grid[startY][startX] = false

	type cell struct{ x, y int }
	offsets := []cell{{0, 2}, {0, -2}, {2, 0}, {-2, 0}}

	inInterior := func(x, y int) bool {
		return x > 0 && x < g.width-1 && y > 0 && y < g.height-1
	}

	var frontiers []cell
	seen := map[cell]bool{}
	addFrontiers := func(x, y int) {
		for _, o := range offsets {
			nx, ny := x+o.x, y+o.y
			c := cell{nx, ny}
			if inInterior(nx, ny) && grid[ny][nx] && !seen[c] {
				frontiers = append(frontiers, c)
				seen[c] = true
			}
		}
	}
	addFrontiers(startX, startY)

	for len(frontiers) > 0 {
		i := rng.Intn(len(frontiers))
		f := frontiers[i]
		frontiers[i] = frontiers[len(frontiers)-1]
		frontiers = frontiers[:len(frontiers)-1]

		grid[f.y][f.x] = false

		// Connect to a random already carved neighbor
		var carved []cell
		for _, o := range offsets {
			nx, ny := f.x+o.x, f.y+o.y
			if inInterior(nx, ny) && !grid[ny][nx] {
				carved = append(carved, cell{nx, ny})
			}
		}
		if len(carved) > 0 {
			n := carved[rng.Intn(len(carved))]
			grid[(f.y+n.y)/2][(f.x+n.x)/2] = false
		}

		addFrontiers(f.x, f.y)
	}
}

// placePowerPellets upgrades the floor cell closest to each corner.
func (g *Generator) placePowerPellets(m *Maze) {
	corners := []core.Point{
		{X: 1, Y: 1},
		{X: g.width - 2, Y: 1},
		{X: 1, Y: g.height - 2},
		{X: g.width - 2, Y: g.height - 2},
	}

	for _, corner := range corners {
		best := core.Point{X: -1, Y: -1}
		bestDist := g.width + g.height
		for y := 1; y < g.height-1; y++ {
			for x := 1; x < g.width-1; x++ {
				p := core.Point{X: x, Y: y}
				if !m.tiles[y][x].Pellet {
					continue
				}
				if d := p.Manhattan(corner); d < bestDist {
					best = p
					bestDist = d
				}
			}
		}
		if best.X >= 0 {
			m.tiles[best.Y][best.X].Pellet = false
			m.tiles[best.Y][best.X].Power = true
		}
	}
}

// placeStarts picks the player spawn and ghost spawns, keeping ghosts at a
// safe Manhattan distance from the player. When too few safe cells exist,
// the farthest cells are used instead.
func (g *Generator) placeStarts(rng *rand.Rand, m *Maze, ghostCount int) {
	var floors []core.Point
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if m.tiles[y][x].Pellet {
				floors = append(floors, core.Point{X: x, Y: y})
			}
		}
	}

	if len(floors) == 0 {
		m.PlayerStart = core.Point{X: g.width / 2, Y: g.height / 2}
		m.GhostStarts = []core.Point{{X: 1, Y: 1}}
		return
	}

	player := floors[rng.Intn(len(floors))]
	m.PlayerStart = player
	m.tiles[player.Y][player.X].Pellet = false

	minDistance := (g.width + g.height) / 4
	var candidates []core.Point
	for _, p := range floors {
		if p == player {
			continue
		}
		if p.Manhattan(player) > minDistance {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) >= ghostCount {
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	} else {
		candidates = candidates[:0]
		for _, p := range floors {
			if p != player {
				candidates = append(candidates, p)
			}
		}
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].Manhattan(player) > candidates[j].Manhattan(player)
		})
	}

	n := core.Min(ghostCount, len(candidates))
	m.GhostStarts = append([]core.Point{}, candidates[:n]...)
}
