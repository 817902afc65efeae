package pacman

import (
	"math/rand"

	"github.com/pacterm/pacterm/internal/core"
	"github.com/pacterm/pacterm/internal/maze"
)

// memTile is what a ghost remembers about a maze cell.
type memTile byte

const (
	memUnknown memTile = iota
	memFloor
	memWall
)

// Ghost is a single enemy. Each ghost keeps its own memory of the maze,
// built by looking at adjacent tiles while it wanders. It chases the player
// only when it has an unobstructed line of sight through tiles it knows,
// and prefers exploring unknown tiles otherwise.
type Ghost struct {
	Pos   core.Point
	Spawn core.Point

	// Eaten ghosts sit at their spawn until the respawn timer runs out.
	Eaten        bool
	RespawnTicks int

	memory [][]memTile
}

// NewGhost creates a ghost at its spawn with an empty memory grid.
func NewGhost(spawn core.Point, mazeW, mazeH int) *Ghost {
	memory := make([][]memTile, mazeH)
	for y := range memory {
		memory[y] = make([]memTile, mazeW)
	}
	return &Ghost{
		Pos:    spawn,
		Spawn:  spawn,
		memory: memory,
	}
}

// observe records the current tile as floor and looks at the four adjacent
// tiles, remembering each as wall or floor. Tiles further away stay unknown
// until the ghost wanders near them.
func (g *Ghost) observe(m *maze.Maze) {
	g.remember(g.Pos, memFloor)
	for _, d := range maze.Directions {
		dx, dy := d.Delta()
		p := g.Pos.Add(dx, dy)
		if !m.InBounds(p) {
			continue
		}
		if m.IsWall(p) {
			g.remember(p, memWall)
		} else {
			g.remember(p, memFloor)
		}
	}
}

func (g *Ghost) remember(p core.Point, t memTile) {
	if p.Y >= 0 && p.Y < len(g.memory) && p.X >= 0 && p.X < len(g.memory[p.Y]) {
		g.memory[p.Y][p.X] = t
	}
}

func (g *Ghost) recall(p core.Point) memTile {
	if p.Y < 0 || p.Y >= len(g.memory) || p.X < 0 || p.X >= len(g.memory[p.Y]) {
		return memWall
	}
	return g.memory[p.Y][p.X]
}

// possibleMoves returns directions whose target tile is not a remembered
// wall. Positions outside the maze are never candidates.
func (g *Ghost) possibleMoves(m *maze.Maze) []maze.Direction {
	var moves []maze.Direction
	for _, d := range maze.Directions {
		dx, dy := d.Delta()
		p := g.Pos.Add(dx, dy)
		if !m.InBounds(p) {
			continue
		}
		if g.recall(p) != memWall {
			moves = append(moves, d)
		}
	}
	return moves
}

// seesTarget checks whether the target is within line of sight in any
// direction, using the ghost's memory of walls for occlusion. A wall the
// ghost has not discovered yet does not block its view; it only knows what
// it has seen.
func (g *Ghost) seesTarget(m *maze.Maze, target core.Point, visionRange int) (maze.Direction, bool) {
	for _, d := range maze.Directions {
		dx, dy := d.Delta()
		for i := 1; i <= visionRange; i++ {
			p := g.Pos.Add(dx*i, dy*i)
			if !m.InBounds(p) {
				break
			}
			if g.recall(p) == memWall {
				break
			}
			if p == target {
				return d, true
			}
		}
	}
	return maze.DirUp, false
}

// fleeDirection picks the move that maximizes Manhattan distance from the
// target, breaking ties randomly.
func (g *Ghost) fleeDirection(rng *rand.Rand, target core.Point, moves []maze.Direction) maze.Direction {
	best := moves[0]
	bestDist := -1
	var ties []maze.Direction
	for _, d := range moves {
		dx, dy := d.Delta()
		dist := g.Pos.Add(dx, dy).Manhattan(target)
		switch {
		case dist > bestDist:
			best = d
			bestDist = dist
			ties = ties[:0]
			ties = append(ties, d)
		case dist == bestDist:
			ties = append(ties, d)
		}
	}
	if len(ties) > 1 {
		return ties[rng.Intn(len(ties))]
	}
	return best
}

// NextMove decides the ghost's move for this turn. Priority: flee when
// frightened, chase when the player is in sight, explore unknown tiles,
// otherwise wander.
func (g *Ghost) NextMove(rng *rand.Rand, m *maze.Maze, target core.Point, frightened bool, visionRange int) (maze.Direction, bool) {
	g.observe(m)

	moves := g.possibleMoves(m)
	if len(moves) == 0 {
		return maze.DirUp, false
	}

	if frightened {
		return g.fleeDirection(rng, target, moves), true
	}

	if d, seen := g.seesTarget(m, target, visionRange); seen {
		for _, pm := range moves {
			if pm == d {
				return d, true
			}
		}
	}

	// Prefer exploring unknown tiles
	var exploratory []maze.Direction
	for _, d := range moves {
		dx, dy := d.Delta()
		if g.recall(g.Pos.Add(dx, dy)) == memUnknown {
			exploratory = append(exploratory, d)
		}
	}
	if len(exploratory) > 0 {
		return exploratory[rng.Intn(len(exploratory))], true
	}

	return moves[rng.Intn(len(moves))], true
}

// Move executes one turn: choose a direction and step, learning walls on
// bumps. Eaten ghosts do not move.
func (g *Ghost) Move(rng *rand.Rand, m *maze.Maze, target core.Point, frightened bool, visionRange int) {
	if g.Eaten {
		return
	}

	d, ok := g.NextMove(rng, m, target, frightened, visionRange)
	if !ok {
		return
	}

	to, ok := m.Step(g.Pos, d)
	if !ok {
		// Blocked by something observation missed, such as a border wall
		dx, dy := d.Delta()
		g.remember(g.Pos.Add(dx, dy), memWall)
		return
	}
	g.Pos = to
}

// MarkEaten sends the ghost back to its spawn for respawnTicks.
func (g *Ghost) MarkEaten(respawnTicks int) {
	g.Eaten = true
	g.RespawnTicks = respawnTicks
	g.Pos = g.Spawn
}

// TickRespawn counts down the respawn timer, reviving the ghost at zero.
func (g *Ghost) TickRespawn() {
	if !g.Eaten {
		return
	}
	g.RespawnTicks--
	if g.RespawnTicks <= 0 {
		g.Eaten = false
		g.RespawnTicks = 0
	}
}

// ResetPosition returns the ghost to its spawn without touching its memory.
// Used after the player loses a life.
func (g *Ghost) ResetPosition() {
	g.Pos = g.Spawn
	g.Eaten = false
	g.RespawnTicks = 0
}
