// Package maze provides the grid model for pacterm: wall layout, pellets,
// power pellets, spawn points and movement blocking. It contains pure data
// logic with no rendering or input dependencies.
package maze

import (
	"fmt"

	"github.com/pacterm/pacterm/internal/core"
)

// Direction represents a movement direction on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions for iteration.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (dx, dy) offset for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Tile is a single maze cell. Walls live on tile borders: a border wall is
// set wherever the original layout transitions between wall and floor, so
// blocking checks ask the departing tile rather than the target tile.
type Tile struct {
	Wall   bool // Tile was a wall in the layout
	Pellet bool
	Power  bool

	wallN, wallS, wallE, wallW bool
	glyph                      rune
}

// Maze is the parsed game map.
type Maze struct {
	tiles  [][]Tile
	width  int
	height int

	// Spawn points found in the layout (or set by the generator).
	PlayerStart core.Point
	GhostStarts []core.Point
}

// Layout characters accepted by Parse.
const (
	charWall    = '#'
	charWallAlt = '=' // legacy layouts
	charPellet  = '.'
	charPower   = 'o'
	charPlayer  = 'C'
	charGhost   = 'G'
)

// Parse builds a Maze from a string layout. All rows must have equal
// length. 'C' marks the player spawn and 'G' marks ghost spawns; both are
// floor tiles without pellets.
func Parse(layout []string) (*Maze, error) {
	if len(layout) < 3 {
		return nil, fmt.Errorf("maze: layout needs at least 3 rows, got %d", len(layout))
	}
	width := len([]rune(layout[0]))
	if width < 3 {
		return nil, fmt.Errorf("maze: layout needs at least 3 columns, got %d", width)
	}

	m := &Maze{
		width:       width,
		height:      len(layout),
		PlayerStart: core.Point{X: -1, Y: -1},
	}
	m.tiles = make([][]Tile, m.height)

	for y, row := range layout {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("maze: row %d has %d columns, expected %d", y, len(runes), width)
		}
		m.tiles[y] = make([]Tile, width)
		for x, ch := range runes {
			switch ch {
			case charWall, charWallAlt:
				m.tiles[y][x].Wall = true
			case charPellet:
				m.tiles[y][x].Pellet = true
			case charPower:
				m.tiles[y][x].Power = true
			case charPlayer:
				m.PlayerStart = core.Point{X: x, Y: y}
			case charGhost:
				m.GhostStarts = append(m.GhostStarts, core.Point{X: x, Y: y})
			case ' ':
				// floor
			default:
				return nil, fmt.Errorf("maze: unknown character %q at (%d, %d)", ch, x, y)
			}
		}
	}

	m.initBorders()
	m.initGlyphs()
	return m, nil
}

// initBorders sets wall flags on tile borders by checking for transitions
// between wall and floor tiles in the layout.
func (m *Maze) initBorders() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if y < m.height-1 && m.tiles[y][x].Wall != m.tiles[y+1][x].Wall {
				m.tiles[y][x].wallS = true
				m.tiles[y+1][x].wallN = true
			}
			if x < m.width-1 && m.tiles[y][x].Wall != m.tiles[y][x+1].Wall {
				m.tiles[y][x].wallE = true
				m.tiles[y][x+1].wallW = true
			}
		}
	}
}

// initGlyphs picks an oriented box-drawing rune for each wall tile based on
// its wall neighbors.
func (m *Maze) initGlyphs() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			t := &m.tiles[y][x]
			if !t.Wall {
				continue
			}
			up := y > 0 && m.tiles[y-1][x].Wall
			down := y < m.height-1 && m.tiles[y+1][x].Wall
			left := x > 0 && m.tiles[y][x-1].Wall
			right := x < m.width-1 && m.tiles[y][x+1].Wall

			vertical := up || down
			horizontal := left || right

			switch {
			case vertical && !horizontal:
				t.glyph = '│'
			case horizontal && !vertical:
				t.glyph = '─'
			default:
				t.glyph = '┼'
			}
		}
	}
}

// Width returns the maze width in tiles.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the maze height in tiles.
func (m *Maze) Height() int {
	return m.height
}

// InBounds returns true if the position is within the maze.
func (m *Maze) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// IsWall returns true if the tile at p is a wall. Out-of-bounds positions
// count as walls.
func (m *Maze) IsWall(p core.Point) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.tiles[p.Y][p.X].Wall
}

// Blocked checks if movement between two adjacent tiles is stopped by a
// border wall or the maze bounds. Non-adjacent movement is always blocked.
func (m *Maze) Blocked(from, to core.Point) bool {
	if !m.InBounds(from) || !m.InBounds(to) {
		return true
	}

	t := m.tiles[from.Y][from.X]
	switch {
	case to.Y == from.Y-1 && to.X == from.X:
		return t.wallN
	case to.Y == from.Y+1 && to.X == from.X:
		return t.wallS
	case to.X == from.X-1 && to.Y == from.Y:
		return t.wallW
	case to.X == from.X+1 && to.Y == from.Y:
		return t.wallE
	}
	return true
}

// Step computes the tile reached by moving one cell from p in direction d.
// Moving off a horizontal edge wraps to the opposite edge when both edge
// tiles are open (tunnels). Returns false when the move is blocked.
func (m *Maze) Step(p core.Point, d Direction) (core.Point, bool) {
	dx, dy := d.Delta()
	to := p.Add(dx, dy)

	// Horizontal wrap tunnels
	if to.X < 0 || to.X >= m.width {
		wrapped := core.Point{X: (to.X + m.width) % m.width, Y: to.Y}
		if !m.IsWall(p) && !m.IsWall(wrapped) {
			return wrapped, true
		}
		return p, false
	}

	if m.Blocked(p, to) {
		return p, false
	}
	return to, true
}

// PelletAt reports whether the tile at p holds a pellet, and whether it is
// a power pellet.
func (m *Maze) PelletAt(p core.Point) (has, power bool) {
	if !m.InBounds(p) {
		return false, false
	}
	t := m.tiles[p.Y][p.X]
	return t.Pellet || t.Power, t.Power
}

// EatAt removes a pellet at p. Returns whether anything was eaten and
// whether it was a power pellet.
func (m *Maze) EatAt(p core.Point) (ate, power bool) {
	if !m.InBounds(p) {
		return false, false
	}
	t := &m.tiles[p.Y][p.X]
	if t.Power {
		t.Power = false
		return true, true
	}
	if t.Pellet {
		t.Pellet = false
		return true, false
	}
	return false, false
}

// PelletsRemaining counts all pellets (including power pellets) left.
func (m *Maze) PelletsRemaining() int {
	count := 0
	for y := range m.tiles {
		for x := range m.tiles[y] {
			if m.tiles[y][x].Pellet || m.tiles[y][x].Power {
				count++
			}
		}
	}
	return count
}

// Glyph returns the display rune for the tile at p: an oriented wall glyph,
// a pellet dot, a power pellet, or space.
func (m *Maze) Glyph(p core.Point) rune {
	if !m.InBounds(p) {
		return ' '
	}
	t := m.tiles[p.Y][p.X]
	switch {
	case t.Wall:
		return t.glyph
	case t.Power:
		return '*'
	case t.Pellet:
		return '·'
	default:
		return ' '
	}
}
