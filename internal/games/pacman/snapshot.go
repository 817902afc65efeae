package pacman

import "github.com/pacterm/pacterm/internal/maze"

// GameStateType summarizes which phase the game is in.
type GameStateType int

const (
	StatePlaying GameStateType = iota
	StatePaused
	StateLevelCleared
	StateGameOver
	StateWon
)

// GhostSnapshot captures one ghost's observable state.
type GhostSnapshot struct {
	X, Y  int
	Eaten bool
}

// Snapshot captures the observable game state at one tick. Used for
// deterministic replay checks in tests.
type Snapshot struct {
	Tick            uint64
	Mode            Mode
	LevelIndex      int
	MazesCleared    int
	Score           int
	Lives           int
	PlayerX         int
	PlayerY         int
	Dir             maze.Direction
	PelletsLeft     int
	FrightenedTicks int
	Ghosts          []GhostSnapshot
	State           GameStateType
}

// Snapshot returns a copy of the current observable state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:            g.tick,
		Mode:            g.mode,
		LevelIndex:      g.levelIndex,
		MazesCleared:    g.mazesCleared,
		Score:           g.score,
		Lives:           g.lives,
		PlayerX:         g.playerPos.X,
		PlayerY:         g.playerPos.Y,
		Dir:             g.dir,
		PelletsLeft:     g.mz.PelletsRemaining(),
		FrightenedTicks: g.frightenedTicks,
		State:           StatePlaying,
	}
	for _, gh := range g.ghosts {
		s.Ghosts = append(s.Ghosts, GhostSnapshot{X: gh.Pos.X, Y: gh.Pos.Y, Eaten: gh.Eaten})
	}
	switch {
	case g.won:
		s.State = StateWon
	case g.gameOver:
		s.State = StateGameOver
	case g.levelCleared:
		s.State = StateLevelCleared
	case g.paused:
		s.State = StatePaused
	}
	return s
}
