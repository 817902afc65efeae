// Package pacman implements the maze-chase game behind the registry.Game
// interface. Two modes share the same core: "classic" plays a fixed campaign
// of hand-built mazes, "endless" generates a fresh maze after each clear and
// ramps difficulty as the run goes on.
package pacman

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pacterm/pacterm/internal/config"
	"github.com/pacterm/pacterm/internal/core"
	"github.com/pacterm/pacterm/internal/maze"
	"github.com/pacterm/pacterm/internal/registry"
)

// Mode selects the campaign or the generated-maze game.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

const (
	hudHeight       = 2  // Score line plus separator
	levelClearDelay = 90 // Ticks to show the maze-cleared banner
	deathFreeze     = 60 // Ticks the board freezes after losing a life
)

// Package-level settings applied at Reset. Set by the CLI before the
// platform starts the game loop.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset = config.DifficultyNormal
	startLevel       int
)

// SetConfigPath sets a custom config file path for subsequent resets.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset selects the difficulty preset for subsequent resets.
func SetDifficultyPreset(p config.DifficultyPreset) { difficultyPreset = p }

// SetStartLevel selects the starting campaign level (0-based).
func SetStartLevel(level int) { startLevel = level }

// Game holds the full state of one run.
type Game struct {
	mode Mode
	cfg  config.PacmanConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	mz           *maze.Maze
	levelIndex   int
	mazesCleared int

	playerPos core.Point
	dir       maze.Direction
	nextDir   maze.Direction
	moving    bool // False until the first direction input

	ghosts          []*Ghost
	visionRange     int
	frightenedTicks int

	playerEvery  int
	ghostEvery   int
	playerTicker int
	ghostTicker  int

	tick  uint64
	score int
	lives int

	screenW, screenH       int
	mapOffsetX, mapOffsetY int

	gameOver        bool
	won             bool
	paused          bool
	tooSmall        bool
	levelCleared    bool
	levelClearTicks int
	deathTicks      int

	runtime core.RuntimeConfig
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

func (g *Game) ID() string { return string(g.mode) }

func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Pacterm Endless"
	}
	return "Pacterm Classic"
}

func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		cfg = config.DefaultPacmanConfig()
	}
	config.ApplyPacmanPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.diff.SetInitialLevel(config.InitialLevelForPreset(difficultyPreset))
	if config.IsFixedPreset(difficultyPreset) {
		g.diff.SetEnabled(false)
	}

	g.tick = 0
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.mazesCleared = 0
	g.levelIndex = 0
	if g.mode == ModeClassic {
		g.levelIndex = startLevel
	}
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.deathTicks = 0
	g.frightenedTicks = 0

	g.loadLevel()
}

// loadLevel builds the maze for the current level and places everyone.
func (g *Game) loadLevel() {
	if g.mode == ModeClassic {
		lvl := GetLevel(g.levelIndex)
		m, err := maze.Parse(lvl.Layout)
		if err != nil {
			// Campaign layouts are compiled in; a parse failure is a bug.
			panic(fmt.Sprintf("pacman: bad campaign level %q: %v", lvl.Name, err))
		}
		g.mz = m
	} else {
		gen, err := maze.NewGenerator(g.cfg.Generator.Width, g.cfg.Generator.Height)
		if err != nil {
			gen, _ = maze.NewGenerator(maze.MinGeneratorSize, maze.MinGeneratorSize)
		}
		count := g.diff.GhostCount(g.cfg.Ghosts.Count, g.mazesCleared, g.score)
		g.mz = gen.Generate(g.rng, count)
	}

	g.playerPos = g.mz.PlayerStart
	g.moving = false
	g.dir = maze.DirLeft
	g.nextDir = maze.DirLeft

	g.ghosts = g.ghosts[:0]
	for _, spawn := range g.mz.GhostStarts {
		g.ghosts = append(g.ghosts, NewGhost(spawn, g.mz.Width(), g.mz.Height()))
	}

	g.playerEvery = core.Max(1, g.cfg.Player.MoveEveryTicks)
	g.ghostEvery = g.diff.GhostInterval(g.cfg.Ghosts.MoveEveryTicks, g.mazesCleared, g.score)
	g.visionRange = g.diff.VisionRange(g.cfg.Ghosts.VisionRange, g.mazesCleared, g.score)
	g.playerTicker = 0
	g.ghostTicker = 0
	g.frightenedTicks = 0

	g.layoutScreen()
}

// layoutScreen centers the maze and checks that it fits the terminal.
func (g *Game) layoutScreen() {
	needW := g.mz.Width() + 2
	needH := g.mz.Height() + hudHeight + 1
	g.tooSmall = g.screenW < needW || g.screenH < needH
	g.mapOffsetX = core.Max(0, (g.screenW-g.mz.Width())/2)
	g.mapOffsetY = hudHeight + core.Max(0, (g.screenH-hudHeight-g.mz.Height())/2)
}

func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.gameOver || g.won {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return g.result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.deathTicks > 0 {
		g.deathTicks--
		return g.result()
	}

	g.readDirection(in)

	if g.frightenedTicks > 0 {
		g.frightenedTicks--
	}
	for _, gh := range g.ghosts {
		gh.TickRespawn()
	}

	g.playerTicker++
	if g.moving && g.playerTicker >= g.playerEvery {
		g.playerTicker = 0
		g.movePlayer()
		if g.checkCollisions() {
			return g.result()
		}
		if g.mz.PelletsRemaining() == 0 {
			g.levelCleared = true
			g.levelClearTicks = 0
			g.mazesCleared++
			return g.result()
		}
	}

	g.ghostTicker++
	interval := g.ghostEvery
	if g.frightenedTicks > 0 {
		interval = core.Max(interval, g.cfg.Ghosts.FrightenedEveryTicks)
	}
	if g.ghostTicker >= interval {
		g.ghostTicker = 0
		frightened := g.frightenedTicks > 0
		for _, gh := range g.ghosts {
			gh.Move(g.rng, g.mz, g.playerPos, frightened, g.visionRange)
		}
		if g.checkCollisions() {
			return g.result()
		}
	}

	return g.result()
}

// readDirection buffers the most recent direction input. The buffered
// direction is applied on the player's next move tick, so a turn pressed
// slightly early still takes effect at the corner.
func (g *Game) readDirection(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.nextDir = maze.DirUp
	case in.Has(core.ActionDown):
		g.nextDir = maze.DirDown
	case in.Has(core.ActionLeft):
		g.nextDir = maze.DirLeft
	case in.Has(core.ActionRight):
		g.nextDir = maze.DirRight
	default:
		return
	}
	g.moving = true
}

func (g *Game) movePlayer() {
	// Try the buffered turn first, then keep going straight.
	if to, ok := g.mz.Step(g.playerPos, g.nextDir); ok {
		g.dir = g.nextDir
		g.playerPos = to
	} else if to, ok := g.mz.Step(g.playerPos, g.dir); ok {
		g.playerPos = to
	} else {
		return
	}

	if ate, power := g.mz.EatAt(g.playerPos); ate {
		if power {
			g.score += g.cfg.Scoring.PowerPellet
			g.frightenedTicks = g.cfg.Ghosts.FrightenedTicks
		} else {
			g.score += g.cfg.Scoring.Pellet
		}
	}
}

// checkCollisions resolves player/ghost contact. Returns true when the
// contact interrupted normal play (life lost or game over).
func (g *Game) checkCollisions() bool {
	for _, gh := range g.ghosts {
		if gh.Eaten || gh.Pos != g.playerPos {
			continue
		}
		if g.frightenedTicks > 0 {
			g.score += g.cfg.Scoring.Ghost
			gh.MarkEaten(g.cfg.Ghosts.RespawnTicks)
			continue
		}
		g.loseLife()
		return true
	}
	return false
}

func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.gameOver = true
		return
	}
	g.playerPos = g.mz.PlayerStart
	g.moving = false
	g.dir = maze.DirLeft
	g.nextDir = maze.DirLeft
	for _, gh := range g.ghosts {
		gh.ResetPosition()
	}
	g.frightenedTicks = 0
	g.playerTicker = 0
	g.ghostTicker = 0
	g.deathTicks = deathFreeze
}

// advanceLevel moves to the next maze. Classic ends with a win after the
// last campaign level; endless keeps generating.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.levelIndex++
	if g.mode == ModeClassic && g.levelIndex >= LevelCount() {
		g.won = true
		return
	}
	g.loadLevel()
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game { return New(ModeClassic) })
	registry.Register(string(ModeEndless), func() registry.Game { return New(ModeEndless) })
}
