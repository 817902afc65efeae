package pacman

import (
	"fmt"
	"strings"

	"github.com/pacterm/pacterm/internal/core"
	"github.com/pacterm/pacterm/internal/maze"
)

// Player and ghost display runes. The player glyph's opening faces the
// travel direction; ghosts cycle through a small palette so they are easy
// to tell apart.
const (
	runeGhost      = 'M'
	runeFrightened = 'm'
	runePellet     = '·'
	runePower      = '*'
)

var ghostColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
}

func playerRune(d maze.Direction, moving bool) rune {
	if !moving {
		return 'C'
	}
	switch d {
	case maze.DirUp:
		return 'v'
	case maze.DirDown:
		return '^'
	case maze.DirLeft:
		return '>'
	default:
		return '<'
	}
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderMaze(dst)
	g.renderGhosts(dst)

	px := g.mapOffsetX + g.playerPos.X
	py := g.mapOffsetY + g.playerPos.Y
	dst.SetCell(px, py, playerRune(g.dir, g.moving), core.ColorBrightYellow)

	switch {
	case g.won:
		g.renderBanner(dst, " YOU WIN! ", fmt.Sprintf(" Final score: %d - press R to play again ", g.score))
	case g.gameOver:
		g.renderBanner(dst, " GAME OVER ", fmt.Sprintf(" Score: %d - press R to restart ", g.score))
	case g.levelCleared:
		g.renderBanner(dst, " MAZE CLEARED! ", fmt.Sprintf(" %d down, get ready... ", g.mazesCleared))
	case g.paused:
		g.renderBanner(dst, " PAUSED ", " press P to resume ")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hearts := strings.Repeat("♥ ", core.Max(0, g.lives))
	label := g.levelLabel()
	line := fmt.Sprintf(" Score: %d   Lives: %s  %s", g.score, hearts, label)
	dst.DrawText(0, 0, line)

	if g.frightenedTicks > 0 {
		// Round the countdown up to whole seconds at the runtime tick rate.
		rate := core.Max(1, g.runtime.TickRate)
		power := fmt.Sprintf("POWER %d ", (g.frightenedTicks+rate-1)/rate)
		dst.DrawTextColored(core.Max(0, g.screenW-len(power)), 0, power, core.ColorBrightBlue)
	}

	dst.DrawHLine(0, 1, g.screenW, '─')
}

func (g *Game) levelLabel() string {
	if g.mode == ModeEndless {
		return fmt.Sprintf("Maze %d", g.levelIndex+1)
	}
	lvl := GetLevel(g.levelIndex)
	return fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, LevelCount(), lvl.Name)
}

func (g *Game) renderMaze(dst *core.Screen) {
	for y := 0; y < g.mz.Height(); y++ {
		for x := 0; x < g.mz.Width(); x++ {
			p := core.Point{X: x, Y: y}
			r := g.mz.Glyph(p)
			if r == ' ' {
				continue
			}
			var c core.Color
			switch r {
			case runePellet:
				c = core.ColorWhite
			case runePower:
				c = core.ColorBrightYellow
			default:
				c = core.ColorBlue
			}
			dst.SetCell(g.mapOffsetX+x, g.mapOffsetY+y, r, c)
		}
	}
}

func (g *Game) renderGhosts(dst *core.Screen) {
	for i, gh := range g.ghosts {
		if gh.Eaten {
			continue
		}
		r := runeGhost
		c := ghostColors[i%len(ghostColors)]
		if g.frightenedTicks > 0 {
			r = runeFrightened
			c = core.ColorBrightBlue
			// Blink while the power pellet is wearing off
			if g.frightenedTicks < 120 && (g.frightenedTicks/15)%2 == 0 {
				c = core.ColorWhite
			}
		}
		dst.SetCell(g.mapOffsetX+gh.Pos.X, g.mapOffsetY+gh.Pos.Y, r, c)
	}
}

func (g *Game) renderBanner(dst *core.Screen, title, subtitle string) {
	w := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	h := 5
	x := core.Max(0, (g.screenW-w)/2)
	y := core.Max(0, (g.screenH-h)/2)

	box := core.NewRect(x, y, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH/2-1, "Terminal too small")
	needW := g.mz.Width() + 2
	needH := g.mz.Height() + hudHeight + 1
	dst.DrawTextCentered(g.screenH/2+1, fmt.Sprintf("need at least %dx%d", needW, needH))
}
