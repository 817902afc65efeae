package pacman

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pacterm/pacterm/internal/config"
	"github.com/pacterm/pacterm/internal/core"
	"github.com/pacterm/pacterm/internal/maze"
)

func newTestGame(t *testing.T, mode Mode, seed int64) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset(config.DifficultyNormal)
	SetStartLevel(0)
	g := New(mode)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("State = %v, want StatePlaying", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, want 0", snap.Score)
	}
	if snap.Lives != g.cfg.Gameplay.Lives {
		t.Errorf("Lives = %d, want %d", snap.Lives, g.cfg.Gameplay.Lives)
	}
	if want := (core.Point{X: 1, Y: 6}); g.playerPos != want {
		t.Errorf("playerPos = %v, want %v", g.playerPos, want)
	}
	if len(g.ghosts) != 2 {
		t.Errorf("ghost count = %d, want 2", len(g.ghosts))
	}
	if snap.PelletsLeft == 0 {
		t.Error("PelletsLeft = 0, want pellets on a fresh maze")
	}
}

func TestPlayerMovesOnCadence(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	start := g.playerPos

	// One tick short of the move interval: still in place.
	for i := 0; i < g.playerEvery-1; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.playerPos != start {
		t.Fatalf("player moved after %d ticks, interval is %d", g.playerEvery-1, g.playerEvery)
	}

	g.Step(frame(core.ActionRight))
	if want := start.Add(1, 0); g.playerPos != want {
		t.Errorf("playerPos = %v, want %v", g.playerPos, want)
	}
}

func TestPlayerIdleUntilFirstInput(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	start := g.playerPos

	for i := 0; i < g.playerEvery*3; i++ {
		g.Step(frame())
	}
	if g.playerPos != start {
		t.Errorf("player drifted to %v without input", g.playerPos)
	}
}

func TestPelletScoring(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	for i := 0; i < g.playerEvery; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.score != g.cfg.Scoring.Pellet {
		t.Errorf("score = %d, want %d after eating one pellet", g.score, g.cfg.Scoring.Pellet)
	}

	// The tile is empty now; passing over it again scores nothing.
	if ate, _ := g.mz.PelletAt(g.playerPos); ate {
		t.Error("pellet still present after being eaten")
	}
}

func TestPowerPelletFrightensGhosts(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	g.playerPos = core.Point{X: 9, Y: 6} // Next to the power pellet at (10,6)

	for i := 0; i < g.playerEvery; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.score != g.cfg.Scoring.PowerPellet {
		t.Errorf("score = %d, want %d after power pellet", g.score, g.cfg.Scoring.PowerPellet)
	}
	if g.frightenedTicks != g.cfg.Ghosts.FrightenedTicks {
		t.Errorf("frightenedTicks = %d, want %d", g.frightenedTicks, g.cfg.Ghosts.FrightenedTicks)
	}

	g.Step(frame())
	if g.frightenedTicks != g.cfg.Ghosts.FrightenedTicks-1 {
		t.Errorf("frightenedTicks = %d, want countdown by one per tick", g.frightenedTicks)
	}
}

func TestEatingFrightenedGhost(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	g.frightenedTicks = 100
	gh := g.ghosts[0]
	gh.Pos = g.playerPos

	if interrupted := g.checkCollisions(); interrupted {
		t.Error("eating a frightened ghost should not interrupt play")
	}
	if g.score != g.cfg.Scoring.Ghost {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Scoring.Ghost)
	}
	if !gh.Eaten {
		t.Error("ghost not marked eaten")
	}
	if gh.Pos != gh.Spawn {
		t.Errorf("eaten ghost at %v, want spawn %v", gh.Pos, gh.Spawn)
	}
	if gh.RespawnTicks != g.cfg.Ghosts.RespawnTicks {
		t.Errorf("RespawnTicks = %d, want %d", gh.RespawnTicks, g.cfg.Ghosts.RespawnTicks)
	}
}

func TestGhostContactCostsLife(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	startLives := g.lives
	g.ghosts[0].Pos = g.playerPos

	if interrupted := g.checkCollisions(); !interrupted {
		t.Fatal("ghost contact should interrupt play")
	}
	if g.lives != startLives-1 {
		t.Errorf("lives = %d, want %d", g.lives, startLives-1)
	}
	if g.gameOver {
		t.Error("game over with lives remaining")
	}
	if g.deathTicks != deathFreeze {
		t.Errorf("deathTicks = %d, want %d", g.deathTicks, deathFreeze)
	}
	if g.ghosts[0].Pos != g.ghosts[0].Spawn {
		t.Error("ghost not returned to spawn after contact")
	}

	// The board freezes while the death timer runs.
	g.Step(frame(core.ActionRight))
	if g.deathTicks != deathFreeze-1 {
		t.Errorf("deathTicks = %d after one tick, want %d", g.deathTicks, deathFreeze-1)
	}
	if g.moving {
		t.Error("player moving during death freeze")
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	g.lives = 1
	g.ghosts[0].Pos = g.playerPos

	g.checkCollisions()
	if !g.gameOver {
		t.Fatal("game not over after losing the last life")
	}
	if st := g.State(); !st.GameOver {
		t.Error("State().GameOver = false")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	g.score = 500
	g.lives = 0
	g.gameOver = true

	g.Step(frame(core.ActionRestart))
	if g.gameOver {
		t.Fatal("still game over after restart")
	}
	if g.score != 0 || g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("score = %d, lives = %d after restart, want fresh run", g.score, g.lives)
	}
}

func TestLevelClearAdvancesCampaign(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	// Leave a single pellet next to the spawn and walk onto it.
	last := core.Point{X: 2, Y: 6}
	for y := 0; y < g.mz.Height(); y++ {
		for x := 0; x < g.mz.Width(); x++ {
			p := core.Point{X: x, Y: y}
			if p != last {
				g.mz.EatAt(p)
			}
		}
	}
	for i := 0; i < g.playerEvery; i++ {
		g.Step(frame(core.ActionRight))
	}

	if snap := g.Snapshot(); snap.State != StateLevelCleared {
		t.Fatalf("State = %v, want StateLevelCleared", snap.State)
	}
	if g.mazesCleared != 1 {
		t.Errorf("mazesCleared = %d, want 1", g.mazesCleared)
	}

	for i := 0; i < levelClearDelay; i++ {
		g.Step(frame())
	}
	if g.levelIndex != 1 {
		t.Errorf("levelIndex = %d, want 1 after banner", g.levelIndex)
	}
	if snap := g.Snapshot(); snap.State != StatePlaying {
		t.Errorf("State = %v, want StatePlaying on the next maze", snap.State)
	}
	if g.mz.PelletsRemaining() == 0 {
		t.Error("next maze has no pellets")
	}
}

func TestCampaignWin(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	g.levelIndex = LevelCount() - 1
	g.levelCleared = true

	for i := 0; i < levelClearDelay; i++ {
		g.Step(frame())
	}
	if !g.won {
		t.Fatal("not won after clearing the last campaign level")
	}
	if snap := g.Snapshot(); snap.State != StateWon {
		t.Errorf("State = %v, want StateWon", snap.State)
	}

	g.Step(frame(core.ActionRestart))
	if g.won || g.levelIndex != 0 {
		t.Error("restart after win did not reset the campaign")
	}
}

func TestEndlessRegeneratesMaze(t *testing.T) {
	g := newTestGame(t, ModeEndless, 42)
	first := g.mz
	g.levelCleared = true
	g.mazesCleared = 1

	for i := 0; i < levelClearDelay; i++ {
		g.Step(frame())
	}
	if g.mz == first {
		t.Fatal("endless mode did not generate a new maze")
	}
	if g.mz.PelletsRemaining() == 0 {
		t.Error("generated maze has no pellets")
	}
	if len(g.ghosts) < g.cfg.Ghosts.Count {
		t.Errorf("ghost count = %d, want at least %d", len(g.ghosts), g.cfg.Ghosts.Count)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)

	g.Step(frame(core.ActionPause))
	if snap := g.Snapshot(); snap.State != StatePaused {
		t.Fatalf("State = %v, want StatePaused", snap.State)
	}

	// Nothing advances while paused.
	before := g.playerTicker
	g.Step(frame(core.ActionRight))
	if g.playerTicker != before {
		t.Error("tickers advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if snap := g.Snapshot(); snap.State != StatePlaying {
		t.Errorf("State = %v, want StatePlaying after unpause", snap.State)
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i%31 == 0:
			return frame(core.ActionUp)
		case i%17 == 0:
			return frame(core.ActionLeft)
		case i%13 == 0:
			return frame(core.ActionDown)
		case i%7 == 0:
			return frame(core.ActionRight)
		default:
			return frame()
		}
	}

	g1 := newTestGame(t, ModeEndless, 99)
	g2 := newTestGame(t, ModeEndless, 99)

	for i := 0; i < 600; i++ {
		g1.Step(script(i))
		g2.Step(script(i))
		if i%100 == 0 {
			s1, s2 := g1.Snapshot(), g2.Snapshot()
			if !reflect.DeepEqual(s1, s2) {
				t.Fatalf("snapshots diverged at tick %d:\n%+v\n%+v", i, s1, s2)
			}
		}
	}
}

func TestCampaignLevelsAreValid(t *testing.T) {
	for i := 0; i < LevelCount(); i++ {
		lvl := GetLevel(i)
		t.Run(lvl.Name, func(t *testing.T) {
			m, err := maze.Parse(lvl.Layout)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if m.PlayerStart.X < 0 {
				t.Fatal("no player spawn")
			}
			if len(m.GhostStarts) == 0 {
				t.Fatal("no ghost spawns")
			}

			// Flood fill from the player spawn; every pellet and every
			// ghost spawn must be reachable.
			visited := map[core.Point]bool{m.PlayerStart: true}
			queue := []core.Point{m.PlayerStart}
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				for _, d := range maze.Directions {
					if to, ok := m.Step(p, d); ok && !visited[to] {
						visited[to] = true
						queue = append(queue, to)
					}
				}
			}

			powerCount := 0
			for y := 0; y < m.Height(); y++ {
				for x := 0; x < m.Width(); x++ {
					p := core.Point{X: x, Y: y}
					has, power := m.PelletAt(p)
					if !has {
						continue
					}
					if power {
						powerCount++
					}
					if !visited[p] {
						t.Errorf("pellet at %v unreachable from player spawn", p)
					}
				}
			}
			if powerCount == 0 {
				t.Error("level has no power pellets")
			}
			for _, gs := range m.GhostStarts {
				if !visited[gs] {
					t.Errorf("ghost spawn %v unreachable from player spawn", gs)
				}
			}
		})
	}
}

func TestPowerCountdownUsesTickRate(t *testing.T) {
	SetConfigPath("")
	SetDifficultyPreset(config.DifficultyNormal)
	SetStartLevel(0)
	g := New(ModeClassic)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})

	// 90 ticks at 30 ticks per second is 3 seconds.
	g.frightenedTicks = 90
	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.Row(0), "POWER 3") {
		t.Errorf("HUD row = %q, want countdown of 3 seconds at 30 ticks/s", s.Row(0))
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, ModeClassic, 1)
	s := core.NewScreen(80, 24)

	g.Render(s)
	if !strings.Contains(s.Row(0), "Score:") {
		t.Errorf("HUD row = %q, want score display", s.Row(0))
	}
	if !strings.Contains(s.String(), string(playerRune(g.dir, g.moving))) {
		t.Error("player glyph missing from rendered screen")
	}
}
