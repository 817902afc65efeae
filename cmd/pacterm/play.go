package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pacterm/pacterm/internal/config"
	"github.com/pacterm/pacterm/internal/core"
	"github.com/pacterm/pacterm/internal/games/pacman"
	"github.com/pacterm/pacterm/internal/platform/tui"
	"github.com/pacterm/pacterm/internal/registry"
	"github.com/pacterm/pacterm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode. With no mode argument the classic
campaign setup menu is shown.

Controls:
  Arrows/WASD - Steer
  P           - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  pacterm play classic
  pacterm play classic --level 3
  pacterm play endless --difficulty hard
  pacterm play endless --config ./my-pacman.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting campaign level (1-based, classic only)")
}

// terminalSize returns the terminal dimensions, with sane defaults when
// stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// applyGameFlags pushes CLI flags into the game package before creation.
func applyGameFlags() {
	pacman.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		pacman.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))
	}
	if flagLevel > 0 {
		pacman.SetStartLevel(flagLevel - 1)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
	}

	if gameID != "" && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacterm list' to see available modes.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameFlags()

	// No explicit mode, or classic without a level flag: show the
	// campaign setup menu.
	if gameID == "" || (gameID == string(pacman.ModeClassic) && flagLevel == 0 && flagDifficulty == "") {
		if gameID == "" {
			gameID = string(pacman.ModeClassic)
		}
		selection, updatedCfg, selErr := tui.RunClassicMenu(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		pacman.SetDifficultyPreset(selection.Difficulty)
		if selection.Level > 0 {
			pacman.SetStartLevel(selection.Level - 1)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
