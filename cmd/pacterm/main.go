// pacterm is a terminal maze-chase game: eat every pellet, dodge the
// ghosts, grab power pellets to turn the tables.
//
// Usage:
//
//	pacterm play [mode]      - Play classic or endless mode
//	pacterm menu             - Interactive mode picker
//	pacterm list             - List available modes
//	pacterm scores <mode>    - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pacterm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/pacterm/pacterm/internal/games/pacman"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacterm",
	Short: "Pacterm - a maze-chase game in your terminal",
	Long: `Pacterm is a terminal maze-chase game. Guide the muncher through
the maze, eat every pellet, and stay clear of the ghosts. Power pellets
turn the ghosts frightened for a while so you can eat them back.

Available commands:
  list     - Show available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores

Examples:
  pacterm play classic
  pacterm play endless --seed 42
  pacterm menu
  pacterm scores endless`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacterm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
