// runner is a terminal Chrome Dino-style endless runner.
//
// Usage:
//
//	runner play              - Run the game in the terminal
//	runner menu              - Pick a mode interactively
//	runner simulate          - Run headless and print the result
//	runner serve             - Start SSH server for remote spectators
//	runner scores            - Show the high score and run history
//	runner list              - List available modes
//	runner token             - Issue a bearer token for the control API
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible runs
//	--db <path>        - Set database path (default: ~/.runner/runner.db)
//	--config <path>    - Use a custom runner.yaml
//	--log-file <path>  - Log file for interactive commands
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/dino"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dino Runner - an endless runner in your terminal",
	Long: `Dino Runner is a terminal take on the offline browser dinosaur game.

In showcase mode the dinosaur jumps on its own and never loses; in manual
mode you jump and a collision ends the run.

Available commands:
  play     - Run the game
  menu     - Interactive mode picker
  simulate - Headless run for a fixed duration
  serve    - Start SSH server for remote spectators
  scores   - View the high score and run history
  list     - Show all modes
  token    - Issue a control API token

Examples:
  runner play
  runner play --mode manual --pace hard
  runner play --control :8080
  runner simulate --duration 30s
  runner serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadDotEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.runner/runner.log", "Log file for interactive commands")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tokenCmd)
}
