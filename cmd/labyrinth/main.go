// Command labyrinth runs the Treasure Labyrinth text adventure.
// Usage: labyrinth [--world <dir>] [--config <file>] [--plain] [--script <file>] [--trace]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	worldDir   string
	scriptFile string
	plain      bool
	trace      bool
	logFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "Treasure Labyrinth text adventure",
	Long: `Explore a small labyrinth of rooms, solve riddles and open the treasure chest.
Without --world the built-in labyrinth is played.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML config file")
	f.StringVar(&worldDir, "world", "", "directory of Lua world files (default: built-in labyrinth)")
	f.StringVar(&scriptFile, "script", "", "play commands from a file, echoing each one")
	f.BoolVar(&plain, "plain", false, "use the line-oriented CLI instead of the terminal UI")
	f.BoolVar(&trace, "trace", false, "print the events of every turn")
	f.StringVar(&logFile, "log-file", "", "write logs to this file")
	f.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}
