// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play       - Play a game
//	blockfall config     - Print the effective configuration as YAML
//	blockfall shapes     - Show the shape catalog
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file; logs are discarded otherwise
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLogLevel string
	flagLogFile  string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game for your terminal",
	Long: `Blockfall drops pieces into a well. Fill a row to clear it, clear
rows to level up, and keep the stack below the top.

Available commands:
  play     - Play a game
  config   - Print the effective configuration
  shapes   - Show the shape catalog

Examples:
  blockfall play
  blockfall play --difficulty hard --seed 42
  blockfall play --shapes standard
  blockfall config --difficulty easy > ~/.blockfall/configs/blockfall.yaml
  blockfall shapes`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shapesCmd)
}

// newLogger builds the process logger. The returned closer releases the
// log file, if any.
func newLogger(level, path string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           lvl,
	})
	return logger, closer, nil
}
