package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/winfrac-dev/winfrac/internal/logging"
	"github.com/winfrac-dev/winfrac/pkg/domain"
)

var rootCmd = &cobra.Command{
	Use:   "winfrac",
	Short: "winfrac estimates winning fractions over ownership assignments",
	Long: `winfrac takes a two-player graph game (energy, parity, or reachability),
enumerates or samples the 2^n ways of assigning its vertices to the players,
solves each resulting game with an external solver, and reports the fraction
of assignments won by player 0 from vertex 0.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("kind", "k", "energy", "Game kind: energy, parity, or reach")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, or error")
}

// gameKind resolves and validates the persistent --kind flag.
func gameKind(cmd *cobra.Command) (domain.Kind, error) {
	raw, _ := cmd.Flags().GetString("kind")
	kind := domain.Kind(raw)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown game kind %q", domain.ErrParameter, raw)
	}
	return kind, nil
}

// newLogger builds the logger configured by the persistent --log-level flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}
