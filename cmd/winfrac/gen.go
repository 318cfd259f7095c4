package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"github.com/winfrac-dev/winfrac/internal/generate"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate random game instances",
	Long: `Generates a batch of random games of the configured kind. Energy games are
written as JSON, parity and reachability games as digraph files. The same
seed reproduces the same batch.`,
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringP("output-dir", "o", "", "Output directory for generated games")
	genCmd.Flags().IntP("count", "n", 10, "Number of games to generate")
	genCmd.Flags().IntP("vertices", "v", 10, "Number of vertices per game")
	genCmd.Flags().Int("max-weight", 5, "Maximum absolute edge weight for energy games")
	genCmd.Flags().Int("max-priority", 5, "Maximum vertex priority for parity games")
	genCmd.Flags().Int("min-out-degree", 1, "Minimum out-degree for each vertex")
	genCmd.Flags().Int("max-out-degree", 0, "Maximum out-degree for each vertex (default: vertices-1)")
	genCmd.Flags().Int64P("seed", "s", 0, "Random seed (default: random)")
	genCmd.Flags().Bool("verbose", false, "Show each generated file")
	_ = genCmd.MarkFlagRequired("output-dir")
}

func runGen(cmd *cobra.Command, args []string) error {
	kind, err := gameKind(cmd)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("output-dir")
	count, _ := cmd.Flags().GetInt("count")
	verbose, _ := cmd.Flags().GetBool("verbose")

	params := generate.Params{}
	params.Vertices, _ = cmd.Flags().GetInt("vertices")
	params.MaxWeight, _ = cmd.Flags().GetInt("max-weight")
	params.MaxPriority, _ = cmd.Flags().GetInt("max-priority")
	params.MinOutDegree, _ = cmd.Flags().GetInt("min-out-degree")
	params.MaxOutDegree, _ = cmd.Flags().GetInt("max-out-degree")

	seed, _ := cmd.Flags().GetInt64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = rand.Int63()
	}

	if verbose {
		fmt.Printf("Generating %d %s games with %d vertices each\n", count, kind, params.Vertices)
		fmt.Printf("Random seed: %d\n", seed)
		fmt.Printf("Output directory: %s\n\n", dir)
	}

	paths, err := generate.WriteBatch(dir, kind, count, params, seed, newLogger(cmd))
	if err != nil {
		return err
	}

	if verbose {
		for _, path := range paths {
			fmt.Printf("Generated: %s\n", path)
		}
		fmt.Println()
	}
	fmt.Printf("Successfully generated %d %s games\n", len(paths), kind)
	return nil
}
