/*
Package winfrac estimates how often a fixed player wins a two-player graph
game when vertex ownership is assigned at random.

Given one base game (energy, parity, or reachability), every vertex can be
handed to player 0 or player 1, giving 2^n ownership assignments. For each
assignment the specialized game is solved by an external solver process, and
winfrac reports the fraction of assignments won by player 0 from vertex 0,
either exactly (exhaustive enumeration) or estimated from a random sample
with a Hoeffding confidence interval.

# Architecture

The core follows a ports-and-adapters split. pkg/domain holds the game
model and tallies, pkg/ports the Solver, AssignmentSource, and ResultSink
contracts, and internal adapters supply external-process solving, file and
Redis sinks, and exhaustive or sampled assignment sources. A cheap
feasibility analysis gates each run: graphs whose outcome cannot depend on
ownership are refused before any solver is launched.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/winfrac-dev/winfrac"
		"github.com/winfrac-dev/winfrac/pkg/domain"
	)

	func main() {
		est, err := winfrac.Load("game.json", domain.KindEnergy)
		if err != nil {
			log.Fatal(err)
		}

		agg, err := est.Sample(context.Background(), 100000, 42)
		if err != nil {
			log.Fatal(err)
		}

		half := agg.HoeffdingHalfWidth(0.05)
		fmt.Printf("estimate %.4f +/- %.4f (%s)\n", agg.Estimate(), half, agg)
	}

The winfrac command wraps the same pipeline with configuration, logging,
result sinks, and a status endpoint.
*/
package winfrac
