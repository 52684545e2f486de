/*
Package sortvis is a side-by-side sorting visualizer engine.

It runs Bubble Sort and Quick Sort over the same shuffled array and replays each
algorithm one step at a time, so that both animations can be compared as they
progress. The sorts are never animated live: each algorithm first records every
comparison, swap and partition event as a flat list of steps, and a paced runner
then folds those steps into a board's values and overlay.

# Concept

The replay core is deterministic and free of I/O. Given the same input array,
the step list and every intermediate board are always identical. The outside
world (terminal, HTTP, MCP, NDJSON) only sees immutable snapshots pushed through
the ports.Renderer interface. This Hexagonal Architecture allows the engine to be
embedded in any interface.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/sortvis"
		"github.com/aretw0/sortvis/pkg/runner"
	)

	func main() {
		v := sortvis.New(
			sortvis.WithSize(30),
			sortvis.WithSpeed(2),
			sortvis.WithRenderer(runner.NewJSONRenderer(os.Stdout)),
		)

		ctx := context.Background()
		if err := v.Play(ctx); err != nil {
			log.Fatal(err)
		}
		if err := v.Wait(ctx); err != nil {
			log.Fatal(err)
		}
	}
*/
package sortvis
