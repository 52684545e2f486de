/*
Package runner implements the playback loop of the sorting visualizer.

It acts as the bridge between the replay engine and the outside world: it owns
one tick handle per board, paces them from the speed setting, and pushes
snapshots to a pluggable ports.Renderer after every change.

# Key Components

  - Runner: Owns the boards and their tickers; Play, Pause, SetSpeed, Shuffle, Resize.
  - TickerFactory: Abstracts time. NewTimeTicker for real runs, ManualClock for tests.
  - JSONRenderer: Streams snapshots as JSON lines.
  - Controls: Maps single key presses to runner commands.
  - SignalManager: Turns SIGINT/SIGTERM into context cancellation.

# Usage

	r := runner.NewRunner(
		runner.WithSize(30),
		runner.WithRenderer(runner.NewJSONRenderer(os.Stdout)),
	)

	if err := r.Play(ctx); err != nil {
		log.Fatal(err)
	}
	_ = r.Wait(ctx)
*/
package runner
