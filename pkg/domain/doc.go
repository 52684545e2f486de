/*
Package domain contains the core data model of the sorting visualizer.

It defines the Step sum type emitted by the step builders, the Board replayed by
the engine, and the snapshots and lifecycle events handed to the outside world.
This package is kept pure and free of external dependencies like I/O, timers or
rendering handles.

# Key Entities

  - Step: One atomic fact about a sort's progress (Compare, Swap, Pivot, Range, Boundary, marks).
  - Board: Replay state for one algorithm (values, identity labels, steps, cursor, overlay).
  - Overlay: The visual annotations derived by folding steps.
  - Snapshot: A deep copy of a Board's visible state, safe to hand to renderers.
*/
package domain
