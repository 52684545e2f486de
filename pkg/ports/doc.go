/*
Package ports defines the driven ports (interfaces) of the sorting visualizer.

These interfaces decouple the replay core from external implementations, allowing
the engine to work with various step caches and any number of UI bindings.

# Key Interfaces

  - Replayer: Stateless step building and full replays, used by the HTTP and MCP adapters.
  - StepCache: Memoizes step lists keyed by algorithm and input (Memory or Redis).
  - Renderer: The render callback a UI binding implements to draw board snapshots.
*/
package ports
