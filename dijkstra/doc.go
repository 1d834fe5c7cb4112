// Package dijkstra provides a uniform-cost search that organizes an
// amphipod burrow with the least total energy.
//
// Overview:
//
//   - Vertices are board.Configurations, compared by their canonical Key.
//   - Edges are the legal single-occupant moves a board.Board reports, each
//     weighted by kind cost × Manhattan distance.
//   - A min-heap keyed by accumulated energy always expands the cheapest
//     known configuration; the first organized one popped is optimal.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: reconstructs the moves of one optimal solution.
//   - MaxEnergy: abandons configurations costlier than a cap.
//   - MoveFilter: forbids chosen moves, for experiments on restricted rules.
//   - Context: optional deadline or cancellation between expansions.
//   - Logger: zerolog Debug progress lines every ProgressEvery expansions.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over the configurations actually reached.
//   - Each configuration is expanded at most once; stale heap entries are skipped.
//   - Space: O(V + E) for the best-energy map and the heap under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilDiagram:
//     Returned if you pass a nil *diagram.Diagram.
//   - ErrNoSolution:
//     Returned if the frontier drains without an organized configuration.
//     Puzzle input is always solvable, so callers should treat it as fatal.
//   - ErrBadMaxEnergy:
//     Panicked by WithMaxEnergy on a negative value.
//   - ErrBadProgress:
//     Panicked by WithProgressEvery on a non-positive value.
//
// API reference:
//
//	func LowestEnergy(d *diagram.Diagram, initial board.Configuration, opts ...Option) (int64, error)
//	func Search(d *diagram.Diagram, initial board.Configuration, opts ...Option) (*Result, error)
//
// Thread safety:
//
//   - A search owns its frontier and best-energy map; the Diagram is read-only,
//     so independent searches may share one Diagram across goroutines.
package dijkstra
