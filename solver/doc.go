// Package solver decides Sokoban satisfiability with a heuristic-pruned
// depth-first search over box pulls.
//
// What:
//
//   - New builds two boards from one level: the forward board seeds per-box
//     relaxed BFS distance tables and records the original player cell; the
//     reversed board (goal and box digits swapped) is the one searched.
//   - PlayerZones picks one start candidate per connected floor region that
//     touches a box, so split boards get every viable starting region tried.
//   - Solve runs the recursive pull search: rotated box/goal cursors,
//     direction ring from the previous pull, depth-aware memoization on the
//     canonical state hash, strict undo-based backtracking, and a
//     wall-stuck branch cut.
//
// The result is satisfiability plus a step counter, not a move trace.
//
// Complexity:
//
//   - Heuristic tables: O(len(Boxes)×W×H).
//   - Search: exponential in the worst case; the hash memo bounds expansion
//     to distinct (box set, reachable region) states per depth.
//
// Options:
//
//   - WithCostLimit(c): prune once cost + heuristic bound exceeds c.
//   - WithLogger(l): custom diagnostics logger.
//
// Errors:
//
//   - ErrNoPlayer: level contains no player cell.
//   - ErrOptionViolation: invalid option supplied.
//   - any sokoban decoding error, unchanged.
package solver
