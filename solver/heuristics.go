package solver

import "github.com/hassek/SokobanSolver/sokoban"

// buildHeuristics runs one relaxed BFS per box of the forward board, seeded
// at that box's starting cell. The tables give a lower-bound pull distance
// for every floor cell, ignoring box-box collisions.
func buildHeuristics(forward *sokoban.Board) map[int]map[sokoban.Position]int {
	heuristics := make(map[int]map[sokoban.Position]int, len(forward.Boxes))
	for i := range forward.Boxes {
		heuristics[i] = heuristicBFS(forward, forward.Boxes[i])
	}
	return heuristics
}

// heuristicBFS computes hop distances from seed to every cell reachable
// through non-Wall tiles. Boxes and the player are not obstacles here, so
// the distances are a relaxation: true pull counts can only be larger.
// Cells sealed off by walls are absent from the result.
//
// Complexity: O(W×H) time and memory.
func heuristicBFS(b *sokoban.Board, seed sokoban.Position) map[sokoban.Position]int {
	dist := map[sokoban.Position]int{seed: 0}
	seen := map[sokoban.Position]bool{seed: true}
	queue := []sokoban.Position{seed}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, adj := range b.Neighbors(cur) {
			if seen[adj] {
				continue
			}
			seen[adj] = true
			if b.TileAt(adj) == sokoban.Wall {
				continue
			}
			dist[adj] = dist[cur] + 1
			queue = append(queue, adj)
		}
	}
	return dist
}

// Heuristic returns the lower-bound distance for pairing box boxIndex with
// goal goalIndex of the searched board. The second result is false when the
// goal cell was never reached by that box's BFS; the pairing must then be
// skipped.
func (s *Solver) Heuristic(goalIndex, boxIndex int) (int, bool) {
	d, ok := s.heuristics[boxIndex][s.board.Goals[goalIndex]]
	return d, ok
}
