package solver

import "github.com/hassek/SokobanSolver/sokoban"

// PlayerZones partitions the searched board's walkable cells into maximal
// connected regions (boxes block the flood) and returns one candidate
// player-start cell per region that touches at least one box. Regions with
// no box in reach are dropped: the player could never affect the puzzle
// from there.
//
// The representative is the last cell dequeued during the region's flood;
// any cell of a region is pull-equivalent for the first move.
//
// Complexity: O(W×H×len(Boxes)).
func (s *Solver) PlayerZones() []sokoban.Position {
	b := s.board
	unvisited := make(map[sokoban.Position]bool, b.Width*b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			unvisited[sokoban.Position{X: x, Y: y}] = true
		}
	}

	// First flood seeds from the first plain Empty cell in row-major order.
	var queue []sokoban.Position
	if seed, ok := scanBoard(b, func(t sokoban.Tile) bool { return t == sokoban.Empty }, unvisited); ok {
		queue = append(queue, seed)
	}
	s.opts.Logger.Debugf("zones%s", b)

	var zones []sokoban.Position
	for {
		hasBox := false
		var last sokoban.Position
		dequeued := false
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			delete(unvisited, cur)
			for _, adj := range b.Neighbors(cur) {
				tile := b.TileAt(adj)
				if tile.IsBox() {
					s.opts.Logger.Debugf("found box %s %s", adj, tile)
					hasBox = true
				}
				if !unvisited[adj] {
					continue
				}
				delete(unvisited, adj)
				if tile.CanMove() {
					queue = append(queue, adj)
				}
			}
			last, dequeued = cur, true
		}

		if hasBox && dequeued {
			s.opts.Logger.Debugf("found start candidate %s", last)
			zones = append(zones, last)
		}
		if len(unvisited) == 0 {
			break
		}

		// Seed the next flood from any remaining movable cell.
		seed, ok := scanBoard(b, sokoban.Tile.CanMove, unvisited)
		if !ok {
			break
		}
		queue = append(queue, seed)
	}
	return zones
}

// scanBoard returns the first cell of b, in row-major order, that is still
// in remaining and whose composite tile satisfies pred.
func scanBoard(b *sokoban.Board, pred func(sokoban.Tile) bool, remaining map[sokoban.Position]bool) (sokoban.Position, bool) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			pos := sokoban.Position{X: x, Y: y}
			if remaining[pos] && pred(b.TileAt(pos)) {
				return pos, true
			}
		}
	}
	return sokoban.Position{}, false
}
