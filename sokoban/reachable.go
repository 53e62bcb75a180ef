package sokoban

import "hash/fnv"

// initReachable builds the width×height byte matrix, indexed [x][y], seeded
// with each box's composite kind value at its cell. Box cells are never
// movable, so the flood fill below leaves the seeds intact and they act as
// distinguishing markers in the hashed matrix.
func (b *Board) initReachable() [][]byte {
	reachable := make([][]byte, b.Width)
	for x := 0; x < b.Width; x++ {
		reachable[x] = make([]byte, b.Height)
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if tile := b.TileAt(Position{X: x, Y: y}); tile.IsBox() {
				reachable[x][y] = byte(tile)
			}
		}
	}
	return reachable
}

// floodReachable marks every cell the player can walk to from cur without
// displacing a box, writing 1 into the matrix. Out-of-range cells read as
// Wall and terminate the recursion.
func (b *Board) floodReachable(cur Position, reachable [][]byte) {
	if cur.X < 0 || cur.X >= b.Width || cur.Y < 0 || cur.Y >= b.Height {
		return
	}
	if reachable[cur.X][cur.Y] == 1 {
		return
	}
	if !b.TileAt(cur).CanMove() {
		return
	}
	reachable[cur.X][cur.Y] = 1
	for _, adj := range b.Neighbors(cur) {
		b.floodReachable(adj, reachable)
	}
}

// Hash folds the box cells and the player-reachable region into one
// canonical value: two boards hash equal iff they have the same box-occupied
// cells and the same reachable region, regardless of where inside that
// region the player stands. Rebuilds the reachability matrix as a side
// effect. Complexity: O(W×H×len(Boxes)).
func (b *Board) Hash() uint64 {
	reachable := b.initReachable()
	if b.hasPlayer {
		b.floodReachable(b.player, reachable)
	}
	b.reachable = reachable

	h := fnv.New64a()
	for x := 0; x < b.Width; x++ {
		_, _ = h.Write(reachable[x])
	}
	return h.Sum64()
}

// CanReach reports whether the player can walk to pos without displacing a
// box. Recomputes the reachability matrix from the current player cell.
func (b *Board) CanReach(pos Position) bool {
	b.Hash()
	if pos.X < 0 || pos.X >= b.Width || pos.Y < 0 || pos.Y >= b.Height {
		return false
	}
	return b.reachable[pos.X][pos.Y] == 1
}
