// Package sokobansolver is a single-shot Sokoban satisfiability solver: it
// decides whether an encoded warehouse level is solvable and reports how
// many search steps that took, not a move-by-move trace.
//
// The engine plays the puzzle in pull formulation: the level is re-decoded
// with goal and box markers swapped, boxes are pulled instead of pushed, and
// any pull sequence read backwards is a valid push solution of the original
// puzzle. Pulls never wedge a box against a wall, which removes the classic
// unrecoverable push deadlocks from the search space.
//
// Layout:
//
//	sokoban/     — board model: level codec, composite tiles, pull/undo
//	               primitives, reachability flood fill and canonical hash
//	solver/      — heuristic tables, zone partitioning, and the memoized
//	               depth-first pull search
//	cmd/sokoban/ — thin CLI driver: one level argument in,
//	               "<level>::<elapsed>" or "<level>::notsolved" out
//
// Quick example:
//
//	s, err := solver.New("0706111100102100100111154001100301100111111100")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s.Solve(), s.Steps)
package sokobansolver
