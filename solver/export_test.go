package solver

// Export private helpers for white-box tests.
var (
	HeuristicBFS  = heuristicBFS
	ShouldCutTree = (*Solver).shouldCutTree
)
