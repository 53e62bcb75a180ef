// Package sokoban models a Sokoban warehouse as a mutable grid board with
// O(1) pull/undo primitives and a canonical reachability hash.
//
// What:
//
//   - Board decodes the digit level format (HHWW header + row-major digits)
//     through either the forward table or the reversed, pull-formulation
//     table (NewReverse), which swaps the goal and box digits.
//   - TileAt layers box and player occupancy over the static floor map;
//     positions outside the grid read as Wall.
//   - MoveBox / UndoMoveBox form an exact apply/revert pair, so search can
//     backtrack without ever snapshotting the board.
//   - Hash folds box cells and the player-reachable region into one value:
//     all player positions inside one region are pull-equivalent.
//
// Why pull instead of push:
//
//	Pushing a box against a wall is unrecoverable; pulling never wedges a
//	box that way. A pull sequence on the reversed board, read backwards, is
//	exactly a valid push sequence on the original puzzle.
//
// Complexity:
//
//   - New/NewReverse/Encode: O(W×H).
//   - TileAt: O(len(Boxes)). MoveBox/UndoMoveBox: O(1) plus one Hash.
//   - Hash/CanReach: O(W×H×len(Boxes)).
//
// Errors:
//
//   - ErrBadHeader: missing or non-numeric height/width fields.
//   - ErrLevelTooShort: body shorter than height×width digits.
//   - ErrBadDigit: digit outside the 0-6 tile range.
//   - ErrOutOfBounds: hypothetical move underflows a coordinate.
package sokoban
