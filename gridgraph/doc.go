// Package gridgraph treats a 2D grid of cells as a graph of free and
// blocked positions, the input model for grid pathfinding.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable BlockedValue.
//   - Position is a (Row, Col) value key, comparable and ordered lexicographically.
//   - Conn8Offsets fixes the neighbor iteration order used by searches.
//   - Regions labels connected components ("regions") of passable cells.
//
// Why:
//
//   - Game maps and floor plans: walls, corridors, doors.
//   - Robotics occupancy grids: free vs. occupied cells.
//   - Fast reachability checks before running a full search.
//
// Complexity:
//
//   - NewGridGraph: O(R×C), Memory: O(R×C) (deep copy).
//   - InBounds, Blocked, Passable: O(1).
//   - Regions, RegionIndex: O(R×C×d), Memory: O(R×C)  (d = 4 or 8).
//
// Options:
//
//   - GridOptions.BlockedValue: the cell value that marks an obstacle.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
