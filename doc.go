// Package gridastar is a small toolkit for shortest-path queries on 2D
// occupancy grids: free cells, blocked cells, and A* between them.
//
// What is in here?
//
//	gridgraph/   — GridGraph, Position, bounds/obstacle tests, Conn8 move order, regions
//	astar/       — FindPath and Search: A* with 8-directional moves
//	scenario/    — HCL scenario files: a grid plus named searches and expectations
//	cmd/gridastar — command-line runner for scenario files
//	examples/    — runnable demo on a warehouse-style floor plan
//
// Why gridastar?
//
//   - Deterministic – fixed move order and (f, row, col) tie-breaking
//   - Honest failures – ErrNoPath for unreachable goals, never a panic
//   - Pure Go library packages – the HCL stack is only used by scenario/
//
// Quick ASCII example (S start, G goal, # wall, * path):
//
//	S * . #
//	# # * #
//	. . . G
//
//	go get github.com/katalvlaran/gridastar
package gridastar
