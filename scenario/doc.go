// Package scenario loads grid pathfinding scenarios from HCL files and runs
// them through astar.
//
// A scenario file holds one grid block and any number of named search blocks:
//
//	grid {
//	  blocked = 1              # optional, default 1
//	  rows = [
//	    "0000",
//	    "1101",
//	  ]
//	  # or: rows = [[0, 0, 0, 0], [1, 1, 0, 1]]
//	}
//
//	search "corner" {
//	  start   = [0, 0]
//	  goal    = [0, 3]
//	  reverse = true           # optional, cell after start first
//	  expect  = [[0, 1], [0, 2], [0, 3]]   # optional
//	}
//
//	search "sealed" {
//	  start       = [0, 0]
//	  goal        = [1, 0]
//	  expect_none = true       # optional, goal must be unreachable
//	}
//
// Row strings use one character per cell: a digit is the cell value, '#' is
// the blocked value and '.' is a free cell (0, or 1 when blocked = 0).
// Numeric rows are taken as-is.
//
// Errors:
//
//   - ErrNoGrid:        the file has no grid block.
//   - ErrBadRow:        a row is neither a string nor a list of integers.
//   - ErrBadPosition:   start, goal or an expected cell is not a [row, col] pair.
//   - ErrExpectConflict: a search sets both expect and expect_none.
//
// HCL syntax and decode diagnostics are returned wrapped, so their file
// positions survive into error messages.
package scenario
