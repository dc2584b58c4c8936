// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridastar.
package gridgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, W, S, N.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: E, W, S, N, SE, SW, NE, NW.
	Conn8
)

// DefaultBlockedValue is the cell marker treated as an obstacle by default.
const DefaultBlockedValue = 1

// Position is a (Row, Col) cell coordinate. It is a plain value and can be
// used directly as a map key.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by d.
func (p Position) Add(d Offset) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Less orders positions lexicographically on (Row, Col).
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

// Offset is a relative move between two cells.
type Offset struct {
	DRow, DCol int
}

// Conn8Offsets lists the eight moves in the order searches try them:
// the four orthogonal moves first, then the four diagonals.
// The order decides which of several equal-cost paths is found.
var Conn8Offsets = [8]Offset{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Conn4Offsets lists the four orthogonal moves, in the same order as the
// head of Conn8Offsets.
var Conn4Offsets = [4]Offset{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
}

// IsAdjacent reports whether a and b are distinct cells one king-move apart.
func IsAdjacent(a, b Position) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// BlockedValue is the cell value that marks an impassable cell.
	// Every other value is free.
	BlockedValue int
	// Conn chooses 4- or 8-directional connectivity for Neighbors and Regions.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// BlockedValue=1 (cells equal to 1 are walls), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		BlockedValue: DefaultBlockedValue,
		Conn:         Conn8,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Rows and Cols define dimensions; CellValues[row][col] holds the original input value.
// Conn and BlockedValue are set from GridOptions during construction.
type GridGraph struct {
	Rows, Cols      int
	CellValues      [][]int
	Conn            Connectivity
	BlockedValue    int
	neighborOffsets []Offset
}
