// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph of passable positions. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds and obstacle tests for arbitrary (possibly off-grid) positions
//   - Identification of connected regions of passable cells
//
// Cells whose value equals BlockedValue are walls; all other cells are free.
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}

	var offsets []Offset
	if opts.Conn == Conn8 {
		offsets = Conn8Offsets[:]
	} else {
		offsets = Conn4Offsets[:]
	}

	return &GridGraph{
		Rows:            rows,
		Cols:            cols,
		CellValues:      cells,
		Conn:            opts.Conn,
		BlockedValue:    opts.BlockedValue,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph with the default BlockedValue and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.Rows && p.Col >= 0 && p.Col < gg.Cols
}

// Blocked reports whether p is an in-bounds wall cell.
// Off-grid positions are not blocked; they are simply not InBounds.
func (gg *GridGraph) Blocked(p Position) bool {
	return gg.InBounds(p) && gg.CellValues[p.Row][p.Col] == gg.BlockedValue
}

// Passable reports whether p is in bounds and free.
func (gg *GridGraph) Passable(p Position) bool {
	return gg.InBounds(p) && gg.CellValues[p.Row][p.Col] != gg.BlockedValue
}

// NeighborOffsets returns the neighbor offsets for gg.Conn in search order.
// The returned slice must not be modified.
func (gg *GridGraph) NeighborOffsets() []Offset {
	return gg.neighborOffsets
}

// Neighbors returns the passable neighbors of p in NeighborOffsets order.
// p itself need not be passable or in bounds.
func (gg *GridGraph) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		if q := p.Add(d); gg.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}

// index maps p to a row-major index: Row*Cols + Col.
func (gg *GridGraph) index(p Position) int {
	return p.Row*gg.Cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Position {
	return Position{Row: idx / gg.Cols, Col: idx % gg.Cols}
}
