package gridgraph

// RegionIndex labels every cell with the index of its passable region.
// Labels are assigned in row-major order of each region's first cell.
// Blocked cells are labelled -1. The slice is indexed row-major
// (Row*Cols + Col).
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C).
func (gg *GridGraph) RegionIndex() []int {
	labels, _ := gg.label()
	return labels
}

// Regions returns all contiguous regions of passable cells according to
// gg.Conn connectivity. Each region lists its cells in BFS discovery order,
// starting from its row-major first cell.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for labels and output.
func (gg *GridGraph) Regions() [][]Position {
	_, regions := gg.label()
	return regions
}

// SameRegion reports whether a and b are passable cells of one region.
// Off-grid or blocked positions are never in any region.
func (gg *GridGraph) SameRegion(a, b Position) bool {
	if !gg.Passable(a) || !gg.Passable(b) {
		return false
	}
	labels := gg.RegionIndex()
	return labels[gg.index(a)] == labels[gg.index(b)]
}

// label runs one BFS flood per unlabelled passable cell, visiting seeds
// in row-major index order.
func (gg *GridGraph) label() ([]int, [][]Position) {
	total := gg.Rows * gg.Cols
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var regions [][]Position
	offsets := gg.NeighborOffsets()

	for i := range labels {
		p0 := gg.Coordinate(i)
		if labels[i] >= 0 || !gg.Passable(p0) {
			continue
		}
		id := len(regions)
		labels[i] = id
		queue := []Position{p0}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range offsets {
				v := u.Add(d)
				if !gg.Passable(v) {
					continue
				}
				if vi := gg.index(v); labels[vi] < 0 {
					labels[vi] = id
					queue = append(queue, v)
				}
			}
		}
		regions = append(regions, queue)
	}
	return labels, regions
}
