// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestRegions_Simple4 tests Regions on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = wall, 0 = free):
//
//	1 0 0 1
//	0 0 1 1
//	1 1 0 0
//
// Expected: 2 regions of sizes 4 and 2.
//
// Complexity: O(R·C·4) time, O(R·C) memory.
func TestRegions_Simple4(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	regions := gg.Regions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
}

// TestRegions_Diagonal8 tests Regions on a 5×5 grid using diagonal
// connectivity (Conn8) to catch corridors that only touch at corners.
//
// Grid:
//
//	0 1 1 1 0
//	1 0 1 0 1
//	1 1 0 1 1
//	1 0 1 0 1
//	0 1 1 1 0
//
// With Conn8, all 9 free cells connect through diagonal hops into one region.
// With Conn4, each of them is isolated.
func TestRegions_Diagonal8(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 1, 0},
		{1, 0, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 0, 1},
		{0, 1, 1, 1, 0},
	}
	gg, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	regions := gg.Regions()
	if len(regions) != 1 {
		t.Fatalf("got %d regions; want 1", len(regions))
	}
	if size := len(regions[0]); size != 9 {
		t.Errorf("region size = %d; want 9", size)
	}

	gg4, _ := From2D(grid, Conn4)
	if n := len(gg4.Regions()); n != 9 {
		t.Errorf("Conn4: got %d regions; want 9", n)
	}
}

// TestRegions_AllBlockedAndSingle tests edge cases:
//   - completely blocked grid → zero regions
//   - single free cell → one region of size 1
func TestRegions_AllBlockedAndSingle(t *testing.T) {
	gg1, _ := From2D([][]int{{1, 1}, {1, 1}}, Conn8)
	if n := len(gg1.Regions()); n != 0 {
		t.Errorf("all-blocked: got %d regions; want 0", n)
	}

	gg2, _ := From2D([][]int{{1, 0}}, Conn8)
	regions := gg2.Regions()
	if len(regions) != 1 {
		t.Fatalf("single free: got %d regions; want 1", len(regions))
	}
	if regions[0][0] != Pos(0, 1) {
		t.Errorf("single free: region = %v; want [(0,1)]", regions[0])
	}
}

// TestRegionIndex_Labels checks row-major labelling and -1 for walls.
func TestRegionIndex_Labels(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{0, 1, 0},
	}
	gg, _ := From2D(grid, Conn8)
	got := gg.RegionIndex()
	want := []int{0, -1, 1, 0, -1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RegionIndex = %v; want %v", got, want)
	}
}

// TestSameRegion covers walls, off-grid cells and split regions.
func TestSameRegion(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{0, 1, 0},
	}
	gg, _ := From2D(grid, Conn8)

	if !gg.SameRegion(Pos(0, 0), Pos(1, 0)) {
		t.Error("SameRegion((0,0),(1,0)) = false; want true")
	}
	if gg.SameRegion(Pos(0, 0), Pos(0, 2)) {
		t.Error("SameRegion across the wall = true; want false")
	}
	if gg.SameRegion(Pos(0, 0), Pos(0, 1)) {
		t.Error("SameRegion with a wall cell = true; want false")
	}
	if gg.SameRegion(Pos(-1, 0), Pos(0, 0)) {
		t.Error("SameRegion with an off-grid cell = true; want false")
	}
}

// TestRegions_SeedIsFirstLabelledIndex checks that each region starts at the
// cell whose row-major index carries that label first.
//
// Grid:
//
//	0 1 0
//	1 1 0
//	0 1 1
func TestRegions_SeedIsFirstLabelledIndex(t *testing.T) {
	gg, err := From2D([][]int{{0, 1, 0}, {1, 1, 0}, {0, 1, 1}}, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	labels := gg.RegionIndex()
	regions := gg.Regions()
	if len(regions) != 3 {
		t.Fatalf("got %d regions; want 3", len(regions))
	}
	for id, region := range regions {
		first := -1
		for i, l := range labels {
			if l == id {
				first = i
				break
			}
		}
		if got := gg.Coordinate(first); region[0] != got {
			t.Errorf("region %d starts at %v; want %v", id, region[0], got)
		}
	}
	if want := []int{0, -1, 1, -1, -1, 1, 2, -1, -1}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}
