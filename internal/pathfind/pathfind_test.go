package pathfind

import (
	"testing"

	"voxelcore/internal/volume"
)

// buildFlatGround returns a w x h x d volume with a solid floor at y=0 and
// air above it; S5/S6 use it at 8x3x8.
func buildFlatGround(w, h, d int) (volume.Volume, []byte) {
	v := volume.New(w, h, d)
	voxels := make([]byte, v.CellCount())
	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			voxels[v.Index(x, 0, z)] = 1
		}
	}
	return v, voxels
}

// S5: flat ground, agent height 2, path from (0,1,0) to (7,1,7): a 15-node
// path with total cost 14.
func TestFindPathFlatGround(t *testing.T) {
	v, voxels := buildFlatGround(8, 3, 8)
	ctx := &Context{Volume: v, Voxels: voxels, Height: 2, MaxVisited: 10000, MinY: 0, MaxY: 2}
	results := make([]int, (ctx.MaxVisited+1)*3)

	n := FindPath(ctx, results, 0, 1, 0, 7, 1, 7)
	if n != 15 {
		t.Fatalf("node count = %d, want 15", n)
	}
	if results[0] != 0 || results[1] != 1 || results[2] != 0 {
		t.Fatalf("start = (%d,%d,%d), want (0,1,0)", results[0], results[1], results[2])
	}
	last := (n - 1) * 3
	if results[last] != 7 || results[last+1] != 1 || results[last+2] != 7 {
		t.Fatalf("end = (%d,%d,%d), want (7,1,7)", results[last], results[last+1], results[last+2])
	}

	cost := 0
	for i := 1; i < n; i++ {
		p, c := i*3, (i-1)*3
		dy := abs(results[p+1] - results[c+1])
		if dy == 0 {
			cost++
		} else {
			cost += 2
		}
	}
	if cost != 14 {
		t.Fatalf("total path cost = %d, want 14", cost)
	}
}

// S6: same grid with a 1-cell solid pillar at (3,1,3); expect a detour of
// cost 16.
func TestFindPathRoutesAroundPillar(t *testing.T) {
	v, voxels := buildFlatGround(8, 3, 8)
	voxels[v.Index(3, 1, 3)] = 1
	ctx := &Context{Volume: v, Voxels: voxels, Height: 2, MaxVisited: 10000, MinY: 0, MaxY: 2}
	results := make([]int, (ctx.MaxVisited+1)*3)

	n := FindPath(ctx, results, 0, 1, 0, 7, 1, 7)
	if n == 0 {
		t.Fatal("expected a path around the pillar, got none")
	}
	cost := 0
	for i := 1; i < n; i++ {
		p, c := i*3, (i-1)*3
		dy := abs(results[p+1] - results[c+1])
		if dy == 0 {
			cost++
		} else {
			cost += 2
		}
	}
	if cost != 16 {
		t.Fatalf("total path cost = %d, want 16", cost)
	}
}

func TestFindPathOOBEndpoints(t *testing.T) {
	v, voxels := buildFlatGround(4, 3, 4)
	ctx := &Context{Volume: v, Voxels: voxels, Height: 2, MaxVisited: 100, MinY: 0, MaxY: 2}
	results := make([]int, 303)
	if n := FindPath(ctx, results, -1, 1, 0, 2, 1, 2); n != -1 {
		t.Errorf("OOB start: node count = %d, want -1", n)
	}
	if n := FindPath(ctx, results, 0, 1, 0, 99, 1, 2); n != -1 {
		t.Errorf("OOB goal: node count = %d, want -1", n)
	}
}

func TestFindPathUnreachableGoalReturnsZero(t *testing.T) {
	v, voxels := buildFlatGround(4, 3, 4)
	// Seal the goal column off with solid walls on all 4 sides at y=1, so
	// no admissible step can ever reach it.
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		voxels[v.Index(2+d[0], 1, 2+d[1])] = 1
		voxels[v.Index(2+d[0], 2, 2+d[1])] = 1
	}
	ctx := &Context{Volume: v, Voxels: voxels, Height: 2, MaxVisited: 1000, MinY: 0, MaxY: 2}
	results := make([]int, 3003)
	n := FindPath(ctx, results, 0, 1, 0, 2, 1, 2)
	if n != 0 {
		t.Fatalf("node count = %d, want 0 (goal sealed off)", n)
	}
}

func TestGroundDropsToFloor(t *testing.T) {
	v, voxels := buildFlatGround(4, 5, 4)
	y := Ground(v, voxels, 2, 1, 4, 1)
	if y != 1 {
		t.Fatalf("Ground() = %d, want 1 (standing height 1 above the y=0 floor)", y)
	}
}

func TestGroundStartingInSolidReturnsNegOne(t *testing.T) {
	v, voxels := buildFlatGround(4, 5, 4)
	if y := Ground(v, voxels, 2, 1, 0, 1); y != -1 {
		t.Fatalf("Ground() from inside solid = %d, want -1", y)
	}
}
