package volume

import "testing"

func TestIndexRoundTrip(t *testing.T) {
	v := New(4, 5, 6)
	for z := 0; z < v.Depth; z++ {
		for y := 0; y < v.Height; y++ {
			for x := 0; x < v.Width; x++ {
				i := v.Index(x, y, z)
				if i == OOB {
					t.Fatalf("Index(%d,%d,%d) reported OOB inside bounds", x, y, z)
				}
				gx, gy, gz := v.Decompose(i)
				if gx != x || gy != y || gz != z {
					t.Errorf("Decompose(Index(%d,%d,%d))=(%d,%d,%d)", x, y, z, gx, gy, gz)
				}
			}
		}
	}
}

func TestIndexOOB(t *testing.T) {
	v := New(4, 4, 4)
	cases := [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{4, 0, 0}, {0, 4, 0}, {0, 0, 4},
	}
	for _, c := range cases {
		if got := v.Index(c[0], c[1], c[2]); got != OOB {
			t.Errorf("Index(%v) = %d, want OOB", c, got)
		}
	}
}

func TestGrowNilBounds(t *testing.T) {
	// Grow on a nil bounds pointer must not panic; it is a no-op "do not
	// track" request.
	Grow(nil, 1, 2, 3)
}

func TestGrowExpands(t *testing.T) {
	b := Degenerate(5, 5, 5)
	Grow(&b, 2, 8, 5)
	Grow(&b, 5, 5, -1)
	if b.Min != [3]int{2, 5, -1} {
		t.Errorf("Min = %v, want {2,5,-1}", b.Min)
	}
	if b.Max != [3]int{5, 8, 5} {
		t.Errorf("Max = %v, want {5,8,5}", b.Max)
	}
}

func TestHeightMapRecomputeAll(t *testing.T) {
	v := New(2, 4, 2)
	voxels := make([]byte, v.CellCount())
	voxels[v.Index(0, 1, 0)] = 1
	voxels[v.Index(0, 3, 0)] = 1
	h := NewHeightMap(v)
	RecomputeAll(v, voxels, h)
	if got := h[v.ColumnIndex(0, 0)]; got != 3 {
		t.Errorf("column (0,0) height = %d, want 3", got)
	}
	if got := h[v.ColumnIndex(1, 0)]; got != 0 {
		t.Errorf("empty column height = %d, want 0", got)
	}
}

func TestHeightMapUpdateOnEdit(t *testing.T) {
	v := New(2, 4, 2)
	voxels := make([]byte, v.CellCount())
	h := NewHeightMap(v)

	voxels[v.Index(0, 2, 0)] = 1
	UpdateOnEdit(h, v, voxels, 0, 2, 0, 1)
	if got := h[v.ColumnIndex(0, 0)]; got != 2 {
		t.Fatalf("after solid edit at y=2, height = %d, want 2", got)
	}

	voxels[v.Index(0, 1, 0)] = 1
	UpdateOnEdit(h, v, voxels, 0, 1, 0, 1)
	if got := h[v.ColumnIndex(0, 0)]; got != 2 {
		t.Fatalf("solid edit below current top should not lower height: got %d, want 2", got)
	}

	voxels[v.Index(0, 2, 0)] = 0
	UpdateOnEdit(h, v, voxels, 0, 2, 0, 0)
	if got := h[v.ColumnIndex(0, 0)]; got != 1 {
		t.Fatalf("removing the topmost solid should rescan downward: got %d, want 1", got)
	}

	voxels[v.Index(0, 1, 0)] = 0
	UpdateOnEdit(h, v, voxels, 0, 1, 0, 0)
	if got := h[v.ColumnIndex(0, 0)]; got != 0 {
		t.Fatalf("removing the last solid should drop height to 0: got %d, want 0", got)
	}
}
