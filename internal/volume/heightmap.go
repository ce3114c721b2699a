package volume

// HeightMap holds, per (x,z) column, the y-coordinate of the topmost solid
// cell, or 0 when the column has no solid cell above y=0.
type HeightMap []int32

// NewHeightMap allocates a height map sized for the given volume.
func NewHeightMap(v Volume) HeightMap {
	return make(HeightMap, v.Width*v.Depth)
}

// RecomputeAll rebuilds the entire height map from scratch by scanning every
// column from the top down.
func RecomputeAll(v Volume, voxels []byte, out HeightMap) {
	for z := 0; z < v.Depth; z++ {
		for x := 0; x < v.Width; x++ {
			col := v.ColumnIndex(x, z)
			top := int32(0)
			for y := v.Height - 1; y >= 0; y-- {
				i := v.Index(x, y, z)
				if voxels[i] != 0 {
					top = int32(y)
					break
				}
			}
			out[col] = top
		}
	}
}

// UpdateOnEdit re-establishes the height-map invariant for column (x,z)
// after voxels[x,y,z] changed to newValue. Solid edits above the current
// top raise it directly; air edits at the current top rescan downward for
// the new topmost solid cell.
func UpdateOnEdit(out HeightMap, v Volume, voxels []byte, x, y, z int, newValue byte) {
	col := v.ColumnIndex(x, z)
	if newValue != 0 {
		if int(out[col]) < y {
			out[col] = int32(y)
		}
		return
	}
	if int(out[col]) != y {
		return
	}
	for h := y - 1; h >= 0; h-- {
		if h == 0 || voxels[v.Index(x, h, z)] != 0 {
			out[col] = int32(h)
			return
		}
	}
	out[col] = 0
}
