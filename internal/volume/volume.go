// Package volume holds the dense voxel grid descriptor and the addressing,
// bounds, and height-map primitives every other package builds on.
package volume

// OOB is the sentinel index returned for any out-of-bounds coordinate.
const OOB = -1

// Volume is the immutable descriptor of a dense axis-aligned voxel box.
// Width, Height and Depth are cell counts on x, y, z. ChunkSize is the edge
// length of a mesh chunk. MaxLight is the peak level a light channel can
// reach.
type Volume struct {
	Width     int
	Height    int
	Depth     int
	ChunkSize int
	MaxLight  uint8
}

// New builds a Volume with the given dimensions and the typical defaults
// (chunkSize 16, maxLight 15) used when the caller doesn't need to tune them.
func New(width, height, depth int) Volume {
	return Volume{
		Width:     width,
		Height:    height,
		Depth:     depth,
		ChunkSize: 16,
		MaxLight:  15,
	}
}

// CellCount returns the total number of addressable cells.
func (v Volume) CellCount() int {
	return v.Width * v.Height * v.Depth
}

// Index linearises (x,y,z) as z*width*height + y*width + x, or returns OOB
// when any coordinate falls outside the volume. This is the sole
// bounds-check primitive used by every other package.
func (v Volume) Index(x, y, z int) int {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height || z < 0 || z >= v.Depth {
		return OOB
	}
	return z*v.Width*v.Height + y*v.Width + x
}

// Decompose recovers (x,y,z) from a linear index previously produced by
// Index. Behavior is undefined for indices outside [0, CellCount).
func (v Volume) Decompose(i int) (x, y, z int) {
	plane := v.Width * v.Height
	z = i / plane
	rem := i % plane
	y = rem / v.Width
	x = rem % v.Width
	return
}

// ColumnIndex linearises a (x,z) column into the height-map's flat layout.
func (v Volume) ColumnIndex(x, z int) int {
	return z*v.Width + x
}

// Box is an axis-aligned bounding region, inclusive on both Min and Max.
// It is used to report which cells were touched by an update.
type Box struct {
	Min [3]int
	Max [3]int
}

// Degenerate returns a Box collapsed to a single cell.
func Degenerate(x, y, z int) Box {
	return Box{Min: [3]int{x, y, z}, Max: [3]int{x, y, z}}
}

// Grow expands bounds, if non-nil, to include (x,y,z). A nil bounds pointer
// means "do not track" and Grow is a no-op, matching the optional
// region-accumulator the light engine and update coordinator pass around.
func Grow(bounds *Box, x, y, z int) {
	if bounds == nil {
		return
	}
	if bounds.Min[0] > x {
		bounds.Min[0] = x
	}
	if bounds.Min[1] > y {
		bounds.Min[1] = y
	}
	if bounds.Min[2] > z {
		bounds.Min[2] = z
	}
	if bounds.Max[0] < x {
		bounds.Max[0] = x
	}
	if bounds.Max[1] < y {
		bounds.Max[1] = y
	}
	if bounds.Max[2] < z {
		bounds.Max[2] = z
	}
}

// Direction indexes the fixed 6-neighbor visitation order used by the light
// engine and the update coordinator: -y, +y, -x, +x, -z, +z. The mesher and
// the pathfinder use their own offset tables. Encoding direction as an index rather than inspecting the sign of
// a delta vector keeps the sunlight zero-cost rule (direction 0 only) cheap
// to test.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirWest
	DirEast
	DirSouth
	DirNorth
)

// Offsets holds the (dx,dy,dz) triple for each Direction, in the fixed order
// required by the BFS visitation rule.
var Offsets = [6][3]int{
	{0, -1, 0},
	{0, 1, 0},
	{-1, 0, 0},
	{1, 0, 0},
	{0, 0, -1},
	{0, 0, 1},
}
