// Package mesher extracts a per-chunk visible-face mesh from a voxel volume
// and its light field: one record per face whose outward neighbor is
// in-bounds air, with a 5-sample ambient light average per channel and the
// chunk's bounding sphere.
package mesher

import (
	"voxelcore/internal/light"
	"voxelcore/internal/profiling"
	"voxelcore/internal/registry"
	"voxelcore/internal/volume"

	"github.com/go-gl/mathgl/mgl32"
)

// normal holds one face's outward normal and its two tangent axes (v, u),
// in the fixed order the original engine visits faces: +z, +y, -y, -x, +x,
// -z. This order is independent of volume.Direction, which the light engine
// and update coordinator use instead.
type normal struct {
	n, v, u [3]int
}

var faceTable = [6]normal{
	{n: [3]int{0, 0, 1}, v: [3]int{0, 1, 0}, u: [3]int{1, 0, 0}},
	{n: [3]int{0, 1, 0}, v: [3]int{0, 0, -1}, u: [3]int{1, 0, 0}},
	{n: [3]int{0, -1, 0}, v: [3]int{0, 0, 1}, u: [3]int{1, 0, 0}},
	{n: [3]int{-1, 0, 0}, v: [3]int{0, 1, 0}, u: [3]int{0, 0, 1}},
	{n: [3]int{1, 0, 0}, v: [3]int{0, 1, 0}, u: [3]int{0, 0, 1}},
	{n: [3]int{0, 0, -1}, v: [3]int{0, 1, 0}, u: [3]int{-1, 0, 0}},
}

// lightSamples holds the 5 (u,v) tangent-plane offsets averaged for a face's
// ambient light: the face-neighbor cell itself, then the four cells
// adjacent to it along the tangent axes.
var lightSamples = [5][2]int{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// FaceStride is the number of floats written per emitted face: a 3-float
// center, a 1-float packed texture index, and one ambient light value per
// channel.
func FaceStride(channels int) int {
	return 4 + channels
}

// Box is a chunk-local AABB, min inclusive and max exclusive, of the cells
// that contributed at least one face.
type Box struct {
	Min, Max [3]int
}

// Sphere is the bounding sphere derived from Box: centered on the box
// center, radius the half-diagonal.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Mesh emits, into faces, one record per visible face of every solid cell in
// the chunkSize^3 chunk whose origin is (chunkX, chunkY, chunkZ). faces must
// be sized for chunkSize^3*6*FaceStride(field.Channels) floats in the worst
// case. mapping supplies the texture index for each (face, value, x, y, z).
// Mesh returns the number of faces written, the chunk-local bounding box of
// contributing cells, and its bounding sphere.
func Mesh(v volume.Volume, voxels []byte, field light.Field, mapping registry.MappingFunc, faces []float32, chunkX, chunkY, chunkZ int) (count int, box Box, sphere Sphere) {
	defer profiling.Track("mesher.Mesh")()

	stride := FaceStride(field.Channels)
	offset := 0
	box = Box{
		Min: [3]int{v.ChunkSize, v.ChunkSize, v.ChunkSize},
		Max: [3]int{0, 0, 0},
	}

	for z := chunkZ; z < chunkZ+v.ChunkSize; z++ {
		for y := chunkY; y < chunkY+v.ChunkSize; y++ {
			for x := chunkX; x < chunkX+v.ChunkSize; x++ {
				i := v.Index(x, y, z)
				if i == volume.OOB {
					continue
				}
				value := voxels[i]
				if value == 0 {
					continue
				}
				cx, cy, cz := x-chunkX, y-chunkY, z-chunkZ
				visible := false
				for face := 0; face < 6; face++ {
					t := faceTable[face]
					nx, ny, nz := x+t.n[0], y+t.n[1], z+t.n[2]
					neighbor := v.Index(nx, ny, nz)
					if neighbor == volume.OOB || voxels[neighbor] != 0 {
						continue
					}
					visible = true
					texture := mapping(registry.Face(face), value, x, y, z)
					faces[offset] = float32(cx) + 0.5
					faces[offset+1] = float32(cy) + 0.5
					faces[offset+2] = float32(cz) + 0.5
					faces[offset+3] = float32(texture)*6 + float32(face)
					ambientLight(v, voxels, field, t, nx, ny, nz, faces[offset+4:offset+4+field.Channels])
					offset += stride
					count++
				}
				if visible {
					if box.Min[0] > cx {
						box.Min[0] = cx
					}
					if box.Min[1] > cy {
						box.Min[1] = cy
					}
					if box.Min[2] > cz {
						box.Min[2] = cz
					}
					if box.Max[0] < cx+1 {
						box.Max[0] = cx + 1
					}
					if box.Max[1] < cy+1 {
						box.Max[1] = cy + 1
					}
					if box.Max[2] < cz+1 {
						box.Max[2] = cz + 1
					}
				}
			}
		}
	}

	sphere = boundingSphere(box)
	return count, box, sphere
}

// ambientLight fills out, one value per channel, with the 5-sample average
// of the face's light-contributing neighborhood, normalized to [0,1].
// maxChannels bounds the fixed-size scratch arrays below: sunlight plus up
// to 3 colored emitters, per the light channel glossary. Keeping these
// stack arrays instead of a per-face allocation matters here since Mesh
// calls this once per emitted face.
const maxChannels = 4

func ambientLight(v volume.Volume, voxels []byte, field light.Field, t normal, x, y, z int, out []float32) {
	var sums [maxChannels]float32
	var counts [maxChannels]uint8
	sampled := min(field.Channels, maxChannels)
	for _, s := range lightSamples {
		u, w := s[0], s[1]
		nx := x + t.u[0]*u + t.v[0]*w
		ny := y + t.u[1]*u + t.v[1]*w
		nz := z + t.u[2]*u + t.v[2]*w
		n := v.Index(nx, ny, nz)
		if n == volume.OOB || voxels[n] != 0 {
			continue
		}
		for channel := 0; channel < sampled; channel++ {
			sums[channel] += float32(field.At(n, channel))
			counts[channel]++
		}
	}
	for channel := 0; channel < field.Channels; channel++ {
		if channel >= sampled || counts[channel] == 0 {
			out[channel] = 0
			continue
		}
		out[channel] = sums[channel] / float32(counts[channel]) / float32(v.MaxLight)
	}
}

func boundingSphere(box Box) Sphere {
	halfW := float32(box.Max[0]-box.Min[0]) * 0.5
	halfH := float32(box.Max[1]-box.Min[1]) * 0.5
	halfD := float32(box.Max[2]-box.Min[2]) * 0.5
	center := mgl32.Vec3{
		float32(box.Min[0]+box.Max[0]) * 0.5,
		float32(box.Min[1]+box.Max[1]) * 0.5,
		float32(box.Min[2]+box.Max[2]) * 0.5,
	}
	radius := mgl32.Vec3{halfW, halfH, halfD}.Len()
	return Sphere{Center: center, Radius: radius}
}
