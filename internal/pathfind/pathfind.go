// Package pathfind implements 3D A* search over a voxel volume for agents
// with a standing height: step-up, step-down, and head-clearance rules are
// expressed as admissibility predicates, and the search shares no state
// across calls beyond what the caller hands it.
package pathfind

import (
	"container/heap"

	"voxelcore/internal/profiling"
	"voxelcore/internal/volume"
)

// horizontalOffsets are the 4 horizontal step directions a node can move
// in; vertical deltas are tried on top of each.
var horizontalOffsets = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// verticalOffsets are the floor-height deltas tried with each horizontal
// step: level, step up, step down.
var verticalOffsets = [3]int{0, 1, -1}

// Context carries everything the admissibility predicates and heuristic
// need for one search. Obstacles may be nil, meaning no cell is masked
// beyond the voxel buffer itself.
type Context struct {
	Volume     volume.Volume
	Voxels     []byte
	Obstacles  []byte
	Height     int // agent standing height, in cells
	MaxVisited int
	MinY       int
	MaxY       int
}

func (c *Context) blocked(i int) bool {
	return c.Obstacles != nil && c.Obstacles[i] != 0
}

// canGoThrough reports whether an agent's full standing height at (x,y,z)
// is clear: every cell from y to y+height-1 must be in-bounds, air, and not
// obstacle-masked.
func (c *Context) canGoThrough(x, y, z int) bool {
	for h := 0; h < c.Height; h++ {
		i := c.Volume.Index(x, y+h, z)
		if i == volume.OOB || c.Voxels[i] != 0 || c.blocked(i) {
			return false
		}
	}
	return true
}

// canStepAt reports whether (x,y,z) is a legal floor position: the cell
// below must be solid ground within [minY,maxY] and the agent's body must
// fit above it.
func (c *Context) canStepAt(x, y, z int) bool {
	if y-1 < c.MinY || y-1 > c.MaxY {
		return false
	}
	below := c.Volume.Index(x, y-1, z)
	if below == volume.OOB || c.Voxels[below] == 0 || c.blocked(below) {
		return false
	}
	return c.canGoThrough(x, y, z)
}

// Ground returns the y at which an agent of the given height would come to
// rest after dropping straight down from (x,y,z): -1 if the start cell is
// solid or out of bounds, 0 if the drop reaches the volume floor, or the y
// just above the first solid floor below the start. If that first floor
// lacks body clearance it returns -1; lower floors are not searched.
func Ground(v volume.Volume, voxels []byte, height, x, y, z int) int {
	i := v.Index(x, y, z)
	if i == volume.OOB || voxels[i] != 0 {
		return -1
	}
	for y--; y >= 0; y-- {
		floor := v.Index(x, y, z)
		if voxels[floor] == 0 {
			continue
		}
		clear := true
		for h := 1; h <= height; h++ {
			above := v.Index(x, y+h, z)
			if above != volume.OOB && voxels[above] != 0 {
				clear = false
				break
			}
		}
		if clear {
			return y + 1
		}
		return -1
	}
	return 0
}

// node is a (x,y,z) search position.
type node struct{ x, y, z int }

func heuristic(a, b node) int {
	return abs(a.x-b.x) + abs(a.y-b.y) + abs(a.z-b.z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// entry is a heap element tracking a node's priority (g + h) in the open set.
type entry struct {
	n        node
	priority int
	index    int
}

type openQueue []*entry

func (q openQueue) Len() int            { return len(q) }
func (q openQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q openQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *openQueue) Push(x any)         { e := x.(*entry); e.index = len(*q); *q = append(*q, e) }
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// FindPath runs A* from (fromX,fromY,fromZ) to (toX,toY,toZ) and writes the
// path as (x,y,z) triples into results, which must be sized for at least
// MaxVisited+1 triples. It returns the node count: -1 if either endpoint is
// out of bounds, 0 if no path was found (including when the visited cap is
// exceeded), or the number of nodes on the path otherwise.
func FindPath(ctx *Context, results []int, fromX, fromY, fromZ, toX, toY, toZ int) int {
	defer profiling.Track("pathfind.FindPath")()

	v := ctx.Volume
	if v.Index(fromX, fromY, fromZ) == volume.OOB || v.Index(toX, toY, toZ) == volume.OOB {
		return -1
	}

	start := node{fromX, fromY, fromZ}
	goal := node{toX, toY, toZ}

	open := &openQueue{}
	heap.Init(open)
	heap.Push(open, &entry{n: start, priority: 0})

	cameFrom := map[node]node{}
	gScore := map[node]int{start: 0}

	visited := 0
	for open.Len() > 0 {
		if visited > ctx.MaxVisited {
			return 0
		}
		current := heap.Pop(open).(*entry).n
		visited++
		if current == goal {
			return reconstruct(cameFrom, current, results)
		}

		for _, h := range horizontalOffsets {
			for _, dy := range verticalOffsets {
				nx, ny, nz := current.x+h[0], current.y+dy, current.z+h[1]
				if !ctx.canStepAt(nx, ny, nz) {
					continue
				}
				next := node{nx, ny, nz}
				cost := 1
				if dy != 0 {
					cost = 2
				}
				tentative := gScore[current] + cost
				if score, ok := gScore[next]; ok && tentative >= score {
					continue
				}
				cameFrom[next] = current
				gScore[next] = tentative
				heap.Push(open, &entry{n: next, priority: tentative + heuristic(next, goal)})
			}
		}
	}
	return 0
}

func reconstruct(cameFrom map[node]node, goal node, results []int) int {
	path := []node{goal}
	current := goal
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	for i, n := range path {
		p := i * 3
		results[p], results[p+1], results[p+2] = n.x, n.y, n.z
	}
	return len(path)
}
