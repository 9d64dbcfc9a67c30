package flock

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Grid cell resolution per axis. gridShift is the bit position of gridCells,
// used by the cell-coordinate correction below.
const (
	gridCells = 64
	gridShift = 6
)

// Grid is a uniform 64x64 spatial partition over the world bounds, bucketing
// hazards by the cells their avoidance footprint overlaps. It is rebuilt from
// scratch every frame: the hazard population is tiny, so a full rebuild is
// cheaper than maintaining incremental state.
//
// Buckets share one contiguous backing array sized at construction. A rebuild
// truncates every bucket before inserting, so stale entries from the previous
// frame are unreachable. Per-row occupancy masks let queries skip empty cells
// without touching bucket memory.
type Grid struct {
	bounds   Bounds
	cellW    float32
	cellH    float32
	capacity int

	buckets  [][]EntityID
	occupied [gridCells]mask.Mask
}

func newGrid(bounds Bounds, capacity int) *Grid {
	g := &Grid{
		bounds:   bounds,
		cellW:    bounds.Width() / gridCells,
		cellH:    bounds.Height() / gridCells,
		capacity: capacity,
		buckets:  make([][]EntityID, gridCells*gridCells),
	}
	backing := make([]EntityID, gridCells*gridCells*capacity)
	for i := range g.buckets {
		g.buckets[i] = backing[i*capacity : i*capacity : (i+1)*capacity]
	}
	return g
}

// Rebuild clears the grid and re-inserts the count hazards starting at id
// first, each into every cell overlapped by its square footprint of
// half-width avoid. A hazard lands in a given cell at most once per rebuild,
// so bucket capacity equal to the hazard count always suffices; an undersized
// capacity surfaces as a CellOverflowError rather than a silent overrun.
func (g *Grid) Rebuild(store *Store, first EntityID, count int, avoid float32) error {
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
	for row := range g.occupied {
		g.occupied[row] = mask.Mask{}
	}

	for id := first; id < first+EntityID(count); id++ {
		pos := store.Position(id)
		minCx := g.cellX(pos.X - avoid)
		maxCx := g.cellX(pos.X + avoid)
		minCy := g.cellY(pos.Y - avoid)
		maxCy := g.cellY(pos.Y + avoid)
		for cy := minCy; cy <= maxCy; cy++ {
			for cx := minCx; cx <= maxCx; cx++ {
				if err := g.insert(cx, cy, id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (g *Grid) insert(cx, cy int, id EntityID) error {
	i := cy*gridCells + cx
	if len(g.buckets[i]) >= g.capacity {
		return CellOverflowError{CellX: cx, CellY: cy, Capacity: g.capacity}
	}
	g.buckets[i] = append(g.buckets[i], id)
	g.occupied[cy].Mark(uint32(cx))
	return nil
}

// Occupied reports whether cell (cx, cy) holds any hazards, from the row mask
// alone.
func (g *Grid) Occupied(cx, cy int) bool {
	var probe mask.Mask
	probe.Mark(uint32(cx))
	return g.occupied[cy].ContainsAny(probe)
}

// Cell iterates the hazard ids bucketed in cell (cx, cy), in insertion order.
func (g *Grid) Cell(cx, cy int) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range g.buckets[cy*gridCells+cx] {
			if !yield(id) {
				return
			}
		}
	}
}

// cellX maps an x coordinate to its grid column. Build and query sides share
// this helper, so a hazard's footprint and a nearby entity's own cell always
// agree on cell coordinates.
func (g *Grid) cellX(x float32) int {
	return clampCell(int((x - g.bounds.XMin) / g.cellW))
}

// cellY maps a y coordinate to its grid row.
func (g *Grid) cellY(y float32) int {
	return clampCell(int((y - g.bounds.YMin) / g.cellH))
}

// clampCell wraps a floored cell coordinate into [0, gridCells-1]. The bit
// correction handles the common edge case of a coordinate landing exactly one
// past the last cell (a footprint touching the domain edge); the explicit
// clamps catch anything further out, such as a footprint extending past the
// minimum bound.
func clampCell(c int) int {
	c -= (c & gridCells) >> gridShift
	if c < 0 {
		return 0
	}
	if c > gridCells-1 {
		return gridCells - 1
	}
	return c
}
