package world

import "math"

// TrilinearBox is a smooth 3D scalar field over a world-space box,
// defined by trilinear interpolation between the values of a coarse
// lattice with a fixed cell size. Lattice vertex values are pure
// functions of (seed, vertex world coordinate), so boxes built from the
// same seed agree wherever their lattices overlap.
type TrilinearBox struct {
	seed       uint64
	origin     [3]int
	extent     [3]int
	resolution int
}

// NewTrilinearBox constructs a box at origin spanning extent world
// units per axis, with lattice vertices every resolution units.
func NewTrilinearBox(seed uint64, originX, originY, originZ int, extentX, extentY, extentZ int, resolution int) TrilinearBox {
	return TrilinearBox{
		seed:       seed,
		origin:     [3]int{originX, originY, originZ},
		extent:     [3]int{extentX, extentY, extentZ},
		resolution: resolution,
	}
}

// Sample evaluates the field at a position normalized to the box extent
// ([0,1] per axis maps across the box). The result is in [0,1].
func (b *TrilinearBox) Sample(x, y, z float64) float64 {
	// Scale into lattice space: one unit per lattice cell.
	lx := x * float64(b.extent[0]) / float64(b.resolution)
	ly := y * float64(b.extent[1]) / float64(b.resolution)
	lz := z * float64(b.extent[2]) / float64(b.resolution)

	x0 := math.Floor(lx)
	y0 := math.Floor(ly)
	z0 := math.Floor(lz)

	tx := lx - x0
	ty := ly - y0
	tz := lz - z0

	v000 := b.vertexValue(int(x0), int(y0), int(z0))
	v100 := b.vertexValue(int(x0)+1, int(y0), int(z0))
	v010 := b.vertexValue(int(x0), int(y0)+1, int(z0))
	v110 := b.vertexValue(int(x0)+1, int(y0)+1, int(z0))
	v001 := b.vertexValue(int(x0), int(y0), int(z0)+1)
	v101 := b.vertexValue(int(x0)+1, int(y0), int(z0)+1)
	v011 := b.vertexValue(int(x0), int(y0)+1, int(z0)+1)
	v111 := b.vertexValue(int(x0)+1, int(y0)+1, int(z0)+1)

	i00 := lerp(v000, v100, tx)
	i10 := lerp(v010, v110, tx)
	i01 := lerp(v001, v101, tx)
	i11 := lerp(v011, v111, tx)

	i0 := lerp(i00, i10, ty)
	i1 := lerp(i01, i11, ty)

	return lerp(i0, i1, tz)
}

// vertexValue hashes a lattice vertex, addressed in cell units relative
// to the box origin, into [0,1]. Vertices are keyed by their world
// coordinates so overlapping boxes with the same seed agree.
func (b *TrilinearBox) vertexValue(cx, cy, cz int) float64 {
	wx := b.origin[0] + cx*b.resolution
	wy := b.origin[1] + cy*b.resolution
	wz := b.origin[2] + cz*b.resolution
	return latticeValue3(b.seed, wx, wy, wz)
}
