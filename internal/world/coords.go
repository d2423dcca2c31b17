package world

// ChunkCoord identifies a chunk by its position in chunk units.
type ChunkCoord struct {
	X, Y, Z int
}

// WorldPosition returns the chunk's anchor corner in world units.
// Every component is chunk-aligned by construction.
func (c ChunkCoord) WorldPosition() (int, int, int) {
	return c.X * ChunkSizeX, c.Y * ChunkSizeY, c.Z * ChunkSizeZ
}

// ChunkCoordAt returns the coordinate of the chunk containing the given
// world-space block position.
func ChunkCoordAt(x, y, z int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(x, ChunkSizeX),
		Y: floorDiv(y, ChunkSizeY),
		Z: floorDiv(z, ChunkSizeZ),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the non-negative remainder of a/b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
