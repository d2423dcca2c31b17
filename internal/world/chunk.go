package world

const (
	// Chunk dimensions in world units.
	ChunkSizeX = 16
	ChunkSizeY = 16
	ChunkSizeZ = 16

	chunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// Chunk is a fixed-size block grid anchored at a chunk-aligned world
// position. Blocks are owned exclusively by their chunk and mutated in
// place. The external-face list is a derived value: it is invalidated by
// any material write and only valid again after RebuildExternalFaces.
//
// All mutation happens under the world's chunk guard; Chunk itself does
// no locking.
type Chunk struct {
	coord  ChunkCoord
	blocks [chunkVolume]BlockMaterial

	faces      []BlockFace
	facesValid bool
}

// NewChunk creates an all-air chunk at the given coordinate.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{coord: coord}
}

// Coord returns the chunk's coordinate in chunk units.
func (c *Chunk) Coord() ChunkCoord {
	return c.coord
}

func blockIndex(x, y, z int) int {
	return (x*ChunkSizeY+y)*ChunkSizeZ + z
}

// Material returns the material at local coordinates. Out-of-range
// coordinates read as air.
func (c *Chunk) Material(x, y, z int) BlockMaterial {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkSizeY || z < 0 || z >= ChunkSizeZ {
		return MaterialAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetMaterial writes the material at local coordinates and invalidates
// the cached face list.
func (c *Chunk) SetMaterial(x, y, z int, m BlockMaterial) {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkSizeY || z < 0 || z >= ChunkSizeZ {
		return
	}
	idx := blockIndex(x, y, z)
	if c.blocks[idx] != m {
		c.blocks[idx] = m
		c.facesValid = false
	}
}

// ExternalFaces returns the cached face list. The contract is that faces
// are only read between an update notification and the next mutation of
// this chunk; FacesValid reports whether the cache is current.
func (c *Chunk) ExternalFaces() []BlockFace {
	return c.faces
}

// FacesValid reports whether the face cache reflects the current blocks.
func (c *Chunk) FacesValid() bool {
	return c.facesValid
}
