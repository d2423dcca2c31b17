package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BlockFace is one boundary face between a non-air block and an air (or
// out-of-chunk) neighbour: the unit of mesh geometry handed to the
// renderer. Corner light is a placeholder for the renderer's lighting
// pass and defaults to full bright.
type BlockFace struct {
	Corners  [4]mgl32.Vec3
	Normal   mgl32.Vec3
	Tangent  mgl32.Vec3
	Material BlockMaterial
	Light    [4]float32
}

// faceDirections drives face extraction: neighbour offset, normal,
// tangent, and the four corner offsets from the block's minimum corner,
// wound counter-clockwise as seen from outside the block.
var faceDirections = [6]struct {
	dx, dy, dz int
	normal     mgl32.Vec3
	tangent    mgl32.Vec3
	corners    [4][3]float32
}{
	{1, 0, 0, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0},
		[4][3]float32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{-1, 0, 0, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1},
		[4][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{0, 1, 0, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1},
		[4][3]float32{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{0, -1, 0, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0},
		[4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{0, 0, 1, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0},
		[4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{0, 0, -1, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0},
		[4][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// RebuildExternalFaces recomputes the chunk's face cache from its block
// grid. A face is external when the neighbouring cell is air or lies
// outside the chunk; cross-chunk occlusion is a renderer concern.
func (c *Chunk) RebuildExternalFaces() {
	c.faces = c.faces[:0]

	baseX, baseY, baseZ := c.coord.WorldPosition()

	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < ChunkSizeY; y++ {
			for z := 0; z < ChunkSizeZ; z++ {
				m := c.blocks[blockIndex(x, y, z)]
				if m == MaterialAir {
					continue
				}

				for _, dir := range faceDirections {
					nx, ny, nz := x+dir.dx, y+dir.dy, z+dir.dz
					inside := nx >= 0 && nx < ChunkSizeX &&
						ny >= 0 && ny < ChunkSizeY &&
						nz >= 0 && nz < ChunkSizeZ
					if inside && c.blocks[blockIndex(nx, ny, nz)] != MaterialAir {
						continue
					}

					face := BlockFace{
						Normal:   dir.normal,
						Tangent:  dir.tangent,
						Material: m,
						Light:    [4]float32{1, 1, 1, 1},
					}
					for i, corner := range dir.corners {
						face.Corners[i] = mgl32.Vec3{
							float32(baseX+x) + corner[0],
							float32(baseY+y) + corner[1],
							float32(baseZ+z) + corner[2],
						}
					}
					c.faces = append(c.faces, face)
				}
			}
		}
	}

	c.facesValid = true
}
