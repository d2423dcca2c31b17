package blocks

import (
	"terracraft/internal/world"
)

// Vertex layout: position (3), normal (3), color (3), light (1).
const vertexFloats = 10

// chunkMesh is the GPU-side copy of one chunk's face list. Opaque vertices
// come first in the buffer, translucent ones after, so each render pass is
// a single contiguous draw.
type chunkMesh struct {
	vao              uint32
	vbo              uint32
	opaqueCount      int32
	translucentFirst int32
	translucentCount int32
}

// packFaces converts a face list into interleaved vertex data, opaque faces
// first. Each face becomes two triangles (corners 0,1,2 and 0,2,3).
func packFaces(faces []world.BlockFace) (verts []float32, opaqueCount, translucentCount int32) {
	verts = make([]float32, 0, len(faces)*6*vertexFloats)

	appendFace := func(f *world.BlockFace) {
		color := f.Material.Attributes().Color
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			c := f.Corners[i]
			verts = append(verts,
				c.X(), c.Y(), c.Z(),
				f.Normal.X(), f.Normal.Y(), f.Normal.Z(),
				color.X(), color.Y(), color.Z(),
				f.Light[i],
			)
		}
	}

	for i := range faces {
		if !faces[i].Material.Attributes().Translucent {
			appendFace(&faces[i])
			opaqueCount += 6
		}
	}
	for i := range faces {
		if faces[i].Material.Attributes().Translucent {
			appendFace(&faces[i])
			translucentCount += 6
		}
	}
	return verts, opaqueCount, translucentCount
}
