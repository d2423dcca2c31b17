package blocks

import (
	"testing"

	"terracraft/internal/world"
)

// buildTestFaces rebuilds a chunk with one stone and one leaf block and
// returns its face list.
func buildTestFaces() []world.BlockFace {
	c := world.NewChunk(world.ChunkCoord{X: 0, Y: 0, Z: 0})
	c.SetMaterial(4, 4, 4, world.MaterialStone)
	c.SetMaterial(10, 4, 4, world.MaterialTreeLeaf)
	c.RebuildExternalFaces()
	return c.ExternalFaces()
}

// TestPackFacesOpaqueFirst verifies opaque vertices precede translucent ones
// and the counts add up to the full buffer.
func TestPackFacesOpaqueFirst(t *testing.T) {
	verts, opaque, translucent := packFaces(buildTestFaces())

	// Two isolated blocks, 6 faces each, 6 vertices per face.
	if opaque != 36 {
		t.Errorf("Expected 36 opaque vertices, got %d", opaque)
	}
	if translucent != 36 {
		t.Errorf("Expected 36 translucent vertices, got %d", translucent)
	}
	if len(verts) != int(opaque+translucent)*vertexFloats {
		t.Errorf("Vertex buffer length %d does not match %d vertices", len(verts), opaque+translucent)
	}

	stone := world.MaterialStone.Attributes().Color
	leaf := world.MaterialTreeLeaf.Attributes().Color
	for v := 0; v < int(opaque); v++ {
		base := v * vertexFloats
		if verts[base+6] != stone.X() || verts[base+7] != stone.Y() || verts[base+8] != stone.Z() {
			t.Fatalf("Opaque vertex %d does not carry the stone color", v)
		}
	}
	for v := int(opaque); v < int(opaque+translucent); v++ {
		base := v * vertexFloats
		if verts[base+6] != leaf.X() || verts[base+7] != leaf.Y() || verts[base+8] != leaf.Z() {
			t.Fatalf("Translucent vertex %d does not carry the leaf color", v)
		}
	}
}

// TestPackFacesEmpty verifies an empty face list packs to an empty buffer
func TestPackFacesEmpty(t *testing.T) {
	verts, opaque, translucent := packFaces(nil)
	if len(verts) != 0 || opaque != 0 || translucent != 0 {
		t.Errorf("Expected empty packing, got %d floats, %d opaque, %d translucent", len(verts), opaque, translucent)
	}
}
