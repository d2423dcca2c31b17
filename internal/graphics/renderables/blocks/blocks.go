package blocks

import (
	"terracraft/internal/config"
	"terracraft/internal/graphics"
	"terracraft/internal/graphics/renderer"
	"terracraft/internal/profiling"
	"terracraft/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Blocks renders the world's chunk meshes. It keeps one GPU mesh per chunk,
// rebuilt only when the game loop hands over a freshly updated chunk; Render
// itself never touches chunk block data.
type Blocks struct {
	shader *graphics.Shader
	meshes map[world.ChunkCoord]*chunkMesh
}

// NewBlocks creates the blocks renderable
func NewBlocks() *Blocks {
	return &Blocks{
		meshes: make(map[world.ChunkCoord]*chunkMesh),
	}
}

// Init compiles the block shader
func (b *Blocks) Init() error {
	var err error
	b.shader, err = graphics.NewShader(mainVertSrc, mainFragSrc)
	if err != nil {
		return err
	}

	b.shader.Use()
	light := mgl32.Vec3{0.3, 1.0, 0.3}.Normalize()
	b.shader.SetVector3("lightDir", light.X(), light.Y(), light.Z())

	return nil
}

// NoteChunkChanges replaces the GPU meshes of the given chunks from their
// current face lists. Must be called on the GL thread, with the chunks'
// faces already rebuilt.
func (b *Blocks) NoteChunkChanges(chunks []*world.Chunk) {
	defer profiling.Track("blocks.NoteChunkChanges")()

	for _, c := range chunks {
		coord := c.Coord()
		verts, opaque, translucent := packFaces(c.ExternalFaces())

		m := b.meshes[coord]
		if opaque == 0 && translucent == 0 {
			if m != nil {
				b.deleteMesh(m)
				delete(b.meshes, coord)
			}
			continue
		}

		if m == nil {
			m = &chunkMesh{}
			gl.GenVertexArrays(1, &m.vao)
			gl.GenBuffers(1, &m.vbo)

			gl.BindVertexArray(m.vao)
			gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
			stride := int32(vertexFloats * 4)
			gl.EnableVertexAttribArray(0)
			gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
			gl.EnableVertexAttribArray(1)
			gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
			gl.EnableVertexAttribArray(2)
			gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
			gl.EnableVertexAttribArray(3)
			gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, gl.PtrOffset(9*4))
			b.meshes[coord] = m
		} else {
			gl.BindVertexArray(m.vao)
			gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		}

		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
		m.opaqueCount = opaque
		m.translucentFirst = opaque
		m.translucentCount = translucent
	}

	gl.BindVertexArray(0)
}

// Render draws all chunk meshes intersecting the view frustum: first the
// opaque geometry, then translucent geometry with blending and a read-only
// depth buffer.
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("blocks.Render")()

	b.shader.Use()
	b.shader.SetMatrix4("proj", &ctx.Proj[0])
	b.shader.SetMatrix4("view", &ctx.View[0])

	planes := extractFrustumPlanes(ctx.Proj.Mul4(ctx.View))

	// Horizontal cutoff in world units, squared for the comparison.
	maxDist := float32(config.GetRenderDistance() * world.ChunkSizeX)
	maxDistSq := maxDist * maxDist
	camX := ctx.Player.Position.X()
	camZ := ctx.Player.Position.Z()

	visible := make([]*chunkMesh, 0, len(b.meshes))
	for coord, m := range b.meshes {
		x, y, z := coord.WorldPosition()

		cx := float32(x) + world.ChunkSizeX/2 - camX
		cz := float32(z) + world.ChunkSizeZ/2 - camZ
		if cx*cx+cz*cz > maxDistSq {
			continue
		}

		minx := float32(x) - frustumMargin
		miny := float32(y) - frustumMargin
		minz := float32(z) - frustumMargin
		maxx := float32(x+world.ChunkSizeX) + frustumMargin
		maxy := float32(y+world.ChunkSizeY) + frustumMargin
		maxz := float32(z+world.ChunkSizeZ) + frustumMargin
		if aabbIntersectsFrustum(minx, miny, minz, maxx, maxy, maxz, planes) {
			visible = append(visible, m)
		}
	}

	// Opaque pass
	b.shader.SetFloat("alpha", 1.0)
	for _, m := range visible {
		if m.opaqueCount == 0 {
			continue
		}
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.opaqueCount)
	}

	// Translucent pass
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	b.shader.SetFloat("alpha", 0.6)
	for _, m := range visible {
		if m.translucentCount == 0 {
			continue
		}
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, m.translucentFirst, m.translucentCount)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
}

// MeshCount returns the number of resident chunk meshes.
func (b *Blocks) MeshCount() int {
	return len(b.meshes)
}

// TriangleCount returns the total triangles across all resident meshes.
func (b *Blocks) TriangleCount() int {
	total := int32(0)
	for _, m := range b.meshes {
		total += m.opaqueCount + m.translucentCount
	}
	return int(total / 3)
}

// Dispose releases all GL objects
func (b *Blocks) Dispose() {
	for coord, m := range b.meshes {
		b.deleteMesh(m)
		delete(b.meshes, coord)
	}
	if b.shader != nil {
		b.shader.Delete()
	}
}

// SetViewport is a no-op; block rendering has no screen-space state.
func (b *Blocks) SetViewport(width, height int) {}

func (b *Blocks) deleteMesh(m *chunkMesh) {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
