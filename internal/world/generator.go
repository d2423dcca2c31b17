package world

import (
	"fmt"
	"math"

	"terracraft/internal/config"
)

const (
	// ChunkColumnsPerRegionEdge is the number of chunk columns along one
	// region edge.
	ChunkColumnsPerRegionEdge = RegionSize / ChunkSizeX

	// baseElevation shifts the combined elevation so even flat feature
	// draws produce a usable terrain floor.
	baseElevation = 32.0

	// Cave carving: a cell becomes air when BOTH density fields fall
	// inside this band. Requiring two independent fields keeps the voids
	// tunnel-like instead of sheet-like.
	caveBandLow  = 0.45
	caveBandHigh = 0.55

	// maxGeneratedHeight is a hard ceiling on layer tops. The layer
	// thresholds cannot reach it for any corner feature draw in range;
	// hitting it means the feature configuration is broken, which is a
	// programming error rather than a runtime condition.
	maxGeneratedHeight = 512
)

// Tree placement bounds.
const (
	minTreeRadius = 3
	maxTreeRadius = 5
	minTreeHeight = 8
	maxTreeHeight = 24
	treesPerChunk = 1
)

// RegionGenerator deterministically maps (world seed, region position)
// to a set of populated chunks. Generation is total: every column yields
// a non-empty chunk stack, and the same inputs always reproduce the same
// blocks regardless of call order or thread.
type RegionGenerator struct {
	seed uint64

	// Captured at construction so every region of one world sees the
	// same setting.
	caves bool
}

// NewRegionGenerator creates a generator for the given world seed.
func NewRegionGenerator(seed uint64) *RegionGenerator {
	return &RegionGenerator{seed: seed, caves: config.GetCavesEnabled()}
}

// GenerateRegion populates every chunk column of the region whose origin
// is (regionX, regionZ) in world units (multiples of RegionSize).
func (g *RegionGenerator) GenerateRegion(regionX, regionZ int) []*Chunk {
	features := NewRegionFeatures(g.seed, regionX, regionZ)

	var chunks []*Chunk
	for cx := 0; cx < ChunkColumnsPerRegionEdge; cx++ {
		for cz := 0; cz < ChunkColumnsPerRegionEdge; cz++ {
			col := &chunkColumn{
				baseX: regionX + cx*ChunkSizeX,
				baseZ: regionZ + cz*ChunkSizeZ,
			}
			var heights [ChunkSizeX][ChunkSizeZ]int
			g.generateColumn(col, features, regionX, regionZ, &heights)
			g.populateTrees(col, &heights)
			chunks = append(chunks, col.chunks...)
		}
	}
	return chunks
}

// generateColumn fills one chunk column: per block column it combines the
// fundamental and octave patches into a ridged elevation, stacks the
// material layers bottom-up, and carves caves in the non-magma layers.
// The final (topmost) height of each block column lands in heights.
func (g *RegionGenerator) generateColumn(
	col *chunkColumn,
	features *RegionFeatures,
	regionX, regionZ int,
	heights *[ChunkSizeX][ChunkSizeZ]int,
) {
	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			relX := col.baseX - regionX + x
			relZ := col.baseZ - regionZ + z

			fundamental := features.FundamentalPatch().Sample(
				float64(relX)/RegionSize,
				float64(relZ)/RegionSize,
			)

			octavePatch := features.OctavePatch(relX/BicubicOctaveEdge, relZ/BicubicOctaveEdge)
			octave := octavePatch.Sample(
				float64(relX%BicubicOctaveEdge)/BicubicOctaveEdge,
				float64(relZ%BicubicOctaveEdge)/BicubicOctaveEdge,
			)

			// Subtracting |octave| instead of adding the raw octave
			// turns the detail field into ridges rather than dunes.
			elevation := baseElevation + fundamental - math.Abs(octave)

			layers := [...]struct {
				material BlockMaterial
				top      float64
			}{
				{MaterialMagma, 1.0},
				{MaterialBedrock, 20.0 + elevation*0.25},
				{MaterialStone, 52.0 + elevation},
				{MaterialClay, 58.0 + elevation},
				{MaterialDirt, 62.0 + elevation},
				{MaterialGrass, 63.0 + elevation},
			}

			bottom := 0
			for _, layer := range layers {
				// Each layer tops out at least one unit above the
				// previous one, so the stack always makes progress.
				top := int(math.Round(math.Max(layer.top, float64(bottom+1))))
				if top > maxGeneratedHeight {
					panic(fmt.Sprintf("world: layer %s top %d exceeds ceiling %d", layer.material, top, maxGeneratedHeight))
				}

				for y := bottom; y <= top; y++ {
					m := layer.material
					if g.caves && m != MaterialMagma && g.isCave(features, relX, y, relZ) {
						m = MaterialAir
					}
					col.setMaterial(x, y, z, m)
				}
				bottom = top
			}

			heights[x][z] = bottom
		}
	}
}

// isCave samples both density fields at the cell's normalized position
// and reports whether the cell falls inside the shared carving band.
func (g *RegionGenerator) isCave(features *RegionFeatures, relX, y, relZ int) bool {
	px := float64(relX) / RegionSize
	py := float64(y) / TrilinearBoxHeight
	pz := float64(relZ) / RegionSize

	a := features.Box(0).Sample(px, py, pz)
	if a <= caveBandLow || a >= caveBandHigh {
		return false
	}
	b := features.Box(1).Sample(px, py, pz)
	return b > caveBandLow && b < caveBandHigh
}

// populateTrees places up to treesPerChunk trees on the column footprint.
// The pseudorandom stream is seeded from (world seed, column position)
// and drawn in a fixed order (x, z, height, radius), so the same column
// always yields the same trees regardless of generation order. A site
// whose base block is not grass is silently skipped, not retried.
func (g *RegionGenerator) populateTrees(col *chunkColumn, heights *[ChunkSizeX][ChunkSizeZ]int) {
	stream := newSeedStream(mixSeed2(g.seed, col.baseX, col.baseZ))

	for i := 0; i < treesPerChunk; i++ {
		// Keep the canopy off the chunk edge so a tree never writes
		// outside its own column footprint.
		x := stream.nextIntInRange(maxTreeRadius, ChunkSizeX-maxTreeRadius-1)
		z := stream.nextIntInRange(maxTreeRadius, ChunkSizeZ-maxTreeRadius-1)
		height := stream.nextIntInRange(minTreeHeight, maxTreeHeight)
		radius := stream.nextIntInRange(minTreeRadius, maxTreeRadius)

		base := heights[x][z]
		if col.material(x, base, z) != MaterialGrass {
			continue
		}

		for y := 1; y < height; y++ {
			col.setMaterial(x, base+y, z, MaterialTreeTrunk)

			// The canopy starts radius+1 levels below the crown and
			// shrinks by one ring per level going up.
			leafLevel := y - (height - radius - 1)
			if leafLevel < 0 {
				continue
			}
			for u := -radius + leafLevel; u <= radius-leafLevel; u++ {
				for v := -radius + leafLevel; v <= radius-leafLevel; v++ {
					if u == 0 && v == 0 {
						continue
					}
					// Leaves fill air only; they never replace the
					// trunk or terrain.
					if col.material(x+u, base+y, z+v) == MaterialAir {
						col.setMaterial(x+u, base+y, z+v, MaterialTreeLeaf)
					}
				}
			}
		}
	}
}

// chunkColumn is the working set of vertically stacked chunks for one
// column footprint. Chunks materialize lazily: writing a cell whose
// vertical slot has no chunk yet allocates one (and any skipped slots
// below it) before the write proceeds.
type chunkColumn struct {
	baseX, baseZ int
	chunks       []*Chunk
}

func (c *chunkColumn) ensure(level int) *Chunk {
	for len(c.chunks) <= level {
		coord := ChunkCoord{
			X: floorDiv(c.baseX, ChunkSizeX),
			Y: len(c.chunks),
			Z: floorDiv(c.baseZ, ChunkSizeZ),
		}
		c.chunks = append(c.chunks, NewChunk(coord))
	}
	return c.chunks[level]
}

func (c *chunkColumn) setMaterial(x, y, z int, m BlockMaterial) {
	chunk := c.ensure(y / ChunkSizeY)
	chunk.SetMaterial(x, y%ChunkSizeY, z, m)
}

func (c *chunkColumn) material(x, y, z int) BlockMaterial {
	level := y / ChunkSizeY
	if level >= len(c.chunks) {
		return MaterialAir
	}
	return c.chunks[level].Material(x, y%ChunkSizeY, z)
}
