package world

import (
	"crypto/sha256"
	"sort"
	"testing"
)

// hashChunkBlocks computes a SHA-256 hash of all blocks in a chunk
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < ChunkSizeY; y++ {
			for z := 0; z < ChunkSizeZ; z++ {
				h.Write([]byte{byte(c.Material(x, y, z))})
			}
		}
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

// hashRegion hashes a region's chunks in coordinate order, so two runs can
// be compared regardless of generation order.
func hashRegion(chunks []*Chunk) map[ChunkCoord][32]byte {
	out := make(map[ChunkCoord][32]byte, len(chunks))
	for _, c := range chunks {
		out[c.Coord()] = hashChunkBlocks(c)
	}
	return out
}

// TestGenerateRegionDeterministic verifies same seed and position produce identical blocks
func TestGenerateRegionDeterministic(t *testing.T) {
	seed := uint64(12345)

	h1 := hashRegion(NewRegionGenerator(seed).GenerateRegion(0, 0))
	h2 := hashRegion(NewRegionGenerator(seed).GenerateRegion(0, 0))

	if len(h1) != len(h2) {
		t.Fatalf("Chunk counts differ between runs: %d != %d", len(h1), len(h2))
	}
	for coord, hash := range h1 {
		if h2[coord] != hash {
			t.Errorf("Chunk %v not deterministic between runs", coord)
		}
	}
}

// TestGenerateRegionDeterministicAwayFromOrigin verifies world coordinates are
// used correctly for regions with negative and offset origins.
func TestGenerateRegionDeterministicAwayFromOrigin(t *testing.T) {
	seed := uint64(12345)
	origins := [][2]int{
		{RegionSize, 0},
		{0, -RegionSize},
		{-RegionSize, -RegionSize},
		{3 * RegionSize, -2 * RegionSize},
	}

	for _, o := range origins {
		h1 := hashRegion(NewRegionGenerator(seed).GenerateRegion(o[0], o[1]))
		h2 := hashRegion(NewRegionGenerator(seed).GenerateRegion(o[0], o[1]))
		for coord, hash := range h1 {
			if h2[coord] != hash {
				t.Errorf("Region (%d,%d) chunk %v not deterministic", o[0], o[1], coord)
			}
		}
	}
}

// TestGenerateRegionCoversAllColumns verifies every chunk column of the region
// footprint is present and vertically gapless from level zero.
func TestGenerateRegionCoversAllColumns(t *testing.T) {
	chunks := NewRegionGenerator(1337).GenerateRegion(0, 0)

	levels := make(map[[2]int][]int)
	for _, c := range chunks {
		coord := c.Coord()
		key := [2]int{coord.X, coord.Z}
		levels[key] = append(levels[key], coord.Y)
	}

	expected := ChunkColumnsPerRegionEdge * ChunkColumnsPerRegionEdge
	if len(levels) != expected {
		t.Fatalf("Expected %d chunk columns, got %d", expected, len(levels))
	}

	for key, ys := range levels {
		sort.Ints(ys)
		for i, y := range ys {
			if y != i {
				t.Errorf("Column %v has gap in chunk stack: levels %v", key, ys)
				break
			}
		}
	}
}

// TestGenerateRegionMagmaFloor verifies the bottom of every block column is
// magma and never cave-carved. Only level zero stays magma: each layer
// fills from the previous top inclusive, so bedrock reclaims the magma
// layer's top at level one.
func TestGenerateRegionMagmaFloor(t *testing.T) {
	chunks := NewRegionGenerator(1337).GenerateRegion(0, 0)

	for _, c := range chunks {
		if c.Coord().Y != 0 {
			continue
		}
		for x := 0; x < ChunkSizeX; x++ {
			for z := 0; z < ChunkSizeZ; z++ {
				if m := c.Material(x, 0, z); m != MaterialMagma {
					t.Errorf("Expected magma at local (%d,0,%d) of chunk %v, got %v",
						x, z, c.Coord(), m)
				}
			}
		}
	}
}

// TestGenerateRegionDeepAirIsCave verifies that air inside the bedrock band can
// only come from the cave carver: every deep air cell re-samples inside the
// carving band in both density fields.
func TestGenerateRegionDeepAirIsCave(t *testing.T) {
	seed := uint64(1337)
	g := NewRegionGenerator(seed)
	chunks := g.GenerateRegion(0, 0)
	features := NewRegionFeatures(seed, 0, 0)

	// Bedrock starts at the magma top (level 1) and tops out at
	// 20 + elevation/4 with elevation >= 0, so heights 1 through 20 are
	// solid bedrock in every column unless carved.
	for _, c := range chunks {
		if c.Coord().Y > 20/ChunkSizeY {
			continue
		}
		baseX, baseY, baseZ := c.Coord().WorldPosition()
		for x := 0; x < ChunkSizeX; x++ {
			for y := 0; y < ChunkSizeY; y++ {
				worldY := baseY + y
				if worldY < 1 || worldY > 20 {
					continue
				}
				for z := 0; z < ChunkSizeZ; z++ {
					if c.Material(x, y, z) != MaterialAir {
						continue
					}
					if !g.isCave(features, baseX+x, worldY, baseZ+z) {
						t.Errorf("Deep air at world (%d,%d,%d) is not inside the carving band",
							baseX+x, worldY, baseZ+z)
					}
				}
			}
		}
	}
}

// TestGenerateRegionTreeTrunksStandOnGrass verifies every trunk base sits on a
// grass block.
func TestGenerateRegionTreeTrunksStandOnGrass(t *testing.T) {
	chunks := NewRegionGenerator(0xeaafa35aaa8eafdf).GenerateRegion(0, 0)

	store := NewChunkStore()
	for _, c := range chunks {
		store.Insert(c)
	}

	trunks := 0
	for _, c := range chunks {
		baseX, baseY, baseZ := c.Coord().WorldPosition()
		for x := 0; x < ChunkSizeX; x++ {
			for y := 0; y < ChunkSizeY; y++ {
				for z := 0; z < ChunkSizeZ; z++ {
					if c.Material(x, y, z) != MaterialTreeTrunk {
						continue
					}
					wx, wy, wz := baseX+x, baseY+y, baseZ+z
					below := store.MaterialAt(wx, wy-1, wz)
					if below == MaterialTreeTrunk {
						continue // interior trunk segment
					}
					trunks++
					if below != MaterialGrass {
						t.Errorf("Trunk base at world (%d,%d,%d) stands on %v, expected grass", wx, wy, wz, below)
					}
				}
			}
		}
	}

	if trunks == 0 {
		t.Errorf("Expected at least one tree in the region, found none")
	}
}

// TestGenerateRegionEndToEnd runs the full pipeline twice on the default world
// seed and compares aggregate results between the runs.
func TestGenerateRegionEndToEnd(t *testing.T) {
	const seed = uint64(0xeaafa35aaa8eafdf)

	type summary struct {
		chunkCount  int
		nonAirCount int
		treeColumns map[[2]int]bool
	}

	run := func() summary {
		chunks := NewRegionGenerator(seed).GenerateRegion(0, 0)
		s := summary{chunkCount: len(chunks), treeColumns: make(map[[2]int]bool)}
		for _, c := range chunks {
			baseX, _, baseZ := c.Coord().WorldPosition()
			for x := 0; x < ChunkSizeX; x++ {
				for y := 0; y < ChunkSizeY; y++ {
					for z := 0; z < ChunkSizeZ; z++ {
						switch c.Material(x, y, z) {
						case MaterialAir:
						case MaterialTreeTrunk:
							s.nonAirCount++
							s.treeColumns[[2]int{baseX + x, baseZ + z}] = true
						default:
							s.nonAirCount++
						}
					}
				}
			}
		}
		return s
	}

	s1 := run()
	s2 := run()

	if s1.chunkCount != s2.chunkCount {
		t.Errorf("Chunk count differs between runs: %d != %d", s1.chunkCount, s2.chunkCount)
	}
	if s1.nonAirCount != s2.nonAirCount {
		t.Errorf("Non-air block count differs between runs: %d != %d", s1.nonAirCount, s2.nonAirCount)
	}
	if len(s1.treeColumns) != len(s2.treeColumns) {
		t.Errorf("Tree column count differs between runs: %d != %d", len(s1.treeColumns), len(s2.treeColumns))
	}
	for col := range s1.treeColumns {
		if !s2.treeColumns[col] {
			t.Errorf("Tree column %v present in run 1 but not run 2", col)
		}
	}
	if s1.nonAirCount == 0 {
		t.Errorf("Expected terrain to have non-air blocks, got all air")
	}
}

// BenchmarkGenerateRegion measures full region generation performance
func BenchmarkGenerateRegion(b *testing.B) {
	g := NewRegionGenerator(12345)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.GenerateRegion((i%8)*RegionSize, 0)
	}
}
