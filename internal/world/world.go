package world

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"terracraft/internal/config"
)

// World owns the chunk map and coordinates its two writers: bootstrap
// generation and the background update pass. A single readers/writer
// guard covers every mutation of the map or of any chunk's materials;
// renderers read only data handed off while the guard was held, so they
// may run one frame behind the latest edit but never observe a map that
// is being restructured.
//
// Unless noted otherwise, methods assume the caller holds the chunk
// guard. UpdateChunks is the exception: it is the background job payload
// and takes the guard in write mode itself, for the whole pass.
type World struct {
	seed  uint64
	store *ChunkStore
	gen   *RegionGenerator

	chunkLock sync.RWMutex

	// Chunks whose face lists are stale.
	dirty map[ChunkCoord]*Chunk
	// Chunks rebuilt since the foreground last polled.
	updated []*Chunk

	// Region origins, in world units, keyed as {x,z}.
	generated      map[[2]int]struct{}
	pendingRegions map[[2]int]struct{}
}

// NewWorld creates a world from a seed and eagerly generates the
// configured bootstrap area around the origin, with face lists built, so
// the first drain hands the renderer a complete initial scene.
func NewWorld(seed uint64) *World {
	w := &World{
		seed:           seed,
		store:          NewChunkStore(),
		gen:            NewRegionGenerator(seed),
		dirty:          make(map[ChunkCoord]*Chunk),
		generated:      make(map[[2]int]struct{}),
		pendingRegions: make(map[[2]int]struct{}),
	}

	radius := config.GetBootstrapRegionRadius()
	w.chunkLock.Lock()
	for rx := -radius; rx <= radius; rx++ {
		for rz := -radius; rz <= radius; rz++ {
			w.generateRegionLocked(rx*RegionSize, rz*RegionSize)
		}
	}
	w.rebuildDirtyLocked()
	w.chunkLock.Unlock()

	return w
}

// Seed returns the world seed.
func (w *World) Seed() uint64 {
	return w.seed
}

// ChunkLock returns the guard protecting the chunk map and all block
// mutation.
func (w *World) ChunkLock() *sync.RWMutex {
	return &w.chunkLock
}

// Store exposes the chunk map for readers that hold the guard.
func (w *World) Store() *ChunkStore {
	return w.store
}

// ChunkAt returns the chunk at the given coordinate, or nil.
func (w *World) ChunkAt(coord ChunkCoord) *Chunk {
	return w.store.At(coord)
}

// MaterialAt returns the material at a world-space block position.
func (w *World) MaterialAt(x, y, z int) BlockMaterial {
	return w.store.MaterialAt(x, y, z)
}

// SetBlockMaterial writes one block and marks the owning chunk dirty.
// This is the only external mutation entry point into the block grid;
// writes into not-yet-loaded space materialize an air chunk first.
func (w *World) SetBlockMaterial(x, y, z int, m BlockMaterial) {
	c := w.store.Ensure(ChunkCoordAt(x, y, z))
	c.SetMaterial(mod(x, ChunkSizeX), mod(y, ChunkSizeY), mod(z, ChunkSizeZ), m)
	w.MarkChunkForUpdate(c)
}

// MarkChunkForUpdate queues a chunk for the next background rebuild.
// Dirtiness is never lost: a chunk stays queued until a pass runs.
func (w *World) MarkChunkForUpdate(c *Chunk) {
	w.dirty[c.coord] = c
}

// Tick advances the world for one frame. It only queues work: regions
// within the configured view radius of the camera that have not been
// generated are noted for the background job. Nothing here blocks.
func (w *World) Tick(cameraPosition mgl32.Vec3) {
	camRegionX := floorDiv(int(math.Floor(float64(cameraPosition.X()))), RegionSize)
	camRegionZ := floorDiv(int(math.Floor(float64(cameraPosition.Z()))), RegionSize)

	radius := config.GetRegionViewRadius()
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			key := [2]int{(camRegionX + dx) * RegionSize, (camRegionZ + dz) * RegionSize}
			if _, ok := w.generated[key]; ok {
				continue
			}
			w.pendingRegions[key] = struct{}{}
		}
	}
}

// ChunkUpdateNeeded reports whether a background pass has anything to do.
func (w *World) ChunkUpdateNeeded() bool {
	return len(w.dirty) > 0 || len(w.pendingRegions) > 0
}

// TakeUpdatedChunks returns the chunks rebuilt since the last poll and
// clears the list.
func (w *World) TakeUpdatedChunks() []*Chunk {
	out := w.updated
	w.updated = nil
	return out
}

// UpdateChunks is the background job payload: it generates any pending
// regions and rebuilds the face lists of all dirty chunks. It holds the
// chunk guard in write mode for the whole pass, so the foreground's
// try-lock poll fails while it runs and a second job can never be
// scheduled concurrently.
func (w *World) UpdateChunks() {
	w.chunkLock.Lock()
	defer w.chunkLock.Unlock()

	for key := range w.pendingRegions {
		delete(w.pendingRegions, key)
		w.generateRegionLocked(key[0], key[1])
	}
	w.rebuildDirtyLocked()
}

func (w *World) generateRegionLocked(regionX, regionZ int) {
	key := [2]int{regionX, regionZ}
	if _, ok := w.generated[key]; ok {
		return
	}
	for _, c := range w.gen.GenerateRegion(regionX, regionZ) {
		stored := w.store.Insert(c)
		w.MarkChunkForUpdate(stored)
	}
	w.generated[key] = struct{}{}
}

func (w *World) rebuildDirtyLocked() {
	for coord, c := range w.dirty {
		c.RebuildExternalFaces()
		delete(w.dirty, coord)
		w.updated = append(w.updated, c)
	}
}

// SurfaceHeightAt scans down for the topmost non-air block of a column.
// Used for spawn placement.
func (w *World) SurfaceHeightAt(x, z int) int {
	for y := maxGeneratedHeight; y >= 0; y-- {
		if w.store.MaterialAt(x, y, z) != MaterialAir {
			return y
		}
	}
	return 0
}
