package world

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"terracraft/internal/config"
)

// newTestWorld builds a world with a single bootstrap region so tests stay fast.
func newTestWorld(t *testing.T, seed uint64) *World {
	t.Helper()
	prev := config.GetBootstrapRegionRadius()
	config.SetBootstrapRegionRadius(0)
	t.Cleanup(func() { config.SetBootstrapRegionRadius(prev) })
	return NewWorld(seed)
}

// drainUpdated empties the world's updated list under the chunk guard.
func drainUpdated(w *World) []*Chunk {
	w.ChunkLock().Lock()
	defer w.ChunkLock().Unlock()
	return w.TakeUpdatedChunks()
}

// TestNewWorldBootstrap verifies startup generates terrain around the origin
// with face lists already built.
func TestNewWorldBootstrap(t *testing.T) {
	w := newTestWorld(t, 12345)

	updated := drainUpdated(w)
	if len(updated) == 0 {
		t.Fatalf("Expected bootstrap to hand over rebuilt chunks, got none")
	}
	for _, c := range updated {
		if !c.FacesValid() {
			t.Errorf("Bootstrap chunk %v handed over without valid faces", c.Coord())
		}
	}

	w.ChunkLock().RLock()
	defer w.ChunkLock().RUnlock()

	// The handover covers the whole store: nothing bootstrapped is left
	// with stale faces.
	stored := 0
	w.Store().ForEach(func(c *Chunk) {
		stored++
		if !c.FacesValid() {
			t.Errorf("Stored chunk %v has stale faces after bootstrap", c.Coord())
		}
	})
	if stored != len(updated) {
		t.Errorf("Store holds %d chunks but bootstrap handed over %d", stored, len(updated))
	}

	if h := w.SurfaceHeightAt(8, 8); h <= 0 {
		t.Errorf("Expected terrain at the origin column, surface height %d", h)
	}
	if m := w.MaterialAt(8, 0, 8); m != MaterialMagma {
		t.Errorf("Expected magma at the world floor, got %v", m)
	}
}

// TestSetBlockMaterialMarksDirty verifies an edit queues the chunk and the
// next update pass rebuilds and hands it over exactly once.
func TestSetBlockMaterialMarksDirty(t *testing.T) {
	w := newTestWorld(t, 12345)
	drainUpdated(w)

	lock := w.ChunkLock()

	lock.Lock()
	w.SetBlockMaterial(8, 100, 8, MaterialStone)
	if !w.ChunkUpdateNeeded() {
		t.Errorf("Expected update needed after an edit")
	}
	lock.Unlock()

	w.UpdateChunks()

	lock.Lock()
	defer lock.Unlock()

	if w.ChunkUpdateNeeded() {
		t.Errorf("Expected no pending work after the update pass")
	}

	target := ChunkCoordAt(8, 100, 8)
	found := false
	for _, c := range w.TakeUpdatedChunks() {
		if c.Coord() == target {
			found = true
			if !c.FacesValid() {
				t.Errorf("Edited chunk handed over without valid faces")
			}
		}
	}
	if !found {
		t.Errorf("Edited chunk %v not in the updated list", target)
	}
	if m := w.MaterialAt(8, 100, 8); m != MaterialStone {
		t.Errorf("Expected stone at the edited position, got %v", m)
	}

	// The handover list is cleared by the take.
	if n := len(w.TakeUpdatedChunks()); n != 0 {
		t.Errorf("Expected empty updated list after take, got %d chunks", n)
	}
}

// TestSetBlockMaterialUnloadedSpace verifies edits into unloaded space
// materialize a chunk rather than being dropped.
func TestSetBlockMaterialUnloadedSpace(t *testing.T) {
	w := newTestWorld(t, 12345)

	lock := w.ChunkLock()
	lock.Lock()
	defer lock.Unlock()

	w.SetBlockMaterial(1000, 50, -1000, MaterialGrass)
	if m := w.MaterialAt(1000, 50, -1000); m != MaterialGrass {
		t.Errorf("Expected grass at edit in unloaded space, got %v", m)
	}
}

// TestTickQueuesViewRegions verifies moving the camera into ungenerated space
// queues the surrounding regions and the next update pass generates them.
func TestTickQueuesViewRegions(t *testing.T) {
	w := newTestWorld(t, 12345)
	drainUpdated(w)

	camX := float32(10 * RegionSize)
	camZ := float32(10 * RegionSize)

	lock := w.ChunkLock()
	lock.Lock()
	w.Tick(mgl32.Vec3{camX, 100, camZ})
	if !w.ChunkUpdateNeeded() {
		t.Errorf("Expected pending regions after camera moved into ungenerated space")
	}
	lock.Unlock()

	w.UpdateChunks()

	lock.RLock()
	defer lock.RUnlock()
	if m := w.MaterialAt(10*RegionSize+8, 0, 10*RegionSize+8); m != MaterialMagma {
		t.Errorf("Expected generated terrain under the camera, got %v at the floor", m)
	}
}

// TestTickAlreadyGeneratedIsQuiet verifies ticking over generated terrain
// queues nothing.
func TestTickAlreadyGeneratedIsQuiet(t *testing.T) {
	w := newTestWorld(t, 12345)
	drainUpdated(w)

	lock := w.ChunkLock()
	lock.Lock()
	defer lock.Unlock()

	// Radius 1 around the origin region touches neighbours that the
	// single-region bootstrap did not generate, so restrict to radius 0.
	prev := config.GetRegionViewRadius()
	config.SetRegionViewRadius(0)
	defer config.SetRegionViewRadius(prev)

	w.Tick(mgl32.Vec3{8, 100, 8})
	if w.ChunkUpdateNeeded() {
		t.Errorf("Expected no pending work ticking over generated terrain")
	}
}

// TestUpdateLoopDeliversEdits runs the foreground protocol, try-lock poll plus
// single-slot scheduling, against a live updater and verifies an edit is never
// lost: the edited chunk reaches the handover list within a bounded number of
// ticks.
func TestUpdateLoopDeliversEdits(t *testing.T) {
	w := newTestWorld(t, 12345)
	drainUpdated(w)

	u := NewChunkUpdater()
	defer u.Close()

	lock := w.ChunkLock()

	lock.Lock()
	w.SetBlockMaterial(500, 30, 500, MaterialStone)
	lock.Unlock()

	target := ChunkCoordAt(500, 30, 500)
	found := false
	for tick := 0; tick < 1000 && !found; tick++ {
		if lock.TryLock() {
			if u.Idle() {
				for _, c := range w.TakeUpdatedChunks() {
					if c.Coord() == target {
						found = true
					}
				}
				if !found && w.ChunkUpdateNeeded() {
					u.Schedule(w.UpdateChunks)
				}
			}
			lock.Unlock()
		}
		time.Sleep(time.Millisecond)
	}

	if !found {
		t.Errorf("Edited chunk %v never reached the handover list", target)
	}
}
