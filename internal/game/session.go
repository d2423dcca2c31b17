package game

import (
	"fmt"
	"math"

	"terracraft/internal/config"
	"terracraft/internal/graphics/renderables/blocks"
	"terracraft/internal/graphics/renderables/crosshair"
	"terracraft/internal/graphics/renderables/hud"
	"terracraft/internal/graphics/renderer"
	"terracraft/internal/player"
	"terracraft/internal/profiling"
	"terracraft/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// editReach is how far ahead of the camera click edits land, in world units.
const editReach = 4.0

// Session owns one running game: world, player, renderer and the background
// chunk updater, plus the frame protocol that ties them together.
//
// Each frame runs three phases. Drain-and-apply and the work poll both
// happen inside a single try-lock window, so the frame never blocks on the
// chunk guard: while the background job holds it, the frame simply skips
// world work and renders the previous hand-off.
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	Blocks   *blocks.Blocks
	HUD      *hud.HUD
	Player   *player.Player
	World    *world.World
	Updater  *world.ChunkUpdater

	// Click edits queued by input callbacks, applied under the guard.
	pendingEdits []blockEdit
}

type blockEdit struct {
	x, y, z  int
	material world.BlockMaterial
}

func NewSession(window *glfw.Window) (*Session, error) {
	gameWorld := world.NewWorld(config.GetWorldSeed())

	width, height := window.GetSize()

	s := &Session{
		Window:  window,
		World:   gameWorld,
		Updater: world.NewChunkUpdater(),
		Blocks:  blocks.NewBlocks(),
	}
	s.HUD = hud.NewHUD(width, height, s.statLines)

	r, err := renderer.NewRenderer(
		width, height,
		s.Blocks,
		crosshair.NewCrosshair(),
		s.HUD,
	)
	if err != nil {
		return nil, err
	}
	s.Renderer = r

	// Spawn above the terrain surface at the origin column.
	spawnX, spawnZ := 8, 8
	groundY := func() int {
		gameWorld.ChunkLock().RLock()
		defer gameWorld.ChunkLock().RUnlock()
		return gameWorld.SurfaceHeightAt(spawnX, spawnZ)
	}()
	s.Player = player.NewPlayer(mgl32.Vec3{float32(spawnX), float32(groundY) + 4, float32(spawnZ)})

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	r.UpdateViewport(width, height)

	return s, nil
}

// Cleanup stops the background worker and releases render resources. The
// updater is closed first so no job touches the world during teardown.
func (s *Session) Cleanup() {
	s.Updater.Close()
	s.Renderer.Dispose()

	s.World = nil
	s.Player = nil
	s.Renderer = nil
}

// Update advances one frame of simulation.
func (s *Session) Update(dt float64) {
	func() {
		defer profiling.Track("player.Update")()
		s.Player.Update(dt, s.Window)
	}()

	s.processWorldUpdates()
}

// processWorldUpdates is the non-blocking half of the chunk protocol. It
// acquires the guard with a try-lock; on failure the background pass is
// still running and everything here waits for a later frame. Dirtiness is
// never lost by skipping: the queues live in the world and survive until a
// pass runs.
func (s *Session) processWorldUpdates() {
	defer profiling.Track("session.worldUpdates")()

	lock := s.World.ChunkLock()
	if !lock.TryLock() {
		return
	}
	defer lock.Unlock()

	// Queue view-driven region generation and apply queued click edits.
	s.World.Tick(s.Player.Position)
	for _, e := range s.pendingEdits {
		s.World.SetBlockMaterial(e.x, e.y, e.z, e.material)
	}
	s.pendingEdits = s.pendingEdits[:0]

	if !s.Updater.Idle() {
		return
	}

	// The previous job is done: hand its output to the renderer, then
	// schedule the next pass if anything is queued.
	if updated := s.World.TakeUpdatedChunks(); len(updated) > 0 {
		s.Blocks.NoteChunkChanges(updated)
	}
	if s.World.ChunkUpdateNeeded() {
		s.Updater.Schedule(s.World.UpdateChunks)
	}
}

// Render draws one frame. It takes no locks; all chunk data it touches was
// handed off by processWorldUpdates.
func (s *Session) Render(dt float64) {
	s.Renderer.Render(s.World, s.Player, dt)
}

// HandleMouseButton turns clicks into block edits at the aimed cell: left
// click breaks (sets air), right click places grass. Edits are queued and
// applied under the chunk guard on the next frame.
func (s *Session) HandleMouseButton(button glfw.MouseButton, action glfw.Action) {
	if action != glfw.Press {
		return
	}

	target := s.Player.Position.Add(s.Player.GetFrontVector().Mul(editReach))
	x := int(math.Floor(float64(target.X())))
	y := int(math.Floor(float64(target.Y())))
	z := int(math.Floor(float64(target.Z())))

	switch button {
	case glfw.MouseButtonLeft:
		s.pendingEdits = append(s.pendingEdits, blockEdit{x, y, z, world.MaterialAir})
	case glfw.MouseButtonRight:
		s.pendingEdits = append(s.pendingEdits, blockEdit{x, y, z, world.MaterialGrass})
	}
}

// statLines feeds the debug overlay.
func (s *Session) statLines() []string {
	state := "idle"
	if !s.Updater.Idle() {
		state = "busy"
	}
	return []string{
		fmt.Sprintf("Meshes: %d", s.Blocks.MeshCount()),
		fmt.Sprintf("Triangles: %d", s.Blocks.TriangleCount()),
		fmt.Sprintf("Updater: %s", state),
	}
}
