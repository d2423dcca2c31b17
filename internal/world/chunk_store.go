package world

// ChunkStore owns the chunk map: at most one chunk per coordinate.
// It does no locking of its own; every access happens under the world's
// chunk guard. The map only grows; unloading is an explicit policy the
// engine does not implement.
type ChunkStore struct {
	chunks   map[ChunkCoord]*Chunk
	modCount uint64
}

// NewChunkStore creates an empty store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// At returns the chunk at the given coordinate, or nil.
func (s *ChunkStore) At(coord ChunkCoord) *Chunk {
	return s.chunks[coord]
}

// Ensure returns the chunk at the given coordinate, creating an all-air
// chunk if none exists yet.
func (s *ChunkStore) Ensure(coord ChunkCoord) *Chunk {
	if c, ok := s.chunks[coord]; ok {
		return c
	}
	c := NewChunk(coord)
	s.chunks[coord] = c
	s.modCount++
	return c
}

// Insert adds a pre-built chunk, keeping the first chunk on conflict.
// Returns the chunk now stored at the coordinate.
func (s *ChunkStore) Insert(c *Chunk) *Chunk {
	if existing, ok := s.chunks[c.coord]; ok {
		return existing
	}
	s.chunks[c.coord] = c
	s.modCount++
	return c
}

// MaterialAt returns the material at a world-space block position.
// Positions in unloaded chunks read as air.
func (s *ChunkStore) MaterialAt(x, y, z int) BlockMaterial {
	c := s.chunks[ChunkCoordAt(x, y, z)]
	if c == nil {
		return MaterialAir
	}
	return c.Material(mod(x, ChunkSizeX), mod(y, ChunkSizeY), mod(z, ChunkSizeZ))
}

// Len returns the number of stored chunks.
func (s *ChunkStore) Len() int {
	return len(s.chunks)
}

// ModCount returns the map's modification count; it increases whenever
// a chunk is added.
func (s *ChunkStore) ModCount() uint64 {
	return s.modCount
}

// ForEach visits every stored chunk. Iteration order is unspecified.
func (s *ChunkStore) ForEach(fn func(*Chunk)) {
	for _, c := range s.chunks {
		fn(c)
	}
}
