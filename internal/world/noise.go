package world

// Deterministic seed mixing and lattice hashing for the noise fields.
// Everything here is a pure function of its inputs: identical seeds and
// coordinates always yield identical values, independent of call order
// or goroutine.

// splitmix64 is the SplitMix64 finalizer. It supplies the avalanche the
// raw coordinate arithmetic lacks.
func splitmix64(v uint64) uint64 {
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// mixSeed2 derives a sub-seed from a seed and a 2D integer coordinate.
func mixSeed2(seed uint64, x, z int) uint64 {
	v := seed
	v = splitmix64(v ^ uint64(int64(x)))
	v = splitmix64(v ^ uint64(int64(z)))
	return v
}

// mixSeed3 derives a sub-seed from a seed and a 3D integer coordinate.
func mixSeed3(seed uint64, x, y, z int) uint64 {
	v := seed
	v = splitmix64(v ^ uint64(int64(x)))
	v = splitmix64(v ^ uint64(int64(y)))
	return splitmix64(v ^ uint64(int64(z)))
}

// latticeValue3 maps a seeded 3D lattice vertex to [0,1].
func latticeValue3(seed uint64, x, y, z int) float64 {
	h := mixSeed3(seed, x, y, z)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// seedStream is a tiny deterministic value stream used wherever several
// pseudorandom draws must happen in a fixed, reproducible order (patch
// corner features, tree placement). It is a SplitMix64 sequence.
type seedStream struct {
	state uint64
}

func newSeedStream(seed uint64) *seedStream {
	return &seedStream{state: seed}
}

func (s *seedStream) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	v := s.state
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// nextFloat returns the next value in [0,1).
func (s *seedStream) nextFloat() float64 {
	return float64(s.next()>>11) / float64(1<<53)
}

// nextInRange returns the next value in [min,max).
func (s *seedStream) nextInRange(min, max float64) float64 {
	return min + s.nextFloat()*(max-min)
}

// nextIntInRange returns the next integer in [min,max], inclusive.
func (s *seedStream) nextIntInRange(min, max int) int {
	return min + int(s.next()%uint64(max-min+1))
}
