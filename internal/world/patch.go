package world

// BicubicPatch is a smooth 2D scalar field over a rectangular world-space
// domain, defined by bicubic Hermite interpolation between four seeded
// corner descriptors. Corner values are drawn from a stream seeded by the
// corner's world coordinates, so patches that share a corner (adjacent
// regions, adjacent octave tiles) agree on that corner's attributes and
// the surface stays continuous across patch edges.

// CornerFeatures bounds the pseudorandom draw for one patch corner: a
// value range for elevation and three independent ranges for the
// directional derivatives.
type CornerFeatures struct {
	ValueRange  [2]float64
	GradXRange  [2]float64
	GradZRange  [2]float64
	GradXZRange [2]float64
}

// PatchFeatures holds the corner descriptors indexed by [x][z] corner.
type PatchFeatures struct {
	Corners [2][2]CornerFeatures
}

// UniformPatchFeatures builds features with the same descriptor at all
// four corners.
func UniformPatchFeatures(c CornerFeatures) PatchFeatures {
	return PatchFeatures{Corners: [2][2]CornerFeatures{{c, c}, {c, c}}}
}

// BicubicPatch holds the precomputed coefficient matrix for one patch.
// Sampling is a pure function of the construction parameters.
type BicubicPatch struct {
	coeff [4][4]float64
}

// hermiteBasis is the cubic Hermite blending matrix.
var hermiteBasis = [4][4]float64{
	{1, 0, 0, 0},
	{0, 0, 1, 0},
	{-3, 3, -2, -1},
	{2, -2, 1, 1},
}

// NewBicubicPatch constructs a patch over [origin, origin+size) in world
// units. Corner attributes are drawn in a fixed order (value, then the
// x, z, and xz derivatives) from a stream seeded by (seed, corner world
// position).
func NewBicubicPatch(seed uint64, originX, originZ, sizeX, sizeZ int, features PatchFeatures) BicubicPatch {
	var f, fx, fz, fxz [2][2]float64

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			cornerX := originX + i*sizeX
			cornerZ := originZ + j*sizeZ
			stream := newSeedStream(mixSeed2(seed, cornerX, cornerZ))

			c := features.Corners[i][j]
			f[i][j] = stream.nextInRange(c.ValueRange[0], c.ValueRange[1])
			fx[i][j] = stream.nextInRange(c.GradXRange[0], c.GradXRange[1])
			fz[i][j] = stream.nextInRange(c.GradZRange[0], c.GradZRange[1])
			fxz[i][j] = stream.nextInRange(c.GradXZRange[0], c.GradXZRange[1])
		}
	}

	// Assemble the Hermite data matrix and fold the basis in from both
	// sides: coeff = B * F * B^T. Sampling then reduces to a polynomial
	// evaluation in u and v.
	data := [4][4]float64{
		{f[0][0], f[0][1], fz[0][0], fz[0][1]},
		{f[1][0], f[1][1], fz[1][0], fz[1][1]},
		{fx[0][0], fx[0][1], fxz[0][0], fxz[0][1]},
		{fx[1][0], fx[1][1], fxz[1][0], fxz[1][1]},
	}

	var tmp, coeff [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += hermiteBasis[i][k] * data[k][j]
			}
			tmp[i][j] = sum
		}
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += tmp[i][k] * hermiteBasis[j][k]
			}
			coeff[i][j] = sum
		}
	}

	return BicubicPatch{coeff: coeff}
}

// Sample evaluates the patch at normalized (u,v) in [0,1]x[0,1]. Callers
// pre-normalize; out-of-range inputs are not defined.
func (p *BicubicPatch) Sample(u, v float64) float64 {
	uPow := [4]float64{1, u, u * u, u * u * u}
	vPow := [4]float64{1, v, v * v, v * v * v}

	var value float64
	for i := 0; i < 4; i++ {
		var row float64
		for j := 0; j < 4; j++ {
			row += p.coeff[i][j] * vPow[j]
		}
		value += uPow[i] * row
	}
	return value
}
