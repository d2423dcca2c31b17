package world

const (
	// RegionSize is the edge length, in world units, of the square tile
	// generated as one unit.
	RegionSize = 64

	// BicubicOctaveEdge is the edge length of one octave detail tile;
	// a 2x2 grid of octave patches covers a region.
	BicubicOctaveEdge = RegionSize / 2

	// TrilinearBoxHeight is the vertical extent of the cave density
	// fields.
	TrilinearBoxHeight = 256

	// BoxDensityResolution is the lattice cell size of the cave density
	// fields.
	BoxDensityResolution = 32
)

// Sub-seed salts, XORed into the world seed before the splitmix
// finalizer so fields that sample the same lattice positions are not
// accidentally correlated. The values themselves are arbitrary.
const (
	octaveSeedSalt = 0xfea873529eaf
	caveSeedSalt   = 0x313535f3235
)

// fundamentalCorner bounds the large-scale elevation draw.
var fundamentalCorner = CornerFeatures{
	ValueRange:  [2]float64{0, 128},
	GradXRange:  [2]float64{-64, 64},
	GradZRange:  [2]float64{-64, 64},
	GradXZRange: [2]float64{-64, 64},
}

// octaveCorner bounds the local elevation detail draw.
var octaveCorner = CornerFeatures{
	ValueRange:  [2]float64{-32, 32},
	GradXRange:  [2]float64{-64, 64},
	GradZRange:  [2]float64{-64, 64},
	GradXZRange: [2]float64{-64, 64},
}

// RegionFeatures assembles the noise fields needed to generate one
// region: a fundamental elevation patch spanning the region, a 2x2 tile
// of octave detail patches, and two independently seeded cave density
// boxes. It is ephemeral; regenerating it from the same world seed and
// region position reproduces it exactly.
type RegionFeatures struct {
	fundamental BicubicPatch
	octaves     [2][2]BicubicPatch
	boxes       [2]TrilinearBox
}

// NewRegionFeatures derives the per-region feature set. regionX/regionZ
// are the region's world-space origin (multiples of RegionSize).
func NewRegionFeatures(worldSeed uint64, regionX, regionZ int) *RegionFeatures {
	f := &RegionFeatures{}

	f.fundamental = NewBicubicPatch(
		worldSeed, regionX, regionZ, RegionSize, RegionSize,
		UniformPatchFeatures(fundamentalCorner),
	)

	// The octave patches use a salted seed so the corners they share
	// with the fundamental patch get independent attributes.
	octaveSeed := worldSeed ^ octaveSeedSalt
	octaveFeatures := UniformPatchFeatures(octaveCorner)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			f.octaves[i][j] = NewBicubicPatch(
				octaveSeed,
				regionX+i*BicubicOctaveEdge,
				regionZ+j*BicubicOctaveEdge,
				BicubicOctaveEdge, BicubicOctaveEdge,
				octaveFeatures,
			)
		}
	}

	// Slicing a single box by a value band yields sheet-like voids; the
	// intersection of a band in two independent boxes is stringy and
	// tunnel-like, which is what the cave carver wants.
	f.boxes[0] = NewTrilinearBox(
		worldSeed, regionX, 0, regionZ,
		RegionSize, TrilinearBoxHeight, RegionSize,
		BoxDensityResolution,
	)
	f.boxes[1] = NewTrilinearBox(
		worldSeed^caveSeedSalt, regionX, 0, regionZ,
		RegionSize, TrilinearBoxHeight, RegionSize,
		BoxDensityResolution,
	)

	return f
}

// FundamentalPatch returns the region-spanning elevation patch.
func (f *RegionFeatures) FundamentalPatch() *BicubicPatch {
	return &f.fundamental
}

// OctavePatch returns the detail patch for tile (i,j), i and j in {0,1}.
func (f *RegionFeatures) OctavePatch(i, j int) *BicubicPatch {
	return &f.octaves[i][j]
}

// Box returns cave density field 0 or 1.
func (f *RegionFeatures) Box(which int) *TrilinearBox {
	return &f.boxes[which]
}
