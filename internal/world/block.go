package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BlockMaterial tags the substance filling a single voxel cell.
// MaterialAir is the empty sentinel.
type BlockMaterial uint8

const (
	MaterialAir BlockMaterial = iota
	MaterialMagma
	MaterialBedrock
	MaterialStone
	MaterialClay
	MaterialDirt
	MaterialGrass
	MaterialTreeTrunk
	MaterialTreeLeaf

	NumMaterials
)

// MaterialAttributes describes how a material is named and rendered.
// Translucent materials end up in the sortable mesh variant.
type MaterialAttributes struct {
	Name        string
	Color       mgl32.Vec3
	Translucent bool
}

var materialAttributes = [NumMaterials]MaterialAttributes{
	MaterialAir:       {Name: "air", Color: mgl32.Vec3{0, 0, 0}},
	MaterialMagma:     {Name: "magma", Color: mgl32.Vec3{0.93, 0.33, 0.06}},
	MaterialBedrock:   {Name: "bedrock", Color: mgl32.Vec3{0.22, 0.22, 0.24}},
	MaterialStone:     {Name: "stone", Color: mgl32.Vec3{0.50, 0.50, 0.52}},
	MaterialClay:      {Name: "clay", Color: mgl32.Vec3{0.64, 0.48, 0.39}},
	MaterialDirt:      {Name: "dirt", Color: mgl32.Vec3{0.45, 0.31, 0.19}},
	MaterialGrass:     {Name: "grass", Color: mgl32.Vec3{0.27, 0.56, 0.22}},
	MaterialTreeTrunk: {Name: "tree trunk", Color: mgl32.Vec3{0.38, 0.26, 0.13}},
	MaterialTreeLeaf:  {Name: "tree leaf", Color: mgl32.Vec3{0.20, 0.46, 0.15}, Translucent: true},
}

// Attributes returns the render attributes for the material.
func (m BlockMaterial) Attributes() MaterialAttributes {
	if m >= NumMaterials {
		return MaterialAttributes{Name: "unknown", Color: mgl32.Vec3{1, 0, 1}}
	}
	return materialAttributes[m]
}

// String returns the material's display name.
func (m BlockMaterial) String() string {
	return m.Attributes().Name
}
