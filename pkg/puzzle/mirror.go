package puzzle

import (
	"github.com/Faultbox/twisty/pkg/atlas"
	"github.com/Faultbox/twisty/pkg/geom"
	"github.com/Faultbox/twisty/pkg/layout"
	"github.com/Faultbox/twisty/pkg/palette"
)

// Measurements of a physical mirror cube in metres. Opposite outer layers add
// up to 0.038 and every middle layer is 0.019, for a total of 0.057.
const (
	mirrorPhysicalSide float32 = 0.057
	mirrorScale                = TotalSideLength / mirrorPhysicalSide

	mirrorRight  = 0.025 * mirrorScale
	mirrorLeft   = 0.013 * mirrorScale
	mirrorTop    = 0.029 * mirrorScale
	mirrorBottom = 0.009 * mirrorScale
	mirrorFront  = 0.021 * mirrorScale
	mirrorBack   = 0.017 * mirrorScale
	// The middle layer gives up room for the gaps on both sides of it.
	mirrorMiddle = 0.019*mirrorScale - 2*GapSize

	mirrorSlotCount            = 1
	mirrorRoughness    float32 = 0.05
	mirrorMetallic     float32 = 0.75
)

// MirrorThickness returns the cubie side lengths of the mirror cube.
func MirrorThickness() layout.ThicknessTable {
	return layout.ThicknessTable{
		{mirrorRight, mirrorMiddle, mirrorLeft},
		{mirrorTop, mirrorMiddle, mirrorBottom},
		{mirrorFront, mirrorMiddle, mirrorBack},
	}
}

// Mirror is a 3×3×3 cube whose layers have different thicknesses, so it
// changes shape when scrambled. Every face is the same metallic gold.
type Mirror struct {
	layout layout.Mirror
}

// NewMirror returns the mirror cube. It has no parameters.
func NewMirror() *Mirror {
	return &Mirror{
		layout: layout.Mirror{
			Table:     MirrorThickness(),
			TotalSide: TotalSideLength,
			Gap:       GapSize,
		},
	}
}

func (*Mirror) sealed() {}

// Kind returns KindMirror.
func (*Mirror) Kind() Kind { return KindMirror }

// Texture is a single gold texel.
func (m *Mirror) Texture() atlas.Image {
	return atlas.Build([]palette.Color{palette.Gold})
}

// Material returns polished metal.
func (m *Mirror) Material(texture Handle) Material {
	mat := matte(texture, mirrorRoughness)
	mat.Metallic = mirrorMetallic
	return mat
}

// Meshes returns the 26 shell cubies, each sized by its layers.
func (m *Mirror) Meshes() []geom.Piece {
	var gold geom.FaceSlots

	pieces := make([]geom.Piece, 0, layout.ShellCount(layout.MirrorDimension))
	for c := range layout.Shell(layout.MirrorDimension) {
		pieces = append(pieces, geom.Piece{
			Mesh:      geom.Box(m.layout.HalfExtents(c), gold, mirrorSlotCount),
			Placement: geom.At(m.layout.Translation(c)),
		})
	}
	return pieces
}
