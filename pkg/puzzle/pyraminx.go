package puzzle

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/twisty/pkg/atlas"
	"github.com/Faultbox/twisty/pkg/geom"
	"github.com/Faultbox/twisty/pkg/palette"
)

// Pyraminx atlas layout.
const (
	PyraminxSlotGreen atlas.Slot = iota
	PyraminxSlotBlue
	PyraminxSlotYellow
	PyraminxSlotRed
	PyraminxSlotInterior

	pyraminxSlotCount         = 5
	pyraminxRoughness float32 = 0.15
)

var pyraminxColors = [pyraminxSlotCount]palette.Color{
	PyraminxSlotGreen:    palette.Green,
	PyraminxSlotBlue:     palette.Blue,
	PyraminxSlotYellow:   palette.Yellow,
	PyraminxSlotRed:      palette.Red,
	PyraminxSlotInterior: palette.Gray,
}

var tetrahedronSlots = [geom.TetrahedronFaces]atlas.Slot{
	geom.TetraBottom: PyraminxSlotYellow,
	geom.TetraFront:  PyraminxSlotGreen,
	geom.TetraRight:  PyraminxSlotBlue,
	geom.TetraLeft:   PyraminxSlotRed,
}

var bipyramidSlots = [geom.BipyramidFaces]atlas.Slot{
	geom.BipyramidUpperFront: PyraminxSlotGreen,
	geom.BipyramidUpperRight: PyraminxSlotBlue,
	geom.BipyramidUpperLeft:  PyraminxSlotRed,
	geom.BipyramidLowerFront: PyraminxSlotYellow,
	geom.BipyramidLowerRight: PyraminxSlotYellow,
	geom.BipyramidLowerLeft:  PyraminxSlotYellow,
}

// Shape selects the pyraminx solid.
type Shape int

const (
	ShapeTetrahedron Shape = iota
	ShapeBipyramid
)

func (s Shape) String() string {
	switch s {
	case ShapeTetrahedron:
		return "tetrahedron"
	case ShapeBipyramid:
		return "bipyramid"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a shape name to its Shape. The empty string selects the
// tetrahedron.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tetrahedron":
		return ShapeTetrahedron, nil
	case "bipyramid":
		return ShapeBipyramid, nil
	default:
		return 0, fmt.Errorf("%w: pyraminx shape %q", ErrUnknownKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Pyraminx is a tetrahedral puzzle rendered as one solid body.
//
// The dimension is validated but otherwise reserved: every size currently
// produces the same single piece.
type Pyraminx struct {
	dimension int
	shape     Shape
}

// NewPyraminx validates the dimension and shape.
func NewPyraminx(dimension int, shape Shape) (*Pyraminx, error) {
	if err := checkDimension(dimension); err != nil {
		return nil, err
	}
	if shape != ShapeTetrahedron && shape != ShapeBipyramid {
		return nil, fmt.Errorf("%w: pyraminx shape %v", ErrUnknownKind, shape)
	}
	return &Pyraminx{dimension: dimension, shape: shape}, nil
}

func (*Pyraminx) sealed() {}

// Kind returns KindPyraminx.
func (*Pyraminx) Kind() Kind { return KindPyraminx }

// Dimension returns the reserved size parameter.
func (p *Pyraminx) Dimension() int { return p.dimension }

// Shape returns the solid being generated.
func (p *Pyraminx) Shape() Shape { return p.shape }

// Texture returns green, blue, yellow, red and the interior gray.
func (p *Pyraminx) Texture() atlas.Image {
	return atlas.Build(pyraminxColors[:])
}

// Material returns plastic.
func (p *Pyraminx) Material(texture Handle) Material {
	return matte(texture, pyraminxRoughness)
}

// Meshes returns the single solid at the origin. Faces are flat coloured
// through vertex colours, so the mesh has no UVs.
func (p *Pyraminx) Meshes() []geom.Piece {
	var mesh *geom.Mesh
	switch p.shape {
	case ShapeBipyramid:
		var colors [geom.BipyramidFaces]mgl32.Vec4
		for i, s := range bipyramidSlots {
			colors[i] = pyraminxColors[s].Vec4()
		}
		mesh = geom.Bipyramid(TotalSideLength, colors)
	default:
		var colors [geom.TetrahedronFaces]mgl32.Vec4
		for i, s := range tetrahedronSlots {
			colors[i] = pyraminxColors[s].Vec4()
		}
		mesh = geom.Tetrahedron(TotalSideLength, colors)
	}

	return []geom.Piece{{Mesh: mesh, Placement: geom.Identity()}}
}
