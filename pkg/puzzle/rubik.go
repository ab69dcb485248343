package puzzle

import (
	"fmt"

	"github.com/Faultbox/twisty/pkg/atlas"
	"github.com/Faultbox/twisty/pkg/geom"
	"github.com/Faultbox/twisty/pkg/layout"
	"github.com/Faultbox/twisty/pkg/palette"
)

// Rubik atlas layout: one slot per face in geom.Face order, then the colour of
// unpainted plastic.
const (
	RubikSlotInterior  atlas.Slot = geom.NumFaces
	rubikSlotCount                = geom.NumFaces + 1
	rubikRoughness     float32    = 0.15
)

// minCellSize is the smallest cubie edge NewRubik accepts. Past about 200
// layers the gaps alone fill the cube and the cell size reaches zero.
const minCellSize float32 = 1e-6

var rubikPainted = geom.FaceSlots{0, 1, 2, 3, 4, 5}

// RubikColors are the sticker colours of the six faces.
type RubikColors struct {
	Right, Left, Top, Bottom, Front, Back palette.Color
}

// DefaultRubikColors returns the standard colour scheme.
func DefaultRubikColors() RubikColors {
	return RubikColors{
		Right:  palette.Red,
		Left:   palette.Orange,
		Top:    palette.Yellow,
		Bottom: palette.White,
		Front:  palette.Blue,
		Back:   palette.Green,
	}
}

// byFace returns the colours in geom.Face order.
func (c RubikColors) byFace() [geom.NumFaces]palette.Color {
	return [geom.NumFaces]palette.Color{c.Right, c.Left, c.Top, c.Bottom, c.Front, c.Back}
}

// Validate reports the first colour with a channel outside [0, 1].
func (c RubikColors) Validate() error {
	for f, col := range c.byFace() {
		if !col.Valid() {
			return fmt.Errorf("%w: %s face %v", palette.ErrInvalidColor, geom.Face(f), col)
		}
	}
	return nil
}

// Rubik is an N×N×N cube of uniform cubies. Only the shell is generated.
type Rubik struct {
	dimension int
	colors    RubikColors
	grid      layout.Grid
}

// NewRubik validates the dimension and colours.
func NewRubik(dimension int, colors RubikColors) (*Rubik, error) {
	if err := checkDimension(dimension); err != nil {
		return nil, err
	}
	if err := colors.Validate(); err != nil {
		return nil, err
	}
	grid := layout.Grid{
		Dimension: dimension,
		TotalSide: TotalSideLength,
		Gap:       GapSize,
	}
	if size := grid.CellSize(); !(size >= minCellSize) {
		return nil, fmt.Errorf("%w: %d (cell size %g with gap %g)", ErrInvalidDimension, dimension, size, grid.Gap)
	}
	return &Rubik{
		dimension: dimension,
		colors:    colors,
		grid:      grid,
	}, nil
}

func (*Rubik) sealed() {}

// Kind returns KindRubik.
func (*Rubik) Kind() Kind { return KindRubik }

// Dimension returns the number of layers per axis.
func (r *Rubik) Dimension() int { return r.dimension }

// Colors returns the face colours.
func (r *Rubik) Colors() RubikColors { return r.colors }

// Texture returns the six face colours followed by the interior colour.
func (r *Rubik) Texture() atlas.Image {
	faces := r.colors.byFace()
	colors := append(faces[:], palette.Gray)
	return atlas.Build(colors)
}

// Material returns a glossy plastic.
func (r *Rubik) Material(texture Handle) Material {
	return matte(texture, rubikRoughness)
}

// Meshes returns one box per shell cubie. A single-layer cube is one box
// painted on all sides at the origin.
func (r *Rubik) Meshes() []geom.Piece {
	half := r.grid.HalfExtents()

	if r.dimension == 1 {
		return []geom.Piece{{
			Mesh:      geom.Box(half, rubikPainted, rubikSlotCount),
			Placement: geom.Identity(),
		}}
	}

	pieces := make([]geom.Piece, 0, layout.ShellCount(r.dimension))
	for c := range layout.Shell(r.dimension) {
		slots := layout.FaceSlots(c, r.dimension, rubikPainted, RubikSlotInterior)
		pieces = append(pieces, geom.Piece{
			Mesh:      geom.Box(half, slots, rubikSlotCount),
			Placement: geom.At(r.grid.Translation(c)),
		})
	}
	return pieces
}
