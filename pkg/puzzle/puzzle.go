// Package puzzle turns a puzzle description into the texture, material and
// placed meshes a renderer needs.
//
// Every variant is immutable once constructed. Texture, Material and Meshes
// are pure: they may be called in any order, any number of times, from any
// goroutine, and always return freshly allocated, identical data.
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/twisty/pkg/atlas"
	"github.com/Faultbox/twisty/pkg/geom"
	"github.com/Faultbox/twisty/pkg/palette"
)

// Global dimensions shared by all variants.
const (
	// TotalSideLength is the edge length of the whole puzzle.
	TotalSideLength float32 = 1.0
	// GapSize separates neighbouring pieces.
	GapSize float32 = 0.005
)

var (
	// ErrInvalidDimension is returned when a puzzle is built with fewer than
	// one layer.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrUnknownKind is returned for an unrecognised variant name.
	ErrUnknownKind = errors.New("unknown puzzle kind")
)

// Handle is an opaque reference to a texture owned by the renderer. The
// puzzle only threads it through into the material.
type Handle uint64

// Material describes how the renderer should shade every piece.
type Material struct {
	BaseColor        palette.Color
	BaseColorTexture Handle
	Roughness        float32
	Metallic         float32
}

// Puzzle is implemented by the closed set of variants in this package.
type Puzzle interface {
	// Kind identifies the variant.
	Kind() Kind
	// Texture returns the colour atlas the meshes sample.
	Texture() atlas.Image
	// Material returns the surface description referencing texture.
	Material(texture Handle) Material
	// Meshes returns one placed mesh per visible piece, in no particular order.
	Meshes() []geom.Piece

	sealed()
}

// Kind names a puzzle variant.
type Kind int

const (
	KindRubik Kind = iota
	KindMirror
	KindPyraminx
)

var kindNames = map[Kind]string{
	KindRubik:    "rubik",
	KindMirror:   "mirror",
	KindPyraminx: "pyraminx",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a variant name to its Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Options selects and parameterises a variant for New.
type Options struct {
	Kind      Kind
	Dimension int
	// Colors overrides the Rubik face colours; nil keeps the defaults.
	Colors *RubikColors
	// Shape selects the pyraminx solid.
	Shape Shape
}

// New builds the variant described by opts. All validation happens here, so a
// returned puzzle never fails to generate.
func New(opts Options) (Puzzle, error) {
	switch opts.Kind {
	case KindRubik:
		colors := DefaultRubikColors()
		if opts.Colors != nil {
			colors = *opts.Colors
		}
		return NewRubik(opts.Dimension, colors)
	case KindMirror:
		return NewMirror(), nil
	case KindPyraminx:
		return NewPyraminx(opts.Dimension, opts.Shape)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, opts.Kind)
	}
}

func checkDimension(dimension int) error {
	if dimension < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidDimension, dimension)
	}
	return nil
}

func matte(texture Handle, roughness float32) Material {
	return Material{
		BaseColor:        palette.White,
		BaseColorTexture: texture,
		Roughness:        roughness,
	}
}
