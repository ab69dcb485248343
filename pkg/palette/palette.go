// Package palette defines the named colours used to paint puzzle faces.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidColor is returned when a colour cannot be parsed or is out of range.
var ErrInvalidColor = errors.New("invalid color")

// Color is a linear RGBA colour with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque colour.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Named colours.
var (
	Blue   = RGB(0.239, 0.506, 0.965)
	Green  = RGB(0.0, 0.616, 0.329)
	Red    = RGB(0.863, 0.259, 0.184)
	Orange = RGB(1.0, 0.424, 0.0)
	Yellow = RGB(0.992, 0.8, 0.035)
	White  = RGB(1.0, 1.0, 1.0)
	Gray   = RGB(0.22, 0.22, 0.22)
	Gold   = RGB(1.0, 0.8627, 0.6157)
	Silver = RGB(1.0, 0.9765, 0.9601)
)

var byName = map[string]Color{
	"blue":   Blue,
	"green":  Green,
	"red":    Red,
	"orange": Orange,
	"yellow": Yellow,
	"white":  White,
	"gray":   Gray,
	"grey":   Gray,
	"gold":   Gold,
	"silver": Silver,
}

// Vec4 returns the colour as an mgl32 vector.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Valid reports whether every channel lies in [0, 1].
func (c Color) Valid() bool {
	for _, v := range [4]float32{c.R, c.G, c.B, c.A} {
		if math32.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// String returns the colour as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5), uint8(c.A*255+0.5))
}

// Parse accepts a colour name ("red", "gold", ...) or a hex string
// (#rgb, #rrggbb, #rrggbbaa).
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := byName[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: bad hex length in %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return Color{
		R: float32((v>>24)&0xff) / 255,
		G: float32((v>>16)&0xff) / 255,
		B: float32((v>>8)&0xff) / 255,
		A: float32(v&0xff) / 255,
	}, nil
}
