// Package atlas packs a small set of colours into a one-pixel-tall RGBA strip
// that puzzle meshes address through UV coordinates.
//
// Slot order is load-bearing: every UV baked into a mesh indexes the strip by
// (slot + 0.5) / width, so reordering colours repaints every piece.
package atlas

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/twisty/pkg/palette"
)

// BytesPerPixel is the size of one RGBA8 texel.
const BytesPerPixel = 4

// Slot is a colour's horizontal index within the strip.
type Slot uint8

// Format describes the pixel layout of an Image.
type Format int

const (
	// FormatRGBA8SRGB is 8 bits per channel, sRGB encoded.
	FormatRGBA8SRGB Format = iota
)

func (f Format) String() string {
	switch f {
	case FormatRGBA8SRGB:
		return "rgba8-srgb"
	default:
		return "unknown"
	}
}

// Image is a raw texture handed to the renderer.
type Image struct {
	Width  uint32
	Height uint32
	Format Format
	Pix    []byte
}

// Build quantises colors into a strip of width len(colors) and height 1.
// Channels are mapped with floor(255 * v), not rounded.
func Build(colors []palette.Color) Image {
	pix := make([]byte, 0, BytesPerPixel*len(colors))
	for _, c := range colors {
		pix = append(pix, Quantize(c.R), Quantize(c.G), Quantize(c.B), Quantize(c.A))
	}
	return Image{
		Width:  uint32(len(colors)),
		Height: 1,
		Format: FormatRGBA8SRGB,
		Pix:    pix,
	}
}

// Quantize maps a [0,1] channel to [0,255] by truncation.
func Quantize(v float32) uint8 {
	if math32.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math32.Floor(255 * v))
}

// UV returns the texture coordinate that samples the centre of slot in a strip
// of count slots.
func UV(slot Slot, count int) mgl32.Vec2 {
	size := 1 / float32(count)
	offset := size / 2
	return mgl32.Vec2{float32(slot)*size + offset, offset}
}

// SlotAt returns the slot addressed by a horizontal texture coordinate.
func SlotAt(u float32, count int) Slot {
	return Slot(math32.Floor(u * float32(count)))
}

// Texel returns the four bytes stored for slot.
func (img Image) Texel(slot Slot) [4]byte {
	i := int(slot) * BytesPerPixel
	return [4]byte{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

// RGBA wraps the pixel data in an image.RGBA without copying.
func (img Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    img.Pix,
		Stride: int(img.Width) * BytesPerPixel,
		Rect:   image.Rect(0, 0, int(img.Width), int(img.Height)),
	}
}
