package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/twisty/pkg/atlas"
	"github.com/Faultbox/twisty/pkg/puzzle"
)

// UploadTexture uploads a colour atlas and returns its handle. Filtering is
// nearest so neighbouring slots never bleed into each other.
func (r *Renderer) UploadTexture(img atlas.Image) (puzzle.Handle, error) {
	if img.Format != atlas.FormatRGBA8SRGB {
		return 0, fmt.Errorf("unsupported texture format %s", img.Format)
	}
	if len(img.Pix) == 0 || len(img.Pix) != int(img.Width*img.Height)*atlas.BytesPerPixel {
		return 0, fmt.Errorf("texture %dx%d has %d bytes", img.Width, img.Height, len(img.Pix))
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8_ALPHA8, int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	handle := puzzle.Handle(texID)
	r.textures[handle] = texID
	return handle, nil
}
