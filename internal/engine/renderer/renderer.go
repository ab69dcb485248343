// Package renderer draws puzzle pieces with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/twisty/internal/engine/renderer/shaders"
	"github.com/Faultbox/twisty/internal/engine/shader"
	"github.com/Faultbox/twisty/internal/logger"
	"github.com/Faultbox/twisty/pkg/palette"
	"github.com/Faultbox/twisty/pkg/puzzle"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background palette.Color
}

// Light is a single directional light.
type Light struct {
	Direction mgl32.Vec3 // Direction the light travels
	Color     mgl32.Vec3
	Ambient   float32
}

// DefaultLight shines into the screen from slightly above and to the left.
func DefaultLight() Light {
	return Light{
		Direction: mgl32.Vec3{0.3, -0.4, -1}.Normalize(),
		Color:     mgl32.Vec3{1, 1, 1},
		Ambient:   0.25,
	}
}

// Frame carries the per-frame camera state.
type Frame struct {
	View     mgl32.Mat4
	Proj     mgl32.Mat4
	Eye      mgl32.Vec3
	Rotation mgl32.Mat4 // Applied to the whole puzzle before each piece's placement
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	log     *zap.Logger

	Light     Light
	Wireframe bool

	textures map[puzzle.Handle]uint32
	meshes   []*gpuMesh
	material puzzle.Material
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		Light:    DefaultLight(),
		textures: make(map[puzzle.Handle]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	bg := cfg.Background
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shaders.PuzzleVertexShader, shaders.PuzzleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program.MustUniform("uViewProj")
	r.program.MustUniform("uModel")

	return r, nil
}

// Load uploads a puzzle's texture and meshes, replacing whatever was loaded
// before.
func (r *Renderer) Load(p puzzle.Puzzle) error {
	r.unload()

	handle, err := r.UploadTexture(p.Texture())
	if err != nil {
		return fmt.Errorf("upload %s texture: %w", p.Kind(), err)
	}
	r.material = p.Material(handle)

	pieces := p.Meshes()
	for i, pc := range pieces {
		m, err := uploadMesh(pc)
		if err != nil {
			r.unload()
			return fmt.Errorf("upload %s piece %d: %w", p.Kind(), i, err)
		}
		r.meshes = append(r.meshes, m)
	}

	r.log.Info("puzzle loaded",
		zap.Stringer("kind", p.Kind()),
		zap.Int("pieces", len(pieces)),
		zap.Uint64("texture", uint64(handle)),
		zap.Float32("roughness", r.material.Roughness),
		zap.Float32("metallic", r.material.Metallic),
	)
	return nil
}

func (r *Renderer) unload() {
	for _, m := range r.meshes {
		m.delete()
	}
	r.meshes = nil
	for h, id := range r.textures {
		gl.DeleteTextures(1, &id)
		delete(r.textures, h)
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.unload()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Draw renders every loaded piece.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	p := r.program
	p.Use()
	p.SetMat4("uViewProj", f.Proj.Mul4(f.View))
	p.SetVec3("uEye", f.Eye)
	p.SetVec3("uLightDir", r.Light.Direction)
	p.SetVec3("uLightColor", r.Light.Color)
	p.SetFloat("uAmbient", r.Light.Ambient)
	p.SetVec4("uBaseColor", r.material.BaseColor.Vec4())
	p.SetFloat("uRoughness", r.material.Roughness)
	p.SetFloat("uMetallic", r.material.Metallic)
	p.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[r.material.BaseColorTexture])

	for _, m := range r.meshes {
		model := f.Rotation.Mul4(m.model)
		p.SetMat4("uModel", model)
		p.SetMat3("uNormalMatrix", model.Mat3().Inv().Transpose())
		p.SetBool("uUseTexture", m.textured)

		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
