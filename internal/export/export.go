// Package export writes puzzle atlases as PNG images and puzzle geometry as
// STL meshes.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/twisty/internal/logger"
	"github.com/Faultbox/twisty/pkg/atlas"
	"github.com/Faultbox/twisty/pkg/geom"
	"github.com/Faultbox/twisty/pkg/puzzle"
)

// Options control the written files.
type Options struct {
	// AtlasScale is the width and height in pixels of one atlas slot.
	AtlasScale int
	// STLScale multiplies every coordinate. STL has no units; 57 makes the
	// puzzle 57mm across in most slicers.
	STLScale float32
	// Parallel bounds how many jobs run at once.
	Parallel int
}

// Atlas writes the texture as a PNG, upscaled with nearest-neighbour
// sampling so every slot stays a flat square.
func Atlas(img atlas.Image, path string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("atlas scale %d: must be at least 1", scale)
	}
	if img.Width == 0 || img.Height == 0 {
		return fmt.Errorf("atlas is empty")
	}

	w, h := int(img.Width)*scale, int(img.Height)*scale
	out := transform.Resize(img.RGBA(), w, h, transform.NearestNeighbor)

	if err := imgio.Save(path, out, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Triangles flattens every piece into world-space triangles, scaled by scale.
func Triangles(p puzzle.Puzzle, scale float32) []*sdf.Triangle3 {
	return triangles(p.Meshes(), scale)
}

func triangles(pieces []geom.Piece, scale float32) []*sdf.Triangle3 {
	n := 0
	for _, pc := range pieces {
		n += pc.Mesh.TriangleCount()
	}

	tris := make([]*sdf.Triangle3, 0, n)
	for _, pc := range pieces {
		world := pc.WorldPositions()
		idx := pc.Mesh.Indices
		for i := 0; i+2 < len(idx); i += 3 {
			tris = append(tris, &sdf.Triangle3{
				toV3(world[idx[i]], scale),
				toV3(world[idx[i+1]], scale),
				toV3(world[idx[i+2]], scale),
			})
		}
	}
	return tris
}

func toV3(v mgl32.Vec3, scale float32) v3.Vec {
	return v3.Vec{
		X: float64(v[0] * scale),
		Y: float64(v[1] * scale),
		Z: float64(v[2] * scale),
	}
}

// STL writes the puzzle geometry as a binary STL file.
func STL(p puzzle.Puzzle, path string, scale float32) error {
	if scale <= 0 {
		return fmt.Errorf("stl scale %g: must be positive", scale)
	}
	pieces := p.Meshes()
	if err := validate(pieces); err != nil {
		return err
	}
	if err := render.SaveSTL(path, triangles(pieces, scale)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Job is one puzzle to export under a file name stem.
type Job struct {
	Name   string
	Puzzle puzzle.Puzzle
}

// Result lists the files a job wrote.
type Result struct {
	Name  string
	Atlas string
	STL   string
}

// All writes <name>.png and <name>.stl for every job into dir, running up
// to opts.Parallel jobs at once. The first failure cancels the rest.
func All(ctx context.Context, dir string, jobs []Job, opts Options) ([]Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		if seen[j.Name] {
			return nil, fmt.Errorf("duplicate export name %q", j.Name)
		}
		seen[j.Name] = true
	}

	log := logger.Named("export")
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Parallel, 1))

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := Result{
				Name:  job.Name,
				Atlas: filepath.Join(dir, job.Name+".png"),
				STL:   filepath.Join(dir, job.Name+".stl"),
			}
			if err := Atlas(job.Puzzle.Texture(), res.Atlas, opts.AtlasScale); err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := STL(job.Puzzle, res.STL, opts.STLScale); err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}

			log.Info("exported", zap.String("name", job.Name), zap.Stringer("kind", job.Puzzle.Kind()))
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary describes generated output without writing anything.
type Summary struct {
	Kind       puzzle.Kind
	Pieces     int
	Vertices   int
	Triangles  int
	AtlasSlots int
	Min, Max   mgl32.Vec3
	Material   puzzle.Material
}

// Describe generates the puzzle and measures it.
func Describe(p puzzle.Puzzle) Summary {
	s := Summary{
		Kind:       p.Kind(),
		AtlasSlots: int(p.Texture().Width),
		Material:   p.Material(0),
		Min:        mgl32.Vec3{1e9, 1e9, 1e9},
		Max:        mgl32.Vec3{-1e9, -1e9, -1e9},
	}

	pieces := p.Meshes()
	s.Pieces = len(pieces)
	for _, pc := range pieces {
		s.Vertices += pc.Mesh.VertexCount()
		s.Triangles += pc.Mesh.TriangleCount()
		for _, v := range pc.WorldPositions() {
			for a := range 3 {
				s.Min[a] = min(s.Min[a], v[a])
				s.Max[a] = max(s.Max[a], v[a])
			}
		}
	}
	return s
}

// validate rejects malformed meshes before anything is written.
func validate(pieces []geom.Piece) error {
	for i, pc := range pieces {
		if err := pc.Mesh.Validate(); err != nil {
			return fmt.Errorf("piece %d: %w", i, err)
		}
	}
	return nil
}
