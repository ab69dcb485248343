// puzzletool generates puzzles without a window: it prints summaries and
// writes atlases and meshes to disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/twisty/internal/config"
	"github.com/Faultbox/twisty/internal/export"
	"github.com/Faultbox/twisty/internal/logger"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command, rest := args[0], args[1:]

	switch command {
	case "info":
		err = cmdInfo(cfg)
	case "atlas":
		err = cmdAtlas(cfg, rest)
	case "stl":
		err = cmdSTL(cfg, rest)
	case "export":
		err = cmdExport(cfg, rest)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error(command+" failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `puzzletool - twisty puzzle geometry generator

Usage:
  puzzletool [global options] <command> [options]

Global options:
  -config <file>       Config file
  -puzzle <kind>       rubik, mirror or pyraminx
  -dimension <n>       Layers per axis
  -shape <shape>       Pyraminx solid: tetrahedron or bipyramid
  -debug               Debug logging

Commands:
  info                       Show piece, vertex and atlas counts
  atlas <out.png> [-scale n] Write the colour atlas as a PNG
  stl <out.stl> [-scale s]   Write the puzzle as a binary STL mesh
  export [dir]               Write atlas and STL for every configured puzzle

Examples:
  puzzletool -dimension 5 info
  puzzletool -puzzle mirror stl mirror.stl
  puzzletool -config twisty.yaml export ./out`)
}

func cmdInfo(cfg *config.Config) error {
	p, err := cfg.Puzzle.New()
	if err != nil {
		return err
	}

	s := export.Describe(p)
	fmt.Printf("Puzzle:    %s\n", cfg.Puzzle.Stem())
	fmt.Printf("Pieces:    %d\n", s.Pieces)
	fmt.Printf("Vertices:  %d\n", s.Vertices)
	fmt.Printf("Triangles: %d\n", s.Triangles)
	fmt.Printf("Atlas:     %d slots\n", s.AtlasSlots)
	fmt.Printf("Bounds:    (%.4f, %.4f, %.4f) - (%.4f, %.4f, %.4f)\n",
		s.Min[0], s.Min[1], s.Min[2], s.Max[0], s.Max[1], s.Max[2])
	fmt.Printf("Material:  roughness %.2f, metallic %.2f\n", s.Material.Roughness, s.Material.Metallic)
	return nil
}

func cmdAtlas(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("atlas", flag.ExitOnError)
	scale := fs.Int("scale", cfg.Export.AtlasScale, "Pixels per atlas slot")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: puzzletool atlas <out.png> [-scale n]")
	}

	p, err := cfg.Puzzle.New()
	if err != nil {
		return err
	}
	if err := export.Atlas(p.Texture(), fs.Arg(0), *scale); err != nil {
		return err
	}
	logger.Info("atlas written", zap.String("path", fs.Arg(0)), zap.Int("scale", *scale))
	return nil
}

func cmdSTL(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("stl", flag.ExitOnError)
	scale := fs.Float64("scale", float64(cfg.Export.STLScale), "STL units per puzzle side")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: puzzletool stl <out.stl> [-scale s]")
	}

	p, err := cfg.Puzzle.New()
	if err != nil {
		return err
	}
	if err := export.STL(p, fs.Arg(0), float32(*scale)); err != nil {
		return err
	}
	logger.Info("mesh written", zap.String("path", fs.Arg(0)), zap.Float64("scale", *scale))
	return nil
}

func cmdExport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	parallel := fs.Int("j", cfg.Export.Parallel, "Puzzles to export at once")
	fs.Parse(args)

	dir := cfg.Export.Dir
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	var jobs []export.Job
	for _, pc := range cfg.ExportPuzzles() {
		p, err := pc.New()
		if err != nil {
			return err
		}
		jobs = append(jobs, export.Job{Name: pc.Stem(), Puzzle: p})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := export.All(ctx, dir, jobs, export.Options{
		AtlasScale: cfg.Export.AtlasScale,
		STLScale:   cfg.Export.STLScale,
		Parallel:   *parallel,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%-20s %s  %s\n", r.Name, r.Atlas, r.STL)
	}
	return nil
}
