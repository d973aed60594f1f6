package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/shape-euler/euler"
	"github.com/unixpickle/shape-euler/internal/config"
	"github.com/unixpickle/shape-euler/internal/logger"
	"go.uber.org/zap"
)

func main() {
	var flags config.Flags
	flags.AddFlags(flag.CommandLine, false)
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_moments [flags] <input.off|input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	cfg, err := flags.Load()
	essentials.Must(err)
	log := logger.New(cfg.Logging.Level, cfg.Logging.File)
	defer log.Sync()
	kind, err := cfg.IntegralKind()
	essentials.Must(err)

	log.Info("loading mesh", zap.String("path", inputPath))
	mesh, err := euler.LoadMesh(inputPath)
	essentials.Must(err)
	log.Info("loaded mesh", zap.Int("points", mesh.NumPoints()), zap.Int("faces", mesh.NumFaces()))

	area, err := euler.SurfaceArea(mesh)
	essentials.Must(err)
	volume, err := euler.Volume(mesh)
	essentials.Must(err)
	fmt.Println("area:", area)
	fmt.Println("volume:", volume)

	log.Info("computing affine Euler matrix", zap.String("integral", cfg.Integral),
		zap.Int("concurrency", cfg.Concurrency))
	matrix, err := euler.NewAffineEulerMatrix(mesh, kind, cfg.Concurrency)
	essentials.Must(err)
	fmt.Println("matrix:")
	for _, row := range matrix {
		fmt.Printf("  %12.6f %12.6f %12.6f %12.6f\n", row[0], row[1], row[2], row[3])
	}

	center, err := matrix.Barycenter()
	essentials.Must(err)
	fmt.Println("barycenter:", center)

	axes, err := matrix.PrincipalAxes()
	essentials.Must(err)
	values, err := matrix.PrincipalValues()
	essentials.Must(err)
	for i, axis := range axes {
		fmt.Printf("axis %d: %v (eigenvalue %f)\n", i, axis, values[i])
	}
}
