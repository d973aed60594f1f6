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
	var align bool
	flags.AddFlags(flag.CommandLine, true)
	flag.BoolVar(&align, "align", false, "align the mesh to its principal axes before splitting")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr,
			"Usage: split_mesh [flags] <input> <positive-output> <negative-output>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, posPath, negPath := args[0], args[1], args[2]

	cfg, err := flags.Load()
	essentials.Must(err)
	log := logger.New(cfg.Logging.Level, cfg.Logging.File)
	defer log.Sync()

	log.Info("loading mesh", zap.String("path", inputPath))
	mesh, err := euler.LoadMesh(inputPath)
	essentials.Must(err)

	if align {
		kind, err := cfg.IntegralKind()
		essentials.Must(err)
		log.Info("aligning mesh", zap.String("integral", cfg.Integral))
		mesh, err = euler.Align(mesh, kind, cfg.Concurrency)
		essentials.Must(err)
	}

	plane := cfg.CuttingPlane()
	log.Info("splitting mesh", zap.Any("normal", plane.Normal),
		zap.Float64("offset", plane.Offset),
		zap.Int("clipped", len(euler.ClippedTriangles(mesh, plane))))
	pos, neg, err := euler.SplitMesh(mesh, plane)
	essentials.Must(err)

	// The halves are open along the cut, so only their sum is meaningful.
	volume, err := euler.Volume(mesh)
	essentials.Must(err)
	posVolume, err := euler.Volume(pos)
	essentials.Must(err)
	negVolume, err := euler.Volume(neg)
	essentials.Must(err)
	log.Info("split volumes", zap.Float64("original", volume),
		zap.Float64("sum", posVolume+negVolume))

	log.Info("writing output", zap.String("positive", posPath), zap.String("negative", negPath),
		zap.Int("positiveFaces", pos.NumFaces()), zap.Int("negativeFaces", neg.NumFaces()))
	essentials.Must(euler.SaveMesh(posPath, pos))
	essentials.Must(euler.SaveMesh(negPath, neg))
}
