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
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: align_mesh [flags] <input> <output>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	cfg, err := flags.Load()
	essentials.Must(err)
	log := logger.New(cfg.Logging.Level, cfg.Logging.File)
	defer log.Sync()
	kind, err := cfg.IntegralKind()
	essentials.Must(err)

	log.Info("loading mesh", zap.String("path", inputPath))
	mesh, err := euler.LoadMesh(inputPath)
	essentials.Must(err)

	shape := euler.NewShape(mesh, kind, cfg.Concurrency)
	center, err := shape.Barycenter()
	essentials.Must(err)
	axes, err := shape.PrincipalAxes()
	essentials.Must(err)
	log.Info("computed frame", zap.Any("barycenter", center), zap.Any("axes", axes))

	aligned, err := shape.Align()
	essentials.Must(err)
	if log.Core().Enabled(zap.DebugLevel) {
		matrix, err := aligned.Matrix()
		essentials.Must(err)
		log.Debug("aligned moments", zap.Any("matrix", matrix))
	}

	log.Info("writing output", zap.String("path", outputPath))
	essentials.Must(euler.SaveMesh(outputPath, aligned.Mesh()))
}
