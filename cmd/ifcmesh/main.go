// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Command ifcmesh scans an IFC/STEP file, routes every building
// element with geometry through the pipeline package and prints a
// summary of the resulting meshes. It is ambient tooling around the
// core packages, not a redefinition of them.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/metrics"
	"github.com/archex/ifcgeom/pipeline"
	"github.com/archex/ifcgeom/process"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

func main() {
	fs := flag.NewFlagSet("ifcmesh", flag.ExitOnError)
	workers := fs.Int("workers", 4, "Number of parallel element-processing workers")
	metricsAddr := fs.String("metrics-addr", "", "HTTP listen address for Prometheus metrics (empty to disable)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	configPath := fs.String("config", "", "Path to a YAML config override")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ifcmesh [options] <file.ifc>

Scans an IFC/STEP file, routes every building element with geometry
through the pipeline and prints a summary of vertex/triangle counts
per element plus total bounds.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	var reg *prometheus.Registry
	var m *metrics.Metrics
	if *metricsAddr != "" {
		reg = prometheus.NewRegistry()
		m = metrics.New(reg)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			srv := &http.Server{Addr: *metricsAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
			logger.Info("metrics.http.start", "addr", *metricsAddr, "path", "/metrics")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics.http.error", "err", err)
			}
		}()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		doc, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
			os.Exit(1)
		}
		cfg, err = config.Load(cfg, doc)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown.signal")
		cancel()
	}()

	catalog := schema.Default()
	index := step.BuildIndex(data)
	buf := step.NewBuffer(data)

	bar := progressbar.NewOptions(index.Len(),
		progressbar.OptionSetDescription("scanning"),
		progressbar.OptionSetWriter(os.Stderr),
	)

	var elementIDs []uint32
	var styledIDs []uint32
	sc := step.NewScanner(data)
	for {
		e, ok := sc.Next()
		if !ok {
			break
		}
		name := string(data[e.Type.Start:e.Type.End])
		if m != nil {
			m.EntitiesScanned.Inc()
		}
		_ = bar.Add(1)
		if name == "IFCSTYLEDITEM" {
			styledIDs = append(styledIDs, e.ID)
			continue
		}
		if schema.HasGeometry(name) {
			elementIDs = append(elementIDs, e.ID)
		}
	}
	_ = bar.Finish()

	dec := step.NewDecoder(buf, index, catalog, logger)
	styled := make([]step.DecodedEntity, 0, len(styledIDs))
	for _, id := range styledIDs {
		se, err := dec.DecodeByID(id)
		if err != nil {
			logger.Warn("styled_item.decode.error", "id", id, "err", err)
			continue
		}
		styled = append(styled, se)
	}

	res, err := pipeline.ProcessElements(ctx, buf, index, catalog, styled, elementIDs, cfg, pipeline.Options{
		Workers: *workers,
		Metrics: m,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}

	printSummary(res)
}

func printSummary(res pipeline.Result) {
	totalVerts, totalTris := 0, 0
	minB, maxB := [3]float32{}, [3]float32{}
	haveBounds := false

	for _, em := range res.Elements {
		if em.Mesh.IsEmpty() {
			continue
		}
		totalVerts += em.Mesh.VertexCount()
		totalTris += em.Mesh.TriangleCount()
		b := em.Mesh.Bounds()
		if !haveBounds {
			minB, maxB = b.Min, b.Max
			haveBounds = true
		} else {
			for i := 0; i < 3; i++ {
				if b.Min[i] < minB[i] {
					minB[i] = b.Min[i]
				}
				if b.Max[i] > maxB[i] {
					maxB[i] = b.Max[i]
				}
			}
		}
		fmt.Printf("#%d: %d verts, %d tris, rgba=%v\n",
			em.ExpressID, em.Mesh.VertexCount(), em.Mesh.TriangleCount(), em.RGBA)
	}

	for _, err := range res.Errors {
		switch {
		case isKind(err, unsupportedKind):
			fmt.Fprintln(os.Stderr, color.YellowString("unsupported: %v", err))
		case isKind(err, invalidKind):
			fmt.Fprintln(os.Stderr, color.RedString("invalid geometry: %v", err))
		default:
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		}
	}

	fmt.Printf("\n%d elements, %d vertices, %d triangles\n", len(res.Elements), totalVerts, totalTris)
	if haveBounds {
		fmt.Printf("bounds: min=%v max=%v\n", minB, maxB)
	}
}

type errKind int

const (
	unsupportedKind errKind = iota
	invalidKind
)

func isKind(err error, k errKind) bool {
	switch k {
	case unsupportedKind:
		var target *process.UnsupportedError
		return errors.As(err, &target)
	case invalidKind:
		var target *process.InvalidGeometryError
		return errors.As(err, &target)
	}
	return false
}
