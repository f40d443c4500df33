// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package pipeline fans out element processing across a worker pool,
// one step.Decoder per goroutine over a single shared, read-only
// step.Index, and assembles router.ElementMesh results.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/metrics"
	"github.com/archex/ifcgeom/process"
	"github.com/archex/ifcgeom/router"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

// ElementError records a single element's processing failure without
// aborting the run: a failing element contributes no mesh but
// does not stop its peers.
type ElementError struct {
	ExpressID uint32
	Err       error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element #%d: %v", e.ExpressID, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Result is the outcome of ProcessElements: the assembled per-element
// meshes and every per-element error collected along the way.
type Result struct {
	Elements []router.ElementMesh
	Errors   []error
}

// Options configures ProcessElements. Workers defaults to 1 if <= 0.
// Metrics is optional; a nil Metrics disables instrumentation.
type Options struct {
	Workers int
	Metrics *metrics.Metrics
}

// ProcessElements decodes and routes every id in ids concurrently,
// spinning up one step.Decoder per worker over buf/index/catalog
// (shared read-only) and collecting a StyleIndex built once up
// front from every IfcStyledItem the caller supplies. Per-element
// errors are collected, not fatal: only a failure building the style
// index, a context cancellation or a programming error aborts the
// whole run early.
func ProcessElements(
	ctx context.Context,
	buf *step.Buffer,
	index *step.Index,
	catalog *schema.Catalog,
	styled []step.DecodedEntity,
	ids []uint32,
	cfg config.Config,
	opts Options,
) (Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	styleDec := step.NewDecoder(buf, index, catalog, nil)
	styleIdx, err := router.BuildStyleIndex(styled, styleDec)
	if err != nil {
		return Result{}, fmt.Errorf("building style index: %w", err)
	}

	results := make([]*router.ElementMesh, len(ids))
	errs := make([][]error, len(ids))

	// One Decoder per worker, shared through a pool: the Index and
	// Buffer are read-only and safe to share, while each Decoder's
	// cache stays exclusive to whichever goroutine holds it.
	decPool := make(chan *step.Decoder, workers)
	for w := 0; w < workers; w++ {
		decPool <- step.NewDecoder(buf, index, catalog, nil)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dec := <-decPool
			defer func() { decPool <- dec }()
			em, elemErrs := processOne(dec, styleIdx, id, cfg, opts.Metrics)
			results[i] = em
			errs[i] = elemErrs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if opts.Metrics != nil {
		for w := 0; w < workers; w++ {
			dec := <-decPool
			hits, misses := dec.CacheStats()
			opts.Metrics.DecodeCacheHits.Add(float64(hits))
			opts.Metrics.DecodeCacheMisses.Add(float64(misses))
		}
	}

	out := Result{}
	for i, em := range results {
		if em != nil {
			out.Elements = append(out.Elements, *em)
		}
		for _, e := range errs[i] {
			if opts.Metrics != nil {
				opts.Metrics.ObserveError(e, isUnsupported, isInvalidGeometry)
			}
			out.Errors = append(out.Errors, &ElementError{ExpressID: ids[i], Err: e})
		}
	}
	return out, nil
}

func isUnsupported(err error) bool {
	var target *process.UnsupportedError
	return errors.As(err, &target)
}

func isInvalidGeometry(err error) bool {
	var target *process.InvalidGeometryError
	return errors.As(err, &target)
}

func processOne(
	dec *step.Decoder,
	styleIdx *router.StyleIndex,
	id uint32,
	cfg config.Config,
	m *metrics.Metrics,
) (*router.ElementMesh, []error) {
	e, err := dec.DecodeByID(id)
	if err != nil {
		return nil, []error{err}
	}
	mesh, itemIDs, errs := router.ProcessElement(e, dec, cfg)
	if m != nil {
		// The items were just decoded by the router, so these
		// lookups hit the cache.
		for _, itemID := range itemIDs {
			item, err := dec.DecodeByID(itemID)
			if err != nil {
				continue
			}
			m.ProcessorInvocations.WithLabelValues(schema.GeometryCategoryOf(item.Type).String()).Inc()
		}
	}
	rgba := styleIdx.ColorForElement(itemIDs, e.Type.String(), cfg)
	if cfg.DecodeCacheLimit > 0 && dec.CacheLen() > cfg.DecodeCacheLimit {
		dec.Clear()
	}
	return &router.ElementMesh{ExpressID: id, Mesh: *mesh, RGBA: rgba}, errs
}
