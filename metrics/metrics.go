// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package metrics exposes Prometheus counters for the pipeline:
// entities scanned, decode-cache hits/misses, processor invocations
// by geometry category and unsupported/invalid-geometry occurrences.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters registered against one Registerer. The
// zero value is not usable; construct with New.
type Metrics struct {
	EntitiesScanned      prometheus.Counter
	DecodeCacheHits      prometheus.Counter
	DecodeCacheMisses    prometheus.Counter
	ProcessorInvocations *prometheus.CounterVec
	Unsupported          prometheus.Counter
	InvalidGeometry      prometheus.Counter
}

// New creates a Metrics and registers its collectors against reg. If
// reg is nil, prometheus.DefaultRegisterer is used.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		EntitiesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ifcgeom",
			Name:      "entities_scanned_total",
			Help:      "Entity statements visited by the scanner.",
		}),
		DecodeCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ifcgeom",
			Name:      "decode_cache_hits_total",
			Help:      "Decoder cache hits.",
		}),
		DecodeCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ifcgeom",
			Name:      "decode_cache_misses_total",
			Help:      "Decoder cache misses requiring a fresh parse.",
		}),
		ProcessorInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ifcgeom",
			Name:      "processor_invocations_total",
			Help:      "Geometry-item processor calls by category.",
		}, []string{"category"}),
		Unsupported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ifcgeom",
			Name:      "unsupported_items_total",
			Help:      "Geometry items with no processor.",
		}),
		InvalidGeometry: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ifcgeom",
			Name:      "invalid_geometry_total",
			Help:      "Geometry items rejected as malformed.",
		}),
	}
	reg.MustRegister(
		m.EntitiesScanned,
		m.DecodeCacheHits,
		m.DecodeCacheMisses,
		m.ProcessorInvocations,
		m.Unsupported,
		m.InvalidGeometry,
	)
	return m
}

// ObserveError increments Unsupported or InvalidGeometry depending on
// err's concrete type, doing nothing for any other error (including
// nil).
func (m *Metrics) ObserveError(err error, isUnsupported, isInvalidGeometry func(error) bool) {
	switch {
	case err == nil:
		return
	case isUnsupported(err):
		m.Unsupported.Inc()
	case isInvalidGeometry(err):
		m.InvalidGeometry.Inc()
	}
}
