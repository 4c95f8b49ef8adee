// SPDX-License-Identifier: MIT
package rpa

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var TuplesTotal = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "tbrpa",
	Subsystem: "engine",
	Name:      "tuples_total",
	Help:      "Susceptibility tuples (T, mu, q, omega) evaluated.",
})

var Diagonalizations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tbrpa",
	Subsystem: "engine",
	Name:      "diagonalizations_total",
	Help:      "Off-mesh Hamiltonian diagonalizations by outcome.",
}, []string{"result"})

var CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tbrpa",
	Subsystem: "engine",
	Name:      "kq_cache_lookups_total",
	Help:      "Off-mesh k+q eigenstate cache lookups by outcome.",
}, []string{"outcome"})

var PrunedBlocks = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tbrpa",
	Subsystem: "engine",
	Name:      "blocks_total",
	Help:      "Orbital blocks of chi0 by how they were obtained.",
}, []string{"source"})

var TupleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Namespace: "tbrpa",
	Subsystem: "engine",
	Name:      "tuple_duration_seconds",
	Help:      "Wall time of one Lindhard sum.",
	Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
})

// RegisterMetrics registers the engine collectors with reg. Registering twice
// with the same registry is not an error.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{TuplesTotal, Diagonalizations, CacheLookups, PrunedBlocks, TupleDuration} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}

	return nil
}
