// Package metrics exposes conversion counters through a private Prometheus
// registry.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/roach88/time64/internal/calendar"
	"github.com/roach88/time64/internal/ir"
)

const namespace = "time64"

// Outcome label values.
const (
	OutcomeOK = "ok"
)

// Fold direction label values.
const (
	DirectionFuture = "future"
	DirectionPast   = "past"
)

// Registry holds all conversion metrics.
type Registry struct {
	reg *prometheus.Registry

	Conversions *prometheus.CounterVec
	Folds       *prometheus.CounterVec
	Failures    *prometheus.CounterVec
	ProxyYears  prometheus.Histogram
}

// New creates a Registry with every metric registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Registry{reg: reg}
	r.Conversions = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversions_total",
		Help:      "Wide time values converted, by mode and outcome.",
	}, []string{"mode", "outcome"})

	r.Folds = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "folds_total",
		Help:      "Local conversions whose year was folded onto an anchor year.",
	}, []string{"direction"})

	r.Failures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "failures_total",
		Help:      "Conversions that produced an error record, by code.",
	}, []string{"code"})

	r.ProxyYears = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "proxy_year",
		Help:      "Anchor years substituted for folded conversions.",
		Buckets:   prometheus.LinearBuckets(calendar.MinAnchorYear, 4, 7),
	})

	return r
}

// ObserveRecord counts one stamped record. Implements engine.Observer.
func (r *Registry) ObserveRecord(rec ir.Record) {
	if rec.Error != "" {
		r.Conversions.WithLabelValues(string(rec.Mode), rec.Error).Inc()
		r.Failures.WithLabelValues(rec.Error).Inc()
		return
	}
	r.Conversions.WithLabelValues(string(rec.Mode), OutcomeOK).Inc()
	if rec.Fold.Applied {
		dir := DirectionFuture
		if rec.Fold.TrueYear < calendar.MinSafeYear {
			dir = DirectionPast
		}
		r.Folds.WithLabelValues(dir).Inc()
		r.ProxyYears.Observe(float64(rec.Fold.ProxyYear))
	}
}

// Gatherer returns the underlying registry for exposition.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
