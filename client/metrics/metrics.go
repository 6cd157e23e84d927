// Package metrics exposes Prometheus collectors for downloads and request
// augmentation.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/adamwoolhether/dynhttp/client/augment"
	"github.com/adamwoolhether/dynhttp/client/download"
	"github.com/adamwoolhether/dynhttp/client/params"
)

// Collector records download outcomes and augmentation calls.
type Collector struct {
	mu      sync.Mutex
	started map[string]time.Time
	now     func() time.Time

	downloadsStarted  prometheus.Counter
	downloadsFinished *prometheus.CounterVec
	downloadFailures  *prometheus.CounterVec
	downloadDuration  *prometheus.HistogramVec
	declaredSize      prometheus.Histogram
	inFlight          prometheus.Gauge
	augmentations     *prometheus.CounterVec
	paramsAdded       prometheus.Counter
}

// New creates the collectors, prefixed with namespace, and registers them
// with reg.
//
// Metrics:
//   - {namespace}_downloads_started_total
//   - {namespace}_downloads_finished_total{outcome}
//   - {namespace}_download_failures_total{stage}
//   - {namespace}_download_duration_seconds{outcome}
//   - {namespace}_download_declared_size_bytes
//   - {namespace}_downloads_in_flight
//   - {namespace}_augmentations_total{result}
//   - {namespace}_augmented_params_total
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		return nil, errors.New("registerer must not be nil")
	}

	c := &Collector{
		started: make(map[string]time.Time),
		now:     time.Now,
		downloadsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downloads_started_total",
			Help:      "Downloads that began writing to disk.",
		}),
		downloadsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downloads_finished_total",
			Help:      "Downloads by terminal outcome.",
		}, []string{"outcome"}),
		downloadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_failures_total",
			Help:      "Failed downloads by the stage that failed.",
		}, []string{"stage"}),
		downloadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "download_duration_seconds",
			Help:      "Time from start to terminal outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		declaredSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "download_declared_size_bytes",
			Help:      "Declared sizes of downloads that announced one.",
			Buckets:   prometheus.ExponentialBuckets(1024, 10, 7),
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "downloads_in_flight",
			Help:      "Downloads started but not finished.",
		}),
		augmentations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "augmentations_total",
			Help:      "Augmentation policy calls by result.",
		}, []string{"result"}),
		paramsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "augmented_params_total",
			Help:      "Parameters produced by augmentation policies.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.downloadsStarted,
		c.downloadsFinished,
		c.downloadFailures,
		c.downloadDuration,
		c.declaredSize,
		c.inFlight,
		c.augmentations,
		c.paramsAdded,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return c, nil
}

// Observe returns an Observer recording every download before forwarding
// to next, which may be nil.
func (c *Collector) Observe(next download.Observer) download.Observer {
	if next == nil {
		next = download.ObserverFuncs{}
	}
	return observer{c: c, next: next}
}

// Augmenter returns an Augmenter counting the calls made to next and the
// parameters it contributed.
func (c *Collector) Augmenter(next augment.Augmenter) augment.Augmenter {
	return augment.Func(func(ctx context.Context, existing *params.Map) (*params.Map, error) {
		before := existing.Len()
		out, err := next.Augment(ctx, existing)
		if err != nil || out == nil {
			c.augmentations.WithLabelValues("error").Inc()
			return out, err
		}

		c.augmentations.WithLabelValues("ok").Inc()
		if added := out.Len() - before; added > 0 {
			c.paramsAdded.Add(float64(added))
		}
		return out, nil
	})
}

func (c *Collector) begin(tag string, total int64) {
	c.mu.Lock()
	c.started[tag] = c.now()
	c.mu.Unlock()

	c.downloadsStarted.Inc()
	c.inFlight.Inc()
	if total > 0 {
		c.declaredSize.Observe(float64(total))
	}
}

func (c *Collector) end(tag, outcome string) {
	c.mu.Lock()
	start, ok := c.started[tag]
	delete(c.started, tag)
	c.mu.Unlock()

	c.inFlight.Dec()
	c.downloadsFinished.WithLabelValues(outcome).Inc()
	if ok {
		c.downloadDuration.WithLabelValues(outcome).Observe(c.now().Sub(start).Seconds())
	}
}

type observer struct {
	c    *Collector
	next download.Observer
}

func (o observer) OnStart(tag string, total int64) {
	o.c.begin(tag, total)
	o.next.OnStart(tag, total)
}

func (o observer) OnProgress(tag string, read, total int64, percent int) {
	o.next.OnProgress(tag, read, total, percent)
}

func (o observer) OnSuccess(tag, path string) {
	o.c.end(tag, "success")
	o.next.OnSuccess(tag, path)
}

func (o observer) OnError(tag string, err error) {
	stage := "unknown"
	var derr *download.Error
	if errors.As(err, &derr) {
		stage = derr.Kind.String()
	}
	o.c.downloadFailures.WithLabelValues(stage).Inc()

	o.c.end(tag, "error")
	o.next.OnError(tag, err)
}
