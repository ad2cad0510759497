// Package metrickv instruments a store.KV with prometheus metrics.
package metrickv

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/trezcool/portal/core/store"
)

const namespace = "portal"

// KV counts the operations of the wrapped store.KV per key and times them.
type KV struct {
	next     store.KV
	ops      *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	bytes    *prometheus.GaugeVec
}

var _ store.KV = (*KV)(nil) // interface compliance check

// Wrap registers the metrics on reg and returns the instrumented next.
func Wrap(next store.KV, reg prometheus.Registerer) (*KV, error) {
	kv := &KV{
		next: next,
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kv",
			Name:      "operations_total",
			Help:      "Number of store operations, by operation and key.",
		}, []string{"op", "key"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kv",
			Name:      "failures_total",
			Help:      "Number of failed store operations, by operation and key.",
		}, []string{"op", "key"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kv",
			Name:      "operation_duration_seconds",
			Help:      "Duration of store operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"op"}),
		bytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "kv",
			Name:      "value_bytes",
			Help:      "Size of the last value read or written, by key.",
		}, []string{"key"}),
	}
	for _, c := range []prometheus.Collector{kv.ops, kv.failures, kv.duration, kv.bytes} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering store metrics")
		}
	}
	return kv, nil
}

func (kv *KV) observe(op, key string, start time.Time, err error) {
	kv.ops.WithLabelValues(op, key).Inc()
	kv.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		kv.failures.WithLabelValues(op, key).Inc()
	}
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	val, found, err := kv.next.Get(ctx, key)
	kv.observe("get", key, start, err)
	if found {
		kv.bytes.WithLabelValues(key).Set(float64(len(val)))
	}
	return val, found, err
}

func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := kv.next.Set(ctx, key, value)
	kv.observe("set", key, start, err)
	if err == nil {
		kv.bytes.WithLabelValues(key).Set(float64(len(value)))
	}
	return err
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := kv.next.Delete(ctx, key)
	kv.observe("delete", key, start, err)
	if err == nil {
		kv.bytes.DeleteLabelValues(key)
	}
	return err
}

// WriteText writes every metric gathered by g in the prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err = enc.Encode(mf); err != nil {
			return errors.Wrap(err, "encoding metrics")
		}
	}
	return nil
}
