// Package metrics exposes the run's prometheus collectors as flat
// package-level promauto vars. This is a batch CLI, so nothing serves these
// over HTTP by default; they exist for callers that want to register a
// handler in front of the default registry themselves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RecordsPartitioned = promauto.NewCounter(prometheus.CounterOpts{
	Name: "routingcycle_records_partitioned_total",
	Help: "Records successfully routed to a bucket during the partition pass",
})

var RecordsMalformed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "routingcycle_records_malformed_total",
	Help: "Input lines skipped for having fewer than four pipe-delimited fields",
})

var BucketHandlesOpen = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "routingcycle_bucket_handles_open",
	Help: "Open bucket file handles currently held by the LRU handle cache",
})

var BucketsProcessed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "routingcycle_buckets_processed_total",
	Help: "Bucket files whose per-key graphs have been built and searched for cycles",
})

var BucketProcessDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "routingcycle_bucket_process_duration_seconds",
	Help:    "Wall time to build per-key graphs and find the longest cycle in one bucket",
	Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
})

var LongestCycleLength = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "routingcycle_longest_cycle_length",
	Help: "Length of the longest cycle found across the entire run, 0 if none",
})
