// Package driver implements the single-pass orchestration of partition,
// per-bucket cycle search, and result reduction, wrapped in the work
// directory's create/teardown lifecycle. Grounded on store.go's
// OpenStore/Close pairing and preindex.go's teardown discipline, applied
// here to the run's scratch bucket directory.
package driver

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/routingcycle/routingcycle/bucket"
	"github.com/routingcycle/routingcycle/config"
	"github.com/routingcycle/routingcycle/logging"
	"github.com/routingcycle/routingcycle/metrics"
	"github.com/routingcycle/routingcycle/partition"
	"github.com/routingcycle/routingcycle/progress"
	"github.com/routingcycle/routingcycle/schedule"
	"github.com/routingcycle/routingcycle/workdir"
)

// Outcome is the run's final answer: the longest cycle found anywhere, or
// found=false if every per-key graph in every bucket was acyclic.
type Outcome struct {
	ClaimID     string
	StatusCode  string
	CycleLength int
	Found       bool
}

// Run executes one end-to-end pass per cfg: partitions cfg.InputPath into
// buckets under a fresh scratch directory, dispatches the bucket pass
// through the selected executor, and reduces to the global winner. The
// scratch directory is always torn down on return unless cfg.KeepWorkDir
// is set.
func Run(cfg config.Run, selfPath string) (Outcome, error) {
	logging.SetLevel(cfg.LogLevel)

	dir, err := workdir.New(cfg.WorkDirParent, cfg.KeepWorkDir)
	if err != nil {
		return Outcome{}, fmt.Errorf("driver: %w", err)
	}
	defer func() {
		if err := dir.Close(); err != nil {
			logging.Warningf("driver: work dir teardown: %v", err)
		}
	}()

	writer := bucket.NewWriter(dir.Path, cfg.HandleCacheSize)
	logging.Infof("partitioning %s into %d buckets under %s", cfg.InputPath, cfg.Buckets, dir.Path)

	partResult, err := partition.Partition(cfg.InputPath, cfg.Buckets, writer)
	if err != nil {
		return Outcome{}, fmt.Errorf("driver: %w", err)
	}
	logging.Infof("partitioned %d records (%d skipped) into %d non-empty buckets",
		partResult.RecordsRouted, partResult.RecordsSkipped, len(partResult.NonEmptyBuckets))
	logging.Debugf("partition result: %s", spew.Sdump(partResult))

	bucketPaths := make([]string, len(partResult.NonEmptyBuckets))
	for i, idx := range partResult.NonEmptyBuckets {
		bucketPaths[i] = dir.BucketPath(idx)
	}

	exec := schedule.Select(cfg.Executor, 0, cfg.ProcessBatchSize, selfPath)
	logging.Infof("dispatching %d buckets via %s executor", len(bucketPaths), exec.Name())

	var onBucketDone func()
	if cfg.ShowProgress && len(bucketPaths) > 0 {
		bar := progress.New(os.Stderr, "buckets", int64(len(bucketPaths)))
		onBucketDone = func() { bar.Increment(1) }
		defer bar.Done()
	}

	result, found, err := exec.Dispatch(bucketPaths, onBucketDone)
	if err != nil {
		return Outcome{}, fmt.Errorf("driver: %w", err)
	}

	if found {
		metrics.LongestCycleLength.Set(float64(result.CycleLength))
	} else {
		metrics.LongestCycleLength.Set(0)
	}

	return Outcome{
		ClaimID:     result.ClaimID,
		StatusCode:  result.StatusCode,
		CycleLength: result.CycleLength,
		Found:       found,
	}, nil
}

// Print writes outcome to w as a single line:
// "<claim_id>,<status_code>,<cycle_length>", or "0" if no cycle was found.
func Print(w *os.File, outcome Outcome) error {
	var line string
	if outcome.Found {
		line = fmt.Sprintf("%s,%s,%d\n", outcome.ClaimID, outcome.StatusCode, outcome.CycleLength)
	} else {
		line = "0\n"
	}
	_, err := w.WriteString(line)
	return err
}
