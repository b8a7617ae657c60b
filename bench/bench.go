// Package bench times a full partition-plus-search run over a generated
// input file, grounded on gsfa/worker.go's took() helper and its
// humanize.Bytes size reporting.
package bench

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/routingcycle/routingcycle/config"
	"github.com/routingcycle/routingcycle/driver"
	"github.com/routingcycle/routingcycle/gen"
	"github.com/routingcycle/routingcycle/logging"
	"github.com/routingcycle/routingcycle/schedule"
)

// Report is one benchmark run's timing and size summary.
type Report struct {
	GenerateDuration time.Duration
	RunDuration      time.Duration
	InputSize        int64
	Outcome          driver.Outcome
}

func (r Report) String() string {
	return fmt.Sprintf(
		"generated %s input in %s; search took %s; longest cycle %d (found=%v)",
		humanize.Bytes(uint64(r.InputSize)), r.GenerateDuration, r.RunDuration,
		r.Outcome.CycleLength, r.Outcome.Found,
	)
}

func took(name string, cb func()) time.Duration {
	startedAt := time.Now()
	cb()
	elapsed := time.Since(startedAt)
	logging.Debugf("%s took %s", name, elapsed)
	return elapsed
}

// Run generates a synthetic input file under a temp directory using opts,
// then drives a full Run against it with the given executor, reporting
// timings for each phase.
func Run(opts gen.Options, executor schedule.Kind, seed int64) (Report, error) {
	inputFile, err := os.CreateTemp("", "routingcycle-bench-input-*.txt")
	if err != nil {
		return Report{}, fmt.Errorf("bench: create input: %w", err)
	}
	defer os.Remove(inputFile.Name())
	defer inputFile.Close()

	var report Report
	report.GenerateDuration = took("generate", func() {
		err = gen.Write(inputFile, opts, rand.New(rand.NewSource(seed)))
	})
	if err != nil {
		return Report{}, fmt.Errorf("bench: generate: %w", err)
	}
	if err := inputFile.Close(); err != nil {
		return Report{}, fmt.Errorf("bench: close input: %w", err)
	}

	info, err := os.Stat(inputFile.Name())
	if err != nil {
		return Report{}, fmt.Errorf("bench: stat input: %w", err)
	}
	report.InputSize = info.Size()

	cfg := config.Run{
		InputPath:        inputFile.Name(),
		Buckets:          1024,
		HandleCacheSize:  128,
		Executor:         executor,
		ProcessBatchSize: 16,
		LogLevel:         logging.WARNING,
	}

	var outcome driver.Outcome
	report.RunDuration = took("run", func() {
		outcome, err = driver.Run(cfg, "")
	})
	if err != nil {
		return Report{}, fmt.Errorf("bench: run: %w", err)
	}
	report.Outcome = outcome

	return report, nil
}
