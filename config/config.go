// Package config validates and carries the CLI flags into a plain struct,
// in the per-command flag-to-struct style of cmd-x-index-cid2offset.go's
// tmp-dir/verify pair.
package config

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/routingcycle/routingcycle/bucket"
	"github.com/routingcycle/routingcycle/logging"
	"github.com/routingcycle/routingcycle/partition"
	"github.com/routingcycle/routingcycle/schedule"
)

// Run holds one invocation's resolved configuration.
type Run struct {
	InputPath        string
	Buckets          int
	HandleCacheSize  int
	Executor         schedule.Kind
	ProcessBatchSize int
	WorkDirParent    string
	KeepWorkDir      bool
	LogLevel         logging.Level
	ShowProgress     bool
}

// FromContext builds a Run from a urfave/cli context, validating every flag.
func FromContext(c *cli.Context) (Run, error) {
	inputPath := c.Args().Get(0)
	if inputPath == "" {
		return Run{}, fmt.Errorf("config: missing required input_file argument")
	}

	buckets := c.Int("buckets")
	if !partition.IsPowerOfTwo(buckets) {
		return Run{}, fmt.Errorf("config: --buckets %d must be a power of two", buckets)
	}

	executor := schedule.Kind(c.String("executor"))
	switch executor {
	case "", schedule.KindAuto, schedule.KindThreads, schedule.KindProcesses, schedule.KindSerial:
	default:
		return Run{}, fmt.Errorf("config: --executor %q is not one of auto, threads, processes, serial", executor)
	}

	return Run{
		InputPath:        inputPath,
		Buckets:          buckets,
		HandleCacheSize:  c.Int("handle-cache-size"),
		Executor:         executor,
		ProcessBatchSize: c.Int("process-batch-size"),
		WorkDirParent:    c.String("work-dir"),
		KeepWorkDir:      c.Bool("keep-work-dir"),
		LogLevel:         logging.ParseLevel(c.String("log-level")),
		ShowProgress:     c.Bool("progress"),
	}, nil
}

// Flags is the command-line surface for the primary (non-hidden) command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "buckets",
			Usage: "number of buckets to partition the input into, must be a power of two",
			Value: 1024,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "one of debug, info, warning, error",
			Value: "warning",
		},
		&cli.IntFlag{
			Name:  "handle-cache-size",
			Usage: "maximum number of bucket file handles kept open at once",
			Value: bucket.DefaultHandleCacheSize,
		},
		&cli.StringFlag{
			Name:  "executor",
			Usage: "one of auto, threads, processes, serial; overrides RC_EXECUTOR",
		},
		&cli.IntFlag{
			Name:  "process-batch-size",
			Usage: "bucket paths per message sent to an isolated-process worker",
			Value: 16,
		},
		&cli.StringFlag{
			Name:  "work-dir",
			Usage: "parent directory for the run's scratch directory (default OS temp dir)",
		},
		&cli.BoolFlag{
			Name:  "keep-work-dir",
			Usage: "do not remove the scratch directory on exit (debug only)",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "render a progress bar over the bucket pass on stderr",
		},
	}
}
