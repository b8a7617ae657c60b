// Package logging wraps k8s.io/klog/v2 behind four named severities
// (DEBUG/INFO/WARNING/ERROR). All output goes to stderr, never stdout, so
// it never collides with the program's single result line.
package logging

import (
	"flag"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

// Level names a minimum severity to emit.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
)

// ParseLevel accepts level names case-insensitively; an unrecognized name
// falls back to WARNING.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "ERROR":
		return ERROR
	default:
		return WARNING
	}
}

var current = WARNING

// SetLevel sets the process-wide minimum severity that Debugf/Infof/
// Warningf/Errorf will emit.
func SetLevel(level Level) {
	current = level
	if level == DEBUG {
		fs := flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(fs)
		fs.Set("v", "2")
	}
}

func Debugf(format string, args ...interface{}) {
	if current <= DEBUG {
		klog.V(2).Infof(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if current <= INFO {
		klog.Infof(format, args...)
	}
}

func Warningf(format string, args ...interface{}) {
	if current <= WARNING {
		klog.Warningf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	klog.Errorf(format, args...)
}

// NewKlogFlagSet returns the standard klog flag set (-v, -logtostderr,
// etc.), giving operators a deep-verbosity escape hatch alongside
// --log-level.
func NewKlogFlagSet() []cli.Flag {
	fs := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(fs)

	fs.Set("logtostderr", "true")

	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log_dir",
			Usage: "If non-empty, write log files in this directory (no effect when -logtostderr=true)",
			Action: func(cctx *cli.Context, v string) error {
				if v != "" {
					fs.Set("log_dir", v)
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:        "logtostderr",
			Usage:       "log to standard error instead of files",
			DefaultText: "true",
			Action: func(cctx *cli.Context, v bool) error {
				fs.Set("logtostderr", fmt.Sprint(v))
				return nil
			},
		},
		&cli.BoolFlag{
			Name:  "alsologtostderr",
			Usage: "log to standard error as well as files (no effect when -logtostderr=true)",
			Action: func(cctx *cli.Context, v bool) error {
				fs.Set("alsologtostderr", fmt.Sprint(v))
				return nil
			},
		},
		&cli.IntFlag{
			Name:  "v",
			Usage: "number for the log level verbosity",
			Action: func(cctx *cli.Context, v int) error {
				fs.Set("v", fmt.Sprint(v))
				return nil
			},
		},
		&cli.StringFlag{
			Name:  "vmodule",
			Usage: "comma-separated list of pattern=N settings for file-filtered logging",
			Action: func(cctx *cli.Context, v string) error {
				if v != "" {
					fs.Set("vmodule", v)
				}
				return nil
			},
		},
	}
}
