package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/routingcycle/routingcycle/config"
	"github.com/routingcycle/routingcycle/driver"
	"github.com/routingcycle/routingcycle/logging"
	"github.com/routingcycle/routingcycle/schedule"
)

var gitCommitSHA = ""

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-interrupt:
			fmt.Println()
			klog.Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}

		signal.Stop(interrupt)
	}()

	app := &cli.App{
		Name:        "routingcycle",
		Version:     gitCommitSHA,
		Usage:       "find the longest simple cycle among routing claims for each (claim_id, status_code) key",
		ArgsUsage:   "<input_file>",
		Before:      func(c *cli.Context) error { return nil },
		Flags:       append(config.Flags(), logging.NewKlogFlagSet()...),
		HideHelp:    false,
		HideVersion: false,
		Action:      newRootAction(),
		Commands: []*cli.Command{
			newBucketWorkerCmd(),
			newVersionCmd(),
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.RunContext(ctx, os.Args); err != nil {
		klog.Fatal(err)
	}
}

func newRootAction() cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return cli.ShowAppHelp(c)
		}

		cfg, err := config.FromContext(c)
		if err != nil {
			return cli.Exit(err, 1)
		}

		selfPath, err := os.Executable()
		if err != nil {
			selfPath = os.Args[0]
		}

		outcome, err := driver.Run(cfg, selfPath)
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := driver.Print(os.Stdout, outcome); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	}
}

// newBucketWorkerCmd registers the hidden bucket-worker subcommand that
// isolated-process executor children invoke on themselves.
func newBucketWorkerCmd() *cli.Command {
	return &cli.Command{
		Name:   "bucket-worker",
		Hidden: true,
		Action: func(c *cli.Context) error {
			if err := schedule.RunBucketWorker(os.Stdin, os.Stdout); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

// newVersionCmd prints build info, following cmd-version.go's printVersion.
func newVersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the binary version and exit",
		Action: func(c *cli.Context) error {
			printVersion()
			return nil
		},
	}
}

func printVersion() {
	if gitCommitSHA == "" {
		fmt.Println("routingcycle (dev build)")
	} else {
		fmt.Println("routingcycle " + gitCommitSHA)
	}
	fmt.Println("Go version:", runtime.Version())
	fmt.Println("Num CPU:", runtime.NumCPU())
}
