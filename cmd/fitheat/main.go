package main

import (
	"context"
	"errors"
	"fitheat/internal/di"
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"fmt"
	"github.com/spf13/pflag"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, kind, year, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "fitheat: %s\n", err)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := di.InitApp(flags, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "fitheat: %s\n", err)
		return exitCode(err)
	}
	defer cleanup()

	if err := app.Run(ctx, kind, year); err != nil {
		fmt.Fprintf(stderr, "fitheat: %s\n", err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if models.IsUsageError(err) {
		return exitUsage
	}
	return exitFailure
}

func parseArgs(args []string, stderr io.Writer) (*structures.CliFlags, string, int, error) {
	fs := pflag.NewFlagSet("fitheat", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: fitheat [flags] <sleep|activity> <year>")
		fs.PrintDefaults()
	}

	flags := &structures.CliFlags{}
	fs.StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "path to the configuration file")
	fs.BoolVarP(&flags.DebugMode, "debug", "d", false, "log at debug level to the console")
	fs.BoolVar(&flags.Offline, "offline", false, "replay archived logs instead of calling the API")

	if err := fs.Parse(args); err != nil {
		return nil, "", 0, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return nil, "", 0, fmt.Errorf("%w: expected <kind> <year>, got %d arguments", errUsage, fs.NArg())
	}

	year, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return nil, "", 0, fmt.Errorf("%w: %q is not a year", models.ErrUnsupportedYear, fs.Arg(1))
	}
	return flags, fs.Arg(0), year, nil
}
