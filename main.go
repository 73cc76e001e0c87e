package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peachcloud/peach-probe/config"
	"github.com/peachcloud/peach-probe/framework"
	"github.com/peachcloud/peach-probe/logging"
	"github.com/peachcloud/peach-probe/peachtests"
	"github.com/peachcloud/peach-probe/pkgversion"
	"github.com/peachcloud/peach-probe/report"
	"github.com/peachcloud/peach-probe/servicedef"
)

const (
	exitOK       = 0
	exitFailures = 1
	exitUsage    = 2
)

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// usageError is a problem with the command line or configuration, found before anything
// is probed.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var params commandParams
	var results *framework.Results

	root := &cobra.Command{
		Use:   "peach-probe [flags] [service...]",
		Short: "Contract tests for the public APIs of the PeachCloud microservices",
		Long: `peach-probe calls every endpoint of the selected PeachCloud microservices once and
reports which services are online and which endpoints returned errors.

Services are network, oled, stats and menu. If none are given, network, oled and
stats are probed.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := probe(cmd, params, args, stdout, stderr)
			var ue usageError
			if !errors.As(err, &ue) {
				results = &r
			}
			return err
		},
	}
	params.bind(root.Flags())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
			return exitUsage
		}
		if results == nil {
			// flag parsing errors come from cobra before RunE
			return exitUsage
		}
		return exitFailures
	}
	if results == nil || results.OK() || params.alwaysExitZero {
		return exitOK
	}
	return exitFailures
}

func probe(cmd *cobra.Command, params commandParams, args []string, stdout, stderr io.Writer) (framework.Results, error) {
	selected, err := servicedef.SelectMicroservices(args)
	if err != nil {
		return framework.Results{}, usageError{err}
	}
	format, err := report.ParseFormat(params.output)
	if err != nil {
		return framework.Results{}, usageError{err}
	}
	cfg, err := config.Load(params.configFile, os.Getenv)
	if err != nil {
		return framework.Results{}, usageError{err}
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = params.timeout
	}
	if params.noVersion {
		cfg.VersionLookup = false
	}
	if err := cfg.Validate(); err != nil {
		return framework.Results{}, usageError{fmt.Errorf("invalid configuration: %w", err)}
	}

	logger, closeLogger, err := logging.NewLogger(logging.Options{
		Verbose: params.verbose,
		File:    params.logFile,
		Console: stderr,
	})
	if err != nil {
		return framework.Results{}, usageError{err}
	}
	defer closeLogger()

	opts := framework.RunOptions{
		ProbeLogger: &ConsoleProbeLogger{Out: stderr, Verbose: params.verbose},
		Logger:      logger,
		DebugLogger: logging.NewPrintfLogger(logger.Named("rpc")),
	}
	if cfg.VersionLookup {
		opts.Versions = pkgversion.NewDpkgLookup(logger)
	}

	results, err := peachtests.RunProbeSuite(cmd.Context(), cfg, selected, opts)
	if err != nil {
		return framework.Results{}, usageError{fmt.Errorf("invalid service definition: %w", err)}
	}
	logger.Info("probe run finished",
		zap.String("run_id", results.RunID),
		zap.Int("services", len(results.Services)),
		zap.Int("failing", len(results.Failed())),
		zap.Duration("elapsed", results.Finished.Sub(results.Started)))

	if err := report.Write(stdout, results, format, report.Options{Verbose: params.verbose}); err != nil {
		return results, fmt.Errorf("writing report: %w", err)
	}
	return results, nil
}
