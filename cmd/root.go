package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fornellas/resonance/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sysdrill/sysdrill/pkg/catalog"
	"github.com/sysdrill/sysdrill/pkg/invoke"
	"github.com/sysdrill/sysdrill/pkg/proc"
)

var matchPatterns []string
var defaultMatchPatterns = []string{"*"}

// these calls would terminate, suspend, fork, or replace the harness
// instead of producing a single trace entry, so they are never invoked.
// --skip adds to this list, it cannot remove from it.
var extraSkipCalls []string
var defaultSkipCalls = []string{
	"clone",
	"clone3",
	"execve",
	"execveat",
	"exit",
	"exit_group",
	"fork",
	"pause",
	"rt_sigreturn",
	"vfork",
}

// skipSet unions the built-in skip list with user additions.
func skipSet(extra []string) map[string]bool {
	set := map[string]bool{}
	for _, name := range defaultSkipCalls {
		set[name] = true
	}
	for _, name := range extra {
		set[name] = true
	}
	return set
}

func run(ctx context.Context, catalogPath string) (err error) {
	logger := log.MustLogger(ctx)

	for _, pattern := range matchPatterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid match pattern: %q", pattern)
		}
	}

	ctlg, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", "calls", len(ctlg))

	if tracerPID, err := proc.TracerPID(); err != nil {
		logger.Debug("failed to read tracer pid", "err", err)
	} else if tracerPID == 0 {
		logger.Debug("no tracer attached")
	} else {
		logger.Debug("tracer attached", "pid", tracerPID)
	}

	invoker, err := invoke.New(invoke.Config{
		Trace: viper.GetBool("trace"),
		Out:   os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to create invoker: %w", err)
	}
	defer func() { err = errors.Join(err, invoker.Close()) }()

	skipMap := skipSet(extraSkipCalls)

	for _, name := range ctlg.Names() {
		if skipMap[name] {
			logger.Debug("skipping", "call", name)
			continue
		}

		matched := false
		for _, pattern := range matchPatterns {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				return fmt.Errorf("failed to match %q: %w", pattern, err)
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			logger.Debug("no pattern match", "call", name)
			continue
		}

		result, err := invoker.Invoke(ctx, ctlg[name])
		if err != nil {
			logger.Debug("not invocable", "err", err)
			continue
		}
		if result.Errno != 0 {
			logger.Debug("call returned error", "call", name, "result", result.String())
		}
	}

	return nil
}

var RootCmd = &cobra.Command{
	Use:   "sysdrill [FLAGS] CATALOG",
	Short: "Invoke cataloged system calls for an external trace tool to observe.",
	Args:  cobra.ExactArgs(1),
	PersistentPreRun: func(cobraCmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if viper.GetBool("debug") {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		cobraCmd.SetContext(log.WithLogger(cobraCmd.Context(), logger))
	},
	Run: func(cobraCmd *cobra.Command, args []string) {
		ctx := cobraCmd.Context()
		logger := log.MustLogger(ctx)

		if err := run(ctx, args[0]); err != nil {
			logger.Error("failed to run", "err", err)
			os.Exit(1)
		}
	},
}

func bindToViper(name string, flag *pflag.Flag) {
	if err := viper.BindPFlag(name, flag); err != nil {
		panic(err)
	}
}

func init() {
	RootCmd.PersistentFlags().Bool(
		"debug", false,
		"enable debug diagnostics",
	)
	bindToViper("debug", RootCmd.PersistentFlags().Lookup("debug"))

	RootCmd.Flags().Bool(
		"trace", false,
		"print each call and its arguments before invoking it",
	)
	bindToViper("trace", RootCmd.Flags().Lookup("trace"))

	RootCmd.Flags().StringSliceVar(
		&matchPatterns, "match", defaultMatchPatterns,
		"glob patterns selecting which catalog calls to invoke",
	)

	RootCmd.Flags().StringSliceVar(
		&extraSkipCalls, "skip", nil,
		"call names to skip in addition to the built-in list",
	)
}
