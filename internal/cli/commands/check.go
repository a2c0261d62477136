package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintpass/internal/cli/config"
	"github.com/leapstack-labs/lintpass/internal/frontend"
	"github.com/leapstack-labs/lintpass/internal/toolchain"
	"github.com/leapstack-labs/lintpass/pkg/lint"
	"github.com/leapstack-labs/lintpass/pkg/lint/rules"
)

// ErrIssuesFound is returned when a check emitted at least one
// error-severity diagnostic.
var ErrIssuesFound = errors.New("lint errors found")

// NewCheckCommand creates the check command. The root command runs the
// same check when given a path directly.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH",
		Short: "Run the lint rules over a Go file or directory",
		Long: `Load the Go code at PATH, run every active rule over it in registry
order and report the diagnostics.

A directory is checked recursively (./...). Generated files and code under
//line directives are skipped by rules that do not opt in to expanded code.`,
		Example: `  # Check a module
  lintpass check .

  # Machine-readable output
  lintpass check ./pkg --format json -o report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunCheck(cmd, args[0])
		},
	}
}

// RunCheck checks path once, or repeatedly on change when watch mode is
// configured.
func RunCheck(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)
	if !cc.Cfg.Watch {
		return checkOnce(cmd, cc, path)
	}

	r, err := cc.Renderer(cmd)
	if err != nil {
		return err
	}
	return Watch(cmd.Context(), WatchOptions{
		Path:     path,
		Debounce: cc.Cfg.WatchDebounce,
		Logger:   cc.Logger,
	}, func(context.Context) error {
		if err := checkOnce(cmd, cc, path); err != nil && !errors.Is(err, ErrIssuesFound) {
			r.Status(fmt.Sprintf("check failed: %v", err))
		}
		r.Status("watching for changes...")
		return nil
	})
}

func checkOnce(cmd *cobra.Command, cc *CommandContext, path string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sink := lint.NewSink()
	if _, err := CheckInto(ctx, cc.Cfg, path, sink, cc.Logger); err != nil {
		return err
	}
	hasErrors := sink.HasErrors()

	r, closeOut, err := cc.OutputRenderer(cmd)
	if err != nil {
		return err
	}
	renderErr := sink.Drain(r)
	if err := closeOut(); err != nil && renderErr == nil {
		renderErr = fmt.Errorf("failed to write output: %w", err)
	}
	if renderErr != nil {
		return renderErr
	}

	if hasErrors {
		return ErrIssuesFound
	}
	return nil
}

// Check discovers the toolchain, loads path and runs the built-in rules.
// Toolchain and frontend failures are returned unchanged so callers can
// match them with errors.As.
func Check(ctx context.Context, cfg *config.Config, path string, logger *slog.Logger) (*lint.Result, error) {
	sink := lint.NewSink()
	stats, err := CheckInto(ctx, cfg, path, sink, logger)
	if err != nil {
		return nil, err
	}
	return &lint.Result{Diagnostics: sink.Diagnostics(), Stats: stats}, nil
}

// CheckInto is Check reporting into sink. Nothing is reported when loading
// fails.
func CheckInto(ctx context.Context, cfg *config.Config, path string, sink *lint.Sink, logger *slog.Logger) (lint.Stats, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	start := time.Now()

	tc, err := toolchain.Discover(ctx, cfg.GoCmd, logger)
	if err != nil {
		return lint.Stats{}, err
	}

	prog, err := frontend.Load(ctx, frontend.Config{
		Path:      path,
		Tests:     cfg.Tests,
		BuildTags: cfg.BuildTags,
		Env:       tc.Env(),
		Logger:    logger,
	})
	if err != nil {
		return lint.Stats{}, err
	}

	reg, err := rules.NewRegistry()
	if err != nil {
		return lint.Stats{}, err
	}

	stats := lint.NewEngine(lint.Config{Rules: reg, Logger: logger}).RunInto(sink, prog.Roots()...)

	logger.Info("check complete",
		"program", prog.String(),
		"diagnostics", sink.Len(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return stats, nil
}
