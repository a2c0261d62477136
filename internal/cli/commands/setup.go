package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintpass/internal/cli/config"
	"github.com/leapstack-labs/lintpass/internal/render"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext collects the config and logger stored on the command
// context by the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    config.FromContext(cmd.Context()),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// Renderer returns a renderer for stdout in the configured format. Status
// messages go to stderr.
func (c *CommandContext) Renderer(cmd *cobra.Command) (*render.Renderer, error) {
	mode, err := render.ParseMode(c.Cfg.Format)
	if err != nil {
		return nil, err
	}
	return render.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode), nil
}

// OutputRenderer returns a renderer for diagnostics. When an output file is
// configured the renderer writes there and the returned close function
// must be called; otherwise it writes to stdout and close is a no-op.
func (c *CommandContext) OutputRenderer(cmd *cobra.Command) (*render.Renderer, func() error, error) {
	mode, err := render.ParseMode(c.Cfg.Format)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = cmd.OutOrStdout()
	closeFn := func() error { return nil }
	if c.Cfg.Output != "" {
		f, err := os.Create(c.Cfg.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open output file: %w", err)
		}
		out = f
		closeFn = f.Close
	}
	return render.NewRenderer(out, cmd.ErrOrStderr(), mode), closeFn, nil
}
