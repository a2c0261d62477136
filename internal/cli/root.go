// Package cli provides the command-line interface for lintpass.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintpass/internal/cli/commands"
	"github.com/leapstack-labs/lintpass/internal/cli/config"
	"github.com/leapstack-labs/lintpass/internal/render"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Exit codes returned by the lintpass binary.
const (
	ExitOK     = 0
	ExitIssues = 1
	ExitError  = 2
)

// NewRootCmd creates and returns the root command. Given a path it behaves
// like `lintpass check PATH`.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "lintpass PATH",
		Short: "lintpass - pluggable lint passes for Go",
		Long: `lintpass loads Go packages through the host toolchain, lowers them to a
small syntax tree and runs a registry of lint rules over every node in
pre-order.

Rules run in registry order at each node. Code that comes from generated
files or //line directives is skipped unless a rule opts in to it.`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			inputPath := "."
			if (cmd == cmd.Root() || cmd.Name() == "check") && len(args) > 0 {
				inputPath = args[0]
			}

			cfg, err := config.Load(cfgFile, inputPath, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.Verbose && cfg.File != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", cfg.File)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunCheck(cmd, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: lintpass.yaml found upward from PATH)")
	pf.StringP("output", "o", "", "Write diagnostics to this file instead of stdout")
	pf.StringP("format", "f", "", "Output format (auto|text|markdown|json|yaml|table)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.Bool("tests", false, "Include _test.go files")
	pf.StringSlice("build-tags", nil, "Build tags to load packages with")
	pf.Bool("watch", false, "Re-run the check whenever Go sources change")
	pf.Duration("watch-debounce", config.DefaultWatchDebounce, "Quiet period before a watch re-run")
	pf.String("go", "", "go command used for toolchain discovery (default: go)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return render.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Diagnostics already explain an issues-found failure.
		if !errors.Is(err, commands.ErrIssuesFound) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// ExitCode maps the result of Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, commands.ErrIssuesFound):
		return ExitIssues
	default:
		return ExitError
	}
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for lintpass.

To load completions:

Bash:
  $ source <(lintpass completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ lintpass completion zsh > "${fpath[1]}/_lintpass"

Fish:
  $ lintpass completion fish | source

PowerShell:
  PS> lintpass completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
