package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/adrianpk/blockgate/internal/cli"
	"github.com/adrianpk/blockgate/internal/config"
	"github.com/adrianpk/blockgate/internal/hook"
	"github.com/adrianpk/blockgate/internal/policy"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blockgate",
		Short: "Directory protection gate for tool-executing hosts",
		Long: `blockgate decides whether a file-modifying tool invocation may proceed.
It reads a PreToolUse payload on stdin, walks the target's directory
ancestry for .block / .block.local markers and writes the decision to
stdout. The exit code is zero whether the operation is allowed or
blocked; the decision travels in the payload.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook()
		},
	}

	root.AddCommand(initCmd(), checkCmd())
	return root
}

func runHook() error {
	cfg := config.Load()
	setupLogging(cfg)

	input, err := hook.Decode(os.Stdin)
	if err != nil {
		// An unreadable payload is not grounds to stall the host.
		slog.Debug("cannot decode input, allowing", "err", err)
		return hook.Emit(os.Stdout, policy.Allow())
	}

	verdict := hook.NewEvaluator(cfg).Evaluate(input)
	return hook.Emit(os.Stdout, verdict)
}

func initCmd() *cobra.Command {
	var local bool
	var allowed, blocked []string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a protection marker in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("cannot get working directory: %w", err)
			}
			return cli.RunInit(cwd, local, allowed, blocked)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "create .block.local instead of .block")
	cmd.Flags().StringArrayVar(&allowed, "allow", nil, "glob pattern of filenames still permitted (repeatable)")
	cmd.Flags().StringArrayVar(&blocked, "block", nil, "glob pattern of filenames to block (repeatable)")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Evaluate a path against directory protection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogging(cfg)
			return cli.RunCheck(cfg, args[0])
		},
	}
}

// setupLogging routes debug output to stderr; stdout is reserved for the
// decision payload.
func setupLogging(cfg *config.Config) {
	level := slog.LevelWarn
	if cfg.Debug || os.Getenv("BLOCKGATE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
