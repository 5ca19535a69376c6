package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/XiangYd616/Web-Test/pkg/config"
	"github.com/XiangYd616/Web-Test/pkg/log"
)

// Handler carries the flag state shared by every subcommand
type Handler struct {
	rulesFile string
	envFile   string
	debug     bool
	quiet     bool
	noColor   bool

	logger *log.Logger
}

// NewCommand creates the root command with all subcommands attached
func NewCommand() *cobra.Command {
	h := &Handler{}

	cmd := &cobra.Command{
		Use:   "encodingfix",
		Short: "Repair GBK mojibake in UTF-8 source files",
		Long: `encodingfix repairs text files whose Chinese UTF-8 content was mangled by
a GBK misread. It applies an ordered table of literal substitutions,
closes dangling quotes, rewrites files atomically and leaves already
clean files untouched. Running it twice is safe.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			h.logger = h.setupLogging()
		},
	}

	addRootFlags(cmd, h)

	cmd.AddCommand(
		newFixCmd(h),
		newCheckCmd(h),
		newDeriveCmd(h),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, h *Handler) {
	cmd.PersistentFlags().StringVarP(&h.rulesFile, "rules", "r", "", "rules file path (.yaml, .json or .hcl), builtin table when empty")
	cmd.PersistentFlags().StringVar(&h.envFile, "env-file", "", "env file to read TARGET_FILE from (default .env)")
	cmd.PersistentFlags().BoolVarP(&h.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&h.quiet, "quiet", "q", false, "suppress per-fix output")
	cmd.PersistentFlags().BoolVar(&h.noColor, "no-color", false, "disable colored output")
}

// setupLogging configures zerolog based on flags
func (h *Handler) setupLogging() *log.Logger {
	if h.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if h.noColor {
		color.NoColor = true
		pterm.DisableColor()
	}

	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &zlog

	level := zerolog.InfoLevel
	if h.debug {
		level = zerolog.DebugLevel
	}

	logger := log.New(os.Stdout, level)
	logger.SetQuiet(h.quiet)
	return logger
}

// resolveTargets returns the files to process. Arguments win, otherwise the
// TARGET_FILE environment variable or an env file names the single target.
func (h *Handler) resolveTargets(ctx context.Context, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	target, err := config.ResolveTarget(ctx, "", h.envFile)
	if err != nil {
		return nil, err
	}
	return []string{target}, nil
}
