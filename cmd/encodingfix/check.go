package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/XiangYd616/Web-Test/pkg/config"
	"github.com/XiangYd616/Web-Test/pkg/operation"
	"github.com/XiangYd616/Web-Test/pkg/status"
)

// errFixesNeeded signals a dirty check through the exit code without a report
var errFixesNeeded = errors.New("fixes needed")

// newCheckCmd creates the check command
func newCheckCmd(h *Handler) *cobra.Command {
	var (
		showMissed bool
		exitCode   bool
		async      bool
	)

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Preview repairs without writing",
		Long: `Check runs the substitution table against each target and reports what a
fix pass would change, including a line diff preview. Nothing is written.
With --exit-code the command exits 1 when any target needs fixes, which
makes it usable as a CI gate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			targets, err := h.resolveTargets(ctx, args)
			if err != nil {
				return errors.Errorf("resolving targets: %w", err)
			}

			opts := config.Options{
				Targets:    targets,
				RulesFile:  h.rulesFile,
				EnvFile:    h.envFile,
				ShowMissed: showMissed,
				Async:      async,
			}
			if err := opts.Validate(); err != nil {
				return errors.Errorf("validating options: %w", err)
			}

			ruleset, err := config.LoadRules(ctx, opts.RulesFile)
			if err != nil {
				return errors.Errorf("loading rules: %w", err)
			}

			h.logger.Header("checking for encoding damage")

			checkOps := make([]*operation.CheckOperation, len(opts.Targets))
			ops := make([]operation.Operation, len(opts.Targets))
			for i, target := range opts.Targets {
				op := operation.NewCheckOperation(operation.Options{
					Targets:    []string{target},
					Ruleset:    ruleset,
					Logger:     h.logger,
					ShowMissed: opts.ShowMissed,
				})
				checkOps[i], ops[i] = op, op
			}

			runner := operation.NewRunner(zerolog.Ctx(ctx), opts.Async)
			if err := runner.Run(ctx, ops...); err != nil {
				return err
			}

			dirty := false
			var results []status.FileInfo
			for _, op := range checkOps {
				dirty = dirty || op.Dirty()
				results = append(results, op.Results()...)
			}

			if len(results) > 1 {
				fmt.Fprintln(cmd.OutOrStdout())
				for _, info := range results {
					fmt.Fprintln(cmd.OutOrStdout(), status.FormatTargetLine(info.Path, ruleset.Name, info.Status, info.Fixes))
				}
			}

			h.logger.LogNewline()
			if dirty {
				h.logger.Warningf("%d fix(es) needed", operation.TotalFixes(results))
				if exitCode {
					return errFixesNeeded
				}
				return nil
			}

			h.logger.Success("no fixes needed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMissed, "show-missed", false, "list rules whose broken text was not found")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit 1 when any target needs fixes")
	cmd.Flags().BoolVar(&async, "async", false, "process targets concurrently")

	return cmd
}
