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

// newFixCmd creates the fix command
func newFixCmd(h *Handler) *cobra.Command {
	var (
		backup     bool
		showMissed bool
		async      bool
	)

	cmd := &cobra.Command{
		Use:   "fix [file...]",
		Short: "Repair encoding damage in place",
		Long: `Fix applies the substitution table to each target file and rewrites it
atomically. Targets come from the arguments, the TARGET_FILE environment
variable or a .env file, in that order. Files with nothing to fix are
left untouched.`,
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
				Backup:     backup,
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

			h.logger.Header("repairing encoding damage")

			fixOps := make([]*operation.FixOperation, len(opts.Targets))
			ops := make([]operation.Operation, len(opts.Targets))
			for i, target := range opts.Targets {
				op := operation.NewFixOperation(operation.Options{
					Targets:    []string{target},
					Ruleset:    ruleset,
					Logger:     h.logger,
					Backup:     opts.Backup,
					ShowMissed: opts.ShowMissed,
				})
				fixOps[i], ops[i] = op, op
			}

			runner := operation.NewRunner(zerolog.Ctx(ctx), opts.Async)
			if err := runner.Run(ctx, ops...); err != nil {
				return err
			}

			var results []status.FileInfo
			for _, op := range fixOps {
				results = append(results, op.Results()...)
			}

			if len(results) > 1 {
				fmt.Fprintln(cmd.OutOrStdout())
				for _, info := range results {
					fmt.Fprintln(cmd.OutOrStdout(), status.FormatTargetLine(info.Path, ruleset.Name, info.Status, info.Fixes))
				}
			}

			h.logger.LogNewline()
			total := operation.TotalFixes(results)
			if total == 0 {
				h.logger.Info("no encoding issues found")
			} else {
				h.logger.Successf("fixed %d encoding issue(s)", total)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&backup, "backup", "b", false, "write a .bak copy before rewriting")
	cmd.Flags().BoolVar(&showMissed, "show-missed", false, "list rules whose broken text was not found")
	cmd.Flags().BoolVar(&async, "async", false, "process targets concurrently")

	return cmd
}
