package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/XiangYd616/Web-Test/pkg/config"
	"github.com/XiangYd616/Web-Test/pkg/mojibake"
	"github.com/XiangYd616/Web-Test/pkg/patch"
)

// newDeriveCmd creates the derive command
func newDeriveCmd(h *Handler) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "derive <corrected text>...",
		Short: "Derive remediation rules from corrected text",
		Long: `Derive computes the garbled form a corrected string acquired in the GBK
misread and prints the remediation rule that repairs it. Use it to author
new table entries without hunting for the broken text by hand. With
--yaml the rules print as a file that fix and check accept via --rules.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := make([]patch.Rule, 0, len(args))
			for _, text := range args {
				rule, err := mojibake.DeriveRule(text)
				if err != nil {
					return errors.Errorf("deriving rule for %q: %w", text, err)
				}
				rules = append(rules, rule)
			}

			if asYAML {
				doc := config.Document{Name: "derived", Rules: make([]config.RuleSpec, 0, len(rules))}
				for _, rule := range rules {
					doc.Rules = append(doc.Rules, config.RuleSpec{
						Kind:    rule.Kind.String(),
						Find:    rule.Find,
						Replace: rule.Replace,
					})
				}

				out, err := yaml.Marshal(&doc)
				if err != nil {
					return errors.Errorf("encoding rules: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
				return nil
			}

			data := pterm.TableData{{"corrected", "garbled"}}
			for _, rule := range rules {
				data = append(data, []string{rule.Replace, rule.Find})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			h.logger.Successf("derived %d rule(s)", len(rules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the rules as a loadable YAML rules file")

	return cmd
}
