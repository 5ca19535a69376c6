// Package operation implements the fix and check passes over target files
package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/XiangYd616/Web-Test/pkg/log"
	"github.com/XiangYd616/Web-Test/pkg/patch"
	"github.com/XiangYd616/Web-Test/pkg/status"
)

// 🎯 Operation is a single pass over the configured targets
type Operation interface {
	// Name identifies the operation in logs and error messages
	Name() string
	// Execute runs the pass against every target
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	Targets    []string      // Files to process, in order
	Ruleset    patch.Ruleset // Ordered substitution table
	Logger     *log.Logger   // Console reporter
	Backup     bool          // Write a .bak sibling before rewriting
	ShowMissed bool          // Report table entries that matched nothing
}

// 🔍 Validate checks if the options are complete
func (opts *Options) Validate() error {
	if len(opts.Targets) == 0 {
		return errors.Errorf("at least one target is required")
	}

	for _, target := range opts.Targets {
		if target == "" {
			return errors.Errorf("target path must not be empty")
		}
	}

	if len(opts.Ruleset.Rules) == 0 {
		return errors.Errorf("ruleset must contain at least one rule")
	}

	if opts.Logger == nil {
		return errors.Errorf("logger is required")
	}

	return nil
}

// 🏗️ BaseOperation provides the pieces every operation shares
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}

// 🔢 TotalFixes sums the fixes recorded across a set of results
func TotalFixes(results []status.FileInfo) int {
	total := 0
	for _, info := range results {
		total += info.Fixes
	}
	return total
}
