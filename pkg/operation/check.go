// Copyright 2025 the Web-Test authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"

	"github.com/XiangYd616/Web-Test/pkg/log"
	"github.com/XiangYd616/Web-Test/pkg/patch"
	"github.com/XiangYd616/Web-Test/pkg/status"
)

// diffPreviewLimit caps how many changed lines a single target may print
const diffPreviewLimit = 80

// 🔍 NewCheckOperation creates the read-only pass that previews repairs
func NewCheckOperation(opts Options) *CheckOperation {
	return &CheckOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🔍 CheckOperation reports what a fix pass would change without writing anything
type CheckOperation struct {
	BaseOperation

	results []status.FileInfo
	dirty   bool
}

// Name identifies the operation
func (op *CheckOperation) Name() string {
	return "check"
}

// 📊 Results returns one entry per processed target, in input order
func (op *CheckOperation) Results() []status.FileInfo {
	return op.results
}

// 🚨 Dirty reports whether any target still needs fixes
func (op *CheckOperation) Dirty() bool {
	return op.dirty
}

// 🏃 Execute runs the check pass without modifying any target
func (op *CheckOperation) Execute(ctx context.Context) error {
	if err := op.Validate(); err != nil {
		return errors.Errorf("validating options: %w", err)
	}

	for _, target := range op.Targets {
		info, report, preview, err := op.checkTarget(ctx, target)
		if report != nil {
			op.reportTarget(ctx, report, info, preview)
		}
		op.results = append(op.results, info)
		if err != nil {
			return errors.Errorf("checking %s: %w", target, err)
		}
		if report != nil && report.Changed() {
			op.dirty = true
		}
	}

	return nil
}

// 🔎 checkTarget loads a file and previews what the ruleset would change
func (op *CheckOperation) checkTarget(ctx context.Context, target string) (status.FileInfo, *patch.Report, string, error) {
	content, mode, err := status.ReadTextFile(ctx, target)
	if err != nil {
		info := status.FileInfo{Path: target, Status: status.StatusFailed, Error: err}
		if errors.Is(err, fs.ErrNotExist) {
			info.Status = status.StatusMissing
		}
		return info, nil, "", errors.Errorf("loading target: %w", err)
	}

	fixed, report := patch.Apply(target, content, op.Ruleset)

	// Size and checksum describe the file as it is on disk, not the preview
	info := status.FileInfo{
		Path:     target,
		Status:   status.StatusUnchanged,
		Fixes:    report.Total(),
		Size:     int64(len(content)),
		Mode:     mode,
		Checksum: status.Checksum([]byte(content)),
	}

	if !report.Changed() {
		return info, report, "", nil
	}

	info.Status = status.StatusFixed
	return info, report, renderDiff(content, fixed), nil
}

// 📝 reportTarget prints the would-be fix lines and the diff preview
func (op *CheckOperation) reportTarget(ctx context.Context, report *patch.Report, info status.FileInfo, preview string) {
	op.Logger.StartTarget(ctx, log.TargetOperation{
		Path:    info.Path,
		Ruleset: op.Ruleset.Name,
		Rules:   len(op.Ruleset.Rules),
		DryRun:  true,
	})

	for _, app := range report.Applied {
		op.Logger.LogFix(ctx, app)
	}

	if op.ShowMissed {
		for _, rule := range report.Missed {
			op.Logger.LogMiss(ctx, rule)
		}
	}

	if preview != "" {
		op.Logger.LogDiff(ctx, preview)
	}

	op.Logger.EndTarget(ctx)
}

// 🎨 renderDiff builds a colored line diff between current and repaired content
func renderDiff(current, fixed string) string {
	dmp := diffmatchpatch.New()
	src, dst, lineArray := dmp.DiffLinesToChars(current, fixed)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lineArray)

	var b strings.Builder
	printed := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}

		prefix, paint := "-", color.New(color.FgRed)
		if d.Type == diffmatchpatch.DiffInsert {
			prefix, paint = "+", color.New(color.FgGreen)
		}

		for _, line := range splitDiffLines(d.Text) {
			if printed >= diffPreviewLimit {
				fmt.Fprintf(&b, "    %s\n", color.New(color.Faint).Sprint("(diff truncated)"))
				return b.String()
			}
			fmt.Fprintf(&b, "    %s\n", paint.Sprintf("%s %s", prefix, line))
			printed++
		}
	}

	return b.String()
}

// splitDiffLines splits a diff chunk into lines, dropping the trailing newline
func splitDiffLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
