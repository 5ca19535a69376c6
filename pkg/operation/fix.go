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
	"io/fs"

	"gitlab.com/tozd/go/errors"

	"github.com/XiangYd616/Web-Test/pkg/log"
	"github.com/XiangYd616/Web-Test/pkg/patch"
	"github.com/XiangYd616/Web-Test/pkg/status"
)

// 🔧 NewFixOperation creates the pass that repairs targets on disk
func NewFixOperation(opts Options) *FixOperation {
	return &FixOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🔧 FixOperation rewrites damaged targets in place
type FixOperation struct {
	BaseOperation

	results []status.FileInfo
}

// Name identifies the operation
func (op *FixOperation) Name() string {
	return "fix"
}

// 📊 Results returns one entry per processed target, in input order
func (op *FixOperation) Results() []status.FileInfo {
	return op.results
}

// 🏃 Execute runs the fix pass target by target
func (op *FixOperation) Execute(ctx context.Context) error {
	if err := op.Validate(); err != nil {
		return errors.Errorf("validating options: %w", err)
	}

	for _, target := range op.Targets {
		info, report, err := op.fixTarget(ctx, target)
		if report != nil {
			op.reportTarget(ctx, report, info)
		}
		op.results = append(op.results, info)
		if err != nil {
			return errors.Errorf("fixing %s: %w", target, err)
		}
	}

	return nil
}

// 🔨 fixTarget loads a single file, applies the ruleset and rewrites it
func (op *FixOperation) fixTarget(ctx context.Context, target string) (status.FileInfo, *patch.Report, error) {
	content, mode, err := status.ReadTextFile(ctx, target)
	if err != nil {
		info := status.FileInfo{Path: target, Status: status.StatusFailed, Error: err}
		if errors.Is(err, fs.ErrNotExist) {
			info.Status = status.StatusMissing
		}
		return info, nil, errors.Errorf("loading target: %w", err)
	}

	fixed, report := patch.Apply(target, content, op.Ruleset)

	info := status.FileInfo{
		Path:     target,
		Status:   status.StatusUnchanged,
		Fixes:    report.Total(),
		Size:     int64(len(fixed)),
		Mode:     mode,
		Checksum: status.Checksum([]byte(fixed)),
	}

	// Nothing matched, leave the file untouched
	if !report.Changed() {
		return info, report, nil
	}

	if op.Backup {
		if _, err := status.BackupFile(ctx, target); err != nil {
			info.Status = status.StatusFailed
			info.Error = err
			return info, report, errors.Errorf("backing up target: %w", err)
		}
	}

	if err := status.WriteFileAtomic(ctx, target, fixed, mode); err != nil {
		info.Status = status.StatusFailed
		info.Error = err
		return info, report, errors.Errorf("saving target: %w", err)
	}

	info.Status = status.StatusFixed
	return info, report, nil
}

// 📝 reportTarget prints the per-target fix lines
func (op *FixOperation) reportTarget(ctx context.Context, report *patch.Report, info status.FileInfo) {
	op.Logger.StartTarget(ctx, log.TargetOperation{
		Path:    info.Path,
		Ruleset: op.Ruleset.Name,
		Rules:   len(op.Ruleset.Rules),
	})

	for _, app := range report.Applied {
		op.Logger.LogFix(ctx, app)
	}

	if op.ShowMissed {
		for _, rule := range report.Missed {
			op.Logger.LogMiss(ctx, rule)
		}
	}

	op.Logger.EndTarget(ctx)
}
