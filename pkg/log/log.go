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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/XiangYd616/Web-Test/pkg/patch"
)

// 🎨 Display configuration
const (
	fixIndent = 2 // spaces to indent per-fix entries
)

// 🎯 TargetOperation represents one remediation run for logging
type TargetOperation struct {
	Path    string // file being remediated
	Ruleset string // ruleset name
	Rules   int    // number of rules in play
	DryRun  bool   // check mode, nothing will be written
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	quiet     bool
	currentOp *TargetOperation
	fixCount  int
}

// 🏭 New creates a new logger. Per-fix lines go to console, the structured
// stream goes to stderr so redirecting stdout keeps only the user output.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// SetQuiet suppresses per-fix console lines; summaries still print.
func (l *Logger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quiet = quiet
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 oneLine keeps a rule's text on a single console line
func oneLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

// 📝 formatFix formats an applied fix for display
func (l *Logger) formatFix(app patch.Application) string {
	line := fmt.Sprintf("%*s%s %s -> %s",
		fixIndent, "",
		color.New(color.FgGreen).Sprint("✓"),
		oneLine(app.Rule.Before()),
		oneLine(app.Rule.After()))
	if app.Count > 1 {
		line += color.New(color.Faint).Sprintf(" ×%d", app.Count)
	}
	return line
}

// 📝 LogFix logs one applied fix
func (l *Logger) LogFix(ctx context.Context, app patch.Application) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fixCount += app.Count

	if !l.quiet {
		fmt.Fprintln(l.console, l.formatFix(app))
	}

	l.zlog.Info().
		Str("kind", app.Rule.Kind.String()).
		Str("find", app.Rule.Before()).
		Str("replace", app.Rule.After()).
		Int("count", app.Count).
		Msg("fix applied")
}

// 📝 LogMiss logs a rule whose broken text was not found
func (l *Logger) LogMiss(ctx context.Context, rule patch.Rule) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.quiet {
		fmt.Fprintf(l.console, "%*s%s not found: %s\n",
			fixIndent, "",
			color.New(color.FgYellow).Sprint("✗"),
			oneLine(rule.Before()))
	}

	l.zlog.Debug().
		Str("kind", rule.Kind.String()).
		Str("find", rule.Before()).
		Msg("rule not found")
}

// 📝 LogDiff prints a pre-rendered diff preview
func (l *Logger) LogDiff(ctx context.Context, preview string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.quiet {
		fmt.Fprint(l.console, preview)
	}

	l.zlog.Debug().Msg("diff preview rendered")
}

// 📝 StartTarget starts a new remediation run
func (l *Logger) StartTarget(ctx context.Context, op TargetOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.fixCount = 0

	verb := "fixing"
	if op.DryRun {
		verb = "checking"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", verb,
		color.New(color.FgCyan).Sprint(op.Path))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Ruleset),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprintf("%d rules", op.Rules))

	l.zlog.Info().
		Str("target", op.Path).
		Str("ruleset", op.Ruleset).
		Int("rules", op.Rules).
		Bool("dry_run", op.DryRun).
		Msg("starting remediation")
}

// 📝 EndTarget ends the current remediation run
func (l *Logger) EndTarget(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	l.zlog.Info().
		Str("target", l.currentOp.Path).
		Int("fixes", l.fixCount).
		Msg("remediation complete")

	l.currentOp = nil
	l.fixCount = 0
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("encodingfix")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
