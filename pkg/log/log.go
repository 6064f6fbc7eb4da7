// Copyright 2026 Zipsea, Inc.
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
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 55 // Base width for file path
	statusWidth = 12 // Width for status text
	detailWidth = 20 // Width for detail text
)

// 🎯 FileOperation represents a file patch result for logging
type FileOperation struct {
	Path           string // File path relative to the patch root
	Status         string // Outcome status text
	IsPatched      bool   // Whether the file content was rewritten
	IsMissing      bool   // Whether the file was absent on disk
	IsFailed       bool   // Whether a read or write failed
	ImportInserted bool   // Whether the import line was spliced in
	AnchorMissing  bool   // Whether the anchor search found nothing
	Replacements   int    // Number of replacements made
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *string
	operations []FileOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
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

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsMissing:
		symbol = '-'
		symbolColor = color.FgYellow
	case op.IsPatched:
		symbol = '✓'
		symbolColor = color.FgGreen
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	// Format status with color
	var statusColor color.Attribute
	switch op.Status {
	case "patched":
		statusColor = color.FgCyan
	case "missing", "pending":
		statusColor = color.FgYellow
	default:
		statusColor = color.FgBlue
	}

	// Summarize what changed in the file
	detail := ""
	if op.Replacements > 0 {
		detail = fmt.Sprintf("%d replacement(s)", op.Replacements)
	}
	if op.ImportInserted {
		if detail != "" {
			detail += ", "
		}
		detail += "import added"
	}
	if op.AnchorMissing {
		if detail != "" {
			detail += ", "
		}
		detail += "anchor not found"
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(statusColor).Sprint(fmt.Sprintf("%-*s", statusWidth, op.Status)),
		fmt.Sprintf("%-*s", detailWidth, detail))
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to operations list
	l.operations = append(l.operations, op)

	// Format and print
	fmt.Fprintln(l.console, l.formatFileOperation(op))

	// Log to zerolog
	l.zlog.Info().
		Str("file", op.Path).
		Str("status", op.Status).
		Bool("is_patched", op.IsPatched).
		Bool("is_missing", op.IsMissing).
		Bool("is_failed", op.IsFailed).
		Bool("import_inserted", op.ImportInserted).
		Bool("anchor_missing", op.AnchorMissing).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 StartRun starts a new patch run
func (l *Logger) StartRun(ctx context.Context, title string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &title
	l.operations = nil

	// Print run header
	fmt.Fprintf(l.console, "%s\n", color.New(color.Bold).Sprint(title))

	// Log to zerolog
	l.zlog.Info().
		Str("title", title).
		Msg("starting patch run")
}

// 📝 EndRun ends the current patch run
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return
	}

	// Log summary
	l.zlog.Info().
		Str("title", *l.currentRun).
		Int("files", len(l.operations)).
		Msg("patch run complete")

	l.currentRun = nil
	l.operations = nil
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
	brandText := color.New(color.Bold, color.FgCyan).Sprint("patchkit")
	fmt.Fprintf(l.console, "\n%s %s\n\n", brandText, color.New(color.Faint).Sprint("• "+msg))
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

// 📝 Skipped logs an already-done message
func (l *Logger) Skipped(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "👍 %s\n", color.New(color.FgGreen).Sprint(msg))
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
