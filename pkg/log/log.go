// Copyright 2025 walteh LLC
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
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/envwiz/pkg/diff"
	"github.com/walteh/envwiz/pkg/validate"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent field entries
	fieldWidth  = 36 // base width for field names
	valueWidth  = 24 // width for rendered values
)

// 🎯 Logger handles user-facing console output with a zerolog mirror
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	quiet   bool
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔇 SetQuiet suppresses console output; the zerolog mirror keeps logging
func (l *Logger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quiet = quiet
}

// 📝 LogFinding prints one validation finding
func (l *Logger) LogFinding(f validate.ValidationError) {
	l.mu.Lock()
	defer l.mu.Unlock()

	symbol := color.New(color.FgRed).Sprint("✗")
	label := "error"
	if f.Type == validate.SeverityWarning {
		symbol = color.New(color.FgYellow).Sprint("!")
		label = "warning"
	}

	l.printf("%s%s %s %s\n",
		fmt.Sprintf("%*s", entryIndent, ""),
		symbol,
		fmt.Sprintf("%-*s", fieldWidth, f.Field),
		f.Message)

	l.zlog.Info().
		Str("field", f.Field).
		Str("severity", label).
		Str("message", f.Message).
		Msg("validation finding")
}

// 📝 LogDiffEntry prints one classified configuration change
func (l *Logger) LogDiffEntry(e diff.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var symbol string
	var detail string
	switch e.Type {
	case diff.ChangeAdded:
		symbol = color.New(color.FgGreen).Sprint("+")
		detail = e.CurrentValue
	case diff.ChangeRemoved:
		symbol = color.New(color.FgRed).Sprint("-")
		detail = color.New(color.Faint).Sprintf("(was %s)", e.DefaultValue)
	case diff.ChangeModified:
		symbol = color.New(color.FgBlue).Sprint("~")
		detail = fmt.Sprintf("%s %s",
			fmt.Sprintf("%-*s", valueWidth, e.CurrentValue),
			color.New(color.Faint).Sprintf("(was %s)", e.DefaultValue))
	}

	l.printf("%s%s %s %s\n",
		fmt.Sprintf("%*s", entryIndent, ""),
		symbol,
		fmt.Sprintf("%-*s", fieldWidth, e.Field),
		detail)

	l.zlog.Info().
		Str("field", e.Field).
		Str("category", e.Category).
		Str("change", string(e.Type)).
		Msg("diff entry")
}

// 📝 CategoryHeader prints a diff category heading
func (l *Logger) CategoryHeader(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printf("  %s\n", color.New(color.Bold, color.FgCyan).Sprint(name))
}

// 📝 Header prints the tool banner with a message
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	banner := color.New(color.Bold, color.FgCyan).Sprint("envwiz")
	l.printf("\n%s %s\n\n", banner, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success prints a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printf("✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning prints a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printf("⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error prints an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printf("❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info prints an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printf("ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Newline prints a blank line
func (l *Logger) Newline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printf("\n")
}

// 📝 Successf prints a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 📝 Warningf prints a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf prints a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Infof prints a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) printf(format string, args ...interface{}) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.console, format, args...)
}
