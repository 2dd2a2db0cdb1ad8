// Package log configures the process-wide slog logger used by the dialog
// layer. Logging is entirely optional; nothing in the library requires Setup
// to have been called.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
)

// Setup initializes JSON logging to the given file with rotation. Safe to
// call more than once; only the first call takes effect.
func Setup(logFile string, debugLevel bool) {
	initOnce.Do(func() {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 0,
			MaxAge:     30, // days
			Compress:   false,
		}

		level := slog.LevelInfo
		if debugLevel {
			level = slog.LevelDebug
		}

		handler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})

		slog.SetDefault(slog.New(handler))
		initialized.Store(true)
	})
}

// Initialized reports whether [Setup] has run.
func Initialized() bool {
	return initialized.Load()
}

// RecoverPanic recovers a panic, writes a timestamped report file and runs
// the optional cleanup. Call it in a defer around UI entry points.
func RecoverPanic(name string, cleanup func()) {
	r := recover()
	if r == nil {
		return
	}

	slog.Error("panic recovered", "name", name, "value", fmt.Sprint(r))

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("ada-ui-panic-%s-%s.log", name, timestamp)

	if file, err := os.Create(filename); err == nil {
		defer file.Close()
		fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
		fmt.Fprintf(file, "Time: %s\n\n", time.Now().Format(time.RFC3339))
		fmt.Fprintf(file, "Stack Trace:\n%s\n", debug.Stack())
	}

	if cleanup != nil {
		cleanup()
	}
}
