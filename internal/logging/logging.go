// Package logging wires the process-wide debug logger.
//
// The interactive TUI owns the terminal, so logs go to a file instead of
// stderr. Logging is off unless CLAUDETASK_DEBUG_LOG names a path.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envDebugLog = "CLAUDETASK_DEBUG_LOG"

// New returns the debug logger. Without CLAUDETASK_DEBUG_LOG set it is a nop
// logger, so call sites can log unconditionally.
func New() *zap.Logger {
	path := strings.TrimSpace(os.Getenv(envDebugLog))
	if path == "" {
		return zap.NewNop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(f),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
