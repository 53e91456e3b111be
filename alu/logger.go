package alu

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   *zap.Logger
)

// Logger returns the package logger. It is a no-op logger until SetLogger
// is called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// SetLogger installs a logger for evaluation tracing. Tools enable this;
// library use normally leaves the no-op default in place.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// debug gates evaluation tracing; the hot path stays branch-cheap when off.
var debug = false

// SetDebug toggles per-call evaluation tracing through the package logger.
func SetDebug(v bool) { debug = v }

func debugf(format string, args ...any) {
	if debug {
		Logger().Sugar().Debugf(format, args...)
	}
}
