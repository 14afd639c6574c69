// Package-level configuration for structured logging.
//
// Logging is an infrastructure cross-cutting concern shared by every handle
// this package creates, so a single package-global logger slot is used
// rather than per-handle configuration. The default is no logger, which
// logiface treats as a no-op at every call site.

package sysprim

import (
	"sync"

	"github.com/joeycumines/logiface"
)

var globalLogger struct {
	sync.RWMutex
	logger *logiface.Logger[logiface.Event]
}

// SetLogger sets the package-global structured logger. A nil logger
// disables logging. Adapters for concrete backends convert via
// (*logiface.Logger).Logger.
func SetLogger(logger *logiface.Logger[logiface.Event]) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	globalLogger.logger = logger
}

// getLogger returns the global logger, possibly nil; logiface builders
// no-op on a nil logger.
func getLogger() *logiface.Logger[logiface.Event] {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	return globalLogger.logger
}
