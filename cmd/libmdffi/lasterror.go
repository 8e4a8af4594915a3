package main

import (
	"sync"

	"github.com/yhilem-ai/mdffi"
	"go.uber.org/zap"
)

// The last recoverable failure, reported through mdffi_last_error. It is
// process-wide: goroutines do not map onto caller threads.
var lastErr struct {
	mu  sync.Mutex
	msg string
	set bool
}

func recordError(err error) {
	mdffi.Logger().Debug("recoverable boundary failure", zap.Error(err))
	lastErr.mu.Lock()
	lastErr.msg = err.Error()
	lastErr.set = true
	lastErr.mu.Unlock()
}

// takeLastError returns and clears the recorded failure.
func takeLastError() (string, bool) {
	lastErr.mu.Lock()
	defer lastErr.mu.Unlock()
	msg, ok := lastErr.msg, lastErr.set
	lastErr.msg, lastErr.set = "", false
	return msg, ok
}
