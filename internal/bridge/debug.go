package bridge

import "sync/atomic"

// debugBridge controls whether per-message bridge logs are emitted.
var debugBridge atomic.Bool

// SetDebugLogging enables/disables verbose bridge logs.
func SetDebugLogging(enabled bool) {
	debugBridge.Store(enabled)
}

// debugEnabled reports whether verbose bridge logs are enabled.
func debugEnabled() bool {
	return debugBridge.Load()
}
