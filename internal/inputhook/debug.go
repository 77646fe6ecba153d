package inputhook

import "sync/atomic"

// debugHook controls whether per-event hook logs are emitted.
var debugHook atomic.Bool

// SetDebugLogging enables/disables verbose hook logs.
func SetDebugLogging(enabled bool) {
	debugHook.Store(enabled)
}

func debugEnabled() bool {
	return debugHook.Load()
}
