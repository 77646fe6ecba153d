package rtc

import "sync/atomic"

// debugRTC controls whether verbose peer logs are emitted.
var debugRTC atomic.Bool

// SetDebugLogging enables/disables verbose WebRTC debug logs.
func SetDebugLogging(enabled bool) {
	debugRTC.Store(enabled)
}

// debugEnabled reports whether WebRTC debug logs are enabled.
func debugEnabled() bool {
	return debugRTC.Load()
}
