package rtcstate

import "sync/atomic"

// debugFrames controls whether verbose frame send logs are emitted.
var debugFrames atomic.Bool

// SetDebugLogging enables/disables verbose data channel debug logs.
func SetDebugLogging(enabled bool) {
	debugFrames.Store(enabled)
}

// debugFramesEnabled reports whether frame debug logs are enabled.
func debugFramesEnabled() bool {
	return debugFrames.Load()
}
