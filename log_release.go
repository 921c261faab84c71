//go:build !debug

package fortune2d

// logDebugf is a no-op outside debug builds (-tags debug), so callers can log
// unconditionally without every build needing the debug logger.
func logDebugf(format string, v ...interface{}) {}
