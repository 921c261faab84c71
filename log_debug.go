//go:build debug

package fortune2d

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[fortune2d DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages if the logger is enabled.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
