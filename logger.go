package fixture

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// defaultLogger holds the package logger.
var defaultLogger atomic.Pointer[log.Logger]

func init() {
	defaultLogger.Store(log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "fixture",
		Level:  log.WarnLevel,
	}))
}

// Logger returns the logger used for misuse warnings.
func Logger() *log.Logger {
	return defaultLogger.Load()
}

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(logger *log.Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}
