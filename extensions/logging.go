package extensions

import (
	"time"

	"github.com/charmbracelet/log"

	fixture "github.com/pumped-fn/fixture-go"
)

// LoggingExtension logs every create operation at debug level, and failures
// at error level.
type LoggingExtension struct {
	fixture.BaseExtension
	logger *log.Logger
}

// NewLoggingExtension creates a new logging extension writing to logger. A
// nil logger selects the package logger.
func NewLoggingExtension(logger *log.Logger) *LoggingExtension {
	if logger == nil {
		logger = fixture.Logger()
	}
	return &LoggingExtension{
		BaseExtension: fixture.NewBaseExtension("logging"),
		logger:        logger,
	}
}

func (e *LoggingExtension) Wrap(next func() (any, error), op *fixture.Operation) (any, error) {
	start := time.Now()
	result, err := next()

	keyvals := []any{
		"recipe", op.Recipe.Name(),
		"nested", op.Nested,
		"duration", time.Since(start),
	}
	if op.Variants > 0 {
		keyvals = append(keyvals, "variants", op.Variants)
	}
	if op.Kind == fixture.OpCreateMany {
		keyvals = append(keyvals, "count", op.Count)
	}

	if err == nil {
		e.logger.Debug(string(op.Kind), keyvals...)
	}

	return result, err
}

func (e *LoggingExtension) OnError(err error, op *fixture.Operation) {
	e.logger.Error(string(op.Kind)+" failed", "recipe", op.Recipe.Name(), "nested", op.Nested, "err", err)
}
