// =============================================================================
// Property CSV Mapper - Default Logger
// =============================================================================
//
// A small leveled logger that prints to stdout. The pipeline only depends on
// the Logger interface, so a host program can plug in its own implementation
// via SetLogger.
//
// =============================================================================

package pipeline

import "fmt"

// level ordering for the stdout logger.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// StdLogger prints leveled messages to stdout.
type StdLogger struct {
	min int
}

// NewStdLogger creates a stdout logger for the given minimum level
// ("debug", "info", "warn", "error"). An unknown level means info.
func NewStdLogger(level string) *StdLogger {
	min := levelInfo
	switch level {
	case "debug":
		min = levelDebug
	case "warn":
		min = levelWarn
	case "error":
		min = levelError
	}
	return &StdLogger{min: min}
}

func (l *StdLogger) Debug(msg string, args ...interface{}) {
	if l.min <= levelDebug {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *StdLogger) Info(msg string, args ...interface{}) {
	if l.min <= levelInfo {
		fmt.Printf("[INFO] "+msg+"\n", args...)
	}
}

func (l *StdLogger) Warn(msg string, args ...interface{}) {
	if l.min <= levelWarn {
		fmt.Printf("[WARN] "+msg+"\n", args...)
	}
}

func (l *StdLogger) Error(msg string, args ...interface{}) {
	if l.min <= levelError {
		fmt.Printf("[ERROR] "+msg+"\n", args...)
	}
}
