// Package logging wraps charmbracelet/log the way the teacher's
// common/log package wraps it: a single package-level logger, a
// timestamped stderr writer, and thin Info/Warn/Error/Debug/Fatal
// forwarders. Not every package goes through them: the match coordinator
// takes a *log.Logger from its Config and the terminal agent calls
// charmbracelet/log directly.
package logging

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

func init() {
	logger = log.New(os.Stderr)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetLevel(log.InfoLevel)
}

// SetLevel sets one of "debug"/"info"/"warn"/"error" on the package
// logger; an unrecognized level leaves the current level in place,
// matching the teacher's string-switch rather than a parse-or-fail.
func SetLevel(level string) {
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	}
}

// Logger returns the underlying *log.Logger, for components (the match
// coordinator) that want to pass their own logger instance through
// match.Config rather than calling the package funcs directly.
func Logger() *log.Logger { return logger }

// Fatal, Info, Warn, Error, and Debug take a printf-style format string, so
// they forward to charmbracelet/log's *f variants rather than its
// structured key-value methods (Logger.Info et al. treat trailing args as
// key/value pairs, not %-substitutions).
func Fatal(format string, args ...any) { logger.Fatalf(format, args...) }

func Info(format string, args ...any) { logger.Infof(format, args...) }

func Warn(format string, args ...any) { logger.Warnf(format, args...) }

func Error(format string, args ...any) { logger.Errorf(format, args...) }

func Debug(format string, args ...any) { logger.Debugf(format, args...) }
