package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. It writes to stderr so that stdout only
// carries the report.
var Logger *logrus.Logger

func init() {
	Logger = logrus.New()

	Logger.SetOutput(os.Stderr)

	// Warnings and errors only unless asked for more
	Logger.SetLevel(logrus.WarnLevel)

	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetLevel sets the logging level, unknown names fall back to warn
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "info":
		Logger.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.SetLevel(logrus.WarnLevel)
	}
}

// ValidLevel reports whether SetLevel understands level
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// SetQuiet disables all logging except errors
func SetQuiet() {
	Logger.SetLevel(logrus.ErrorLevel)
}

// SetVerbose enables debug logging
func SetVerbose() {
	Logger.SetLevel(logrus.DebugLevel)
}
