// Package logger configures the logrus logger shared by the game.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It is usable before Init, with
// logrus defaults.
var Log = logrus.New()

// Init configures Log from the environment. Call once from main.
//
//   - LOG_LEVEL: logrus level name, default "info"
//   - LOG_FORMAT: "json" for JSON lines, anything else for text
func Init() {
	Configure(Log, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stderr)
}

// Configure applies level, format and output to l.
func Configure(l *logrus.Logger, level, format string, out io.Writer) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
