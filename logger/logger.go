// Package logger holds the process-wide logrus logger
// The terminal owns stdout, so the binary points it at a file; until Setup runs it discards everything
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger
var Log = discard()

// Options configures Setup
type Options struct {
	Level  string // logrus level name, empty means info
	Format string // "json" or "text"
	Output io.Writer
}

// Setup replaces the global logger
// An unknown level is an error and leaves the current logger in place
func Setup(opts Options) error {
	lvl := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}

	l := logrus.New()
	l.SetLevel(lvl)
	if strings.ToLower(opts.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}
	if opts.Output != nil {
		l.SetOutput(opts.Output)
	} else {
		l.SetOutput(io.Discard)
	}
	Log = l
	return nil
}

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
