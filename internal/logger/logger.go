// Package logger builds the structured logger used by the long running server.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Log wraps logrus.Logger with component scoped entries.
type Log struct {
	*logrus.Logger
}

// New returns a logger writing to out at the given level.
// format is "json" (default) or "text".
func New(out io.Writer, level, format string) (*Log, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return nil, fmt.Errorf("invalid log format %q: must be json or text", format)
	}
	return &Log{Logger: logger}, nil
}

// WithComponent tags every entry with the subsystem that produced it.
func (l *Log) WithComponent(component string) *logrus.Entry {
	return l.WithField("component", component)
}
