// Package logger wraps logrus with process-wide initialization from
// configuration.
package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/thanhtai05/task-manager/config"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	*logrus.Logger
}

var (
	standardLogger *Logger
	once           sync.Once
)

// Standard returns the singleton logger instance.
func Standard() *Logger {
	once.Do(func() {
		standardLogger = &Logger{
			Logger: logrus.New(),
		}
		standardLogger.SetFormatter(&logrus.TextFormatter{})
	})
	return standardLogger
}

// Init initializes the logger with the given configuration.
func (l *Logger) Init(c *config.Logger) error {
	if c == nil {
		return nil
	}

	if c.Level != "" {
		level, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
		l.SetLevel(level)
	}

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	switch c.Output {
	case "stderr":
		l.SetOutput(os.Stderr)
	default:
		l.SetOutput(os.Stdout)
	}

	return nil
}
