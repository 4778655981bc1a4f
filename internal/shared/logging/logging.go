package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup builds the process logger writing to stderr. format is "json" or "text".
func Setup(level, format string) (*logrus.Logger, error) {
	return setup(os.Stderr, level, format)
}

func setup(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	var formatter logrus.Formatter
	switch format {
	case "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	default:
		formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		}
	}

	logger := &logrus.Logger{
		Formatter: formatter,
		Out:       out,
		Level:     lvl,
		Hooks:     make(logrus.LevelHooks),
		ExitFunc:  os.Exit,
	}
	return logger, nil
}

// Component returns a logger tagged with the component name.
func Component(log logrus.FieldLogger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
