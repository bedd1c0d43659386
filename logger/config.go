package logger

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig logs at info level in text format.
var DefaultConfig = Config{
	Level:  "info",
	Format: "text",
}

// Setup applies cfg to the root logger.
func Setup(cfg Config) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}

	var formatter logrus.Formatter
	switch cfg.Format {
	case "", "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		return errors.Errorf("unknown log format %q", cfg.Format)
	}

	root.SetLevel(level)
	root.SetFormatter(formatter)
	return nil
}
