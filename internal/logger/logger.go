package logger

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "dev"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = build(env())
	if err != nil || logger == nil {
		log.Fatal("logger init", err)
	}
}

func env() string {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}
	return env
}

func build(env string, outputs ...string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "prod":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	if len(outputs) > 0 {
		cfg.OutputPaths = outputs
		cfg.ErrorOutputPaths = outputs
	}
	return cfg.Build()
}

// ToFile sends every subsequent log line to path instead of stderr.
// The terminal dashboard owns the screen, so it cannot share it with the logger.
func ToFile(path string) error {
	l, err := build(env(), path)
	if err != nil {
		return errors.Wrap(err, "build file logger")
	}
	_ = logger.Sync()
	logger = l
	return nil
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}

func Sync() {
	_ = logger.Sync()
}
