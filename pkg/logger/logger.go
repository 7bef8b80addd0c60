package logger

import (
	"fmt"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type zapLogger struct {
	lg *zap.SugaredLogger
}

func New(cfg config.Logger) (Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse level error: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	if len(cfg.Output) != 0 {
		zapCfg.OutputPaths = cfg.Output
	}

	if len(cfg.ErrOutput) != 0 {
		zapCfg.ErrorOutputPaths = cfg.ErrOutput
	}

	l, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger error: %w", err)
	}

	return zapLogger{lg: l.Sugar()}, nil
}

func (z zapLogger) Info(args ...interface{}) {
	z.lg.Info(args...)
}

func (z zapLogger) Infof(format string, args ...interface{}) {
	z.lg.Infof(format, args...)
}

func (z zapLogger) Warnf(format string, args ...interface{}) {
	z.lg.Warnf(format, args...)
}

func (z zapLogger) Error(args ...interface{}) {
	z.lg.Error(args...)
}

func (z zapLogger) Errorf(format string, args ...interface{}) {
	z.lg.Errorf(format, args...)
}
