package sqlbuilder

import (
	"fmt"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDev LogLevel = iota
	LogLevelProd
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type zapLogger struct {
	l *zap.SugaredLogger
}

// NewLogger builds a zap backed Logger for the given level.
func NewLogger(level LogLevel) (Logger, error) {
	var cfg zap.Config
	switch level {
	case LogLevelDev:
		cfg = zap.NewDevelopmentConfig()
	case LogLevelProd:
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("log level should be either LogLevelDev or LogLevelProd")
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{l.Sugar()}, nil
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l.Sugar()}
}

func nopLogger() Logger {
	return &zapLogger{zap.NewNop().Sugar()}
}

func (z *zapLogger) Debugf(format string, args ...any) {
	z.l.Debugf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...any) {
	z.l.Infof(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...any) {
	z.l.Warnf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...any) {
	z.l.Errorf(format, args...)
}
