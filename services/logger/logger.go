package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface the services depend on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// ZapLogger implements Logger over a zap sugared logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a zap logger. env "dev" selects the console development config.
func New(env, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(env, "dev") {
		cfg = zap.NewDevelopmentConfig()
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func Wrap(z *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: z.Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() *ZapLogger {
	return Wrap(zap.NewNop())
}

func (l *ZapLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *ZapLogger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *ZapLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *ZapLogger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// NewNopZap is the raw zap counterpart of NewNop.
func NewNopZap() *zap.Logger {
	return zap.NewNop()
}
