package sequel

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDev LogLevel = iota
	LogLevelProd
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDev:
		return "dev"
	case LogLevelProd:
		return "prod"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// ParseLogLevel reads "dev" or "prod", ignoring case.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return LogLevelDev, nil
	case "prod", "production":
		return LogLevelProd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// logger is silent until SetLogger is called.
var logger Logger = &zapLogger{zap.NewNop().Sugar()}

// SetLogger replaces the package logger. A nil l silences logging again.
// It is not synchronized with builders running on other goroutines.
func SetLogger(l Logger) {
	if l == nil {
		l = &zapLogger{zap.NewNop().Sugar()}
	}
	logger = l
}

// Log returns the package logger, for packages building on sequel.
func Log() Logger {
	return logger
}

type zapLogger struct {
	l *zap.SugaredLogger
}

// NewLogger builds a zap backed Logger from zap's development or production config.
func NewLogger(env LogLevel) (Logger, error) {
	var cfg zap.Config
	switch env {
	case LogLevelDev:
		cfg = zap.NewDevelopmentConfig()
	case LogLevelProd:
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidLogLevel, env)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{l.Sugar()}, nil
}

func (z *zapLogger) Debugf(format string, args ...any) {
	format = fmt.Sprintf("[DEBUG] %s", format)
	z.l.Debugf(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...any) {
	format = fmt.Sprintf("[WARN] %s", format)
	z.l.Warnf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...any) {
	format = fmt.Sprintf("[ERROR] %s", format)
	z.l.Errorf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...any) {
	format = fmt.Sprintf("[INFO] %s", format)
	z.l.Infof(format, args...)
}
