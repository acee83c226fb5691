package logger

import (
	"fmt"

	"github.com/GlebRadaev/gamebank/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var levels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Build returns the settlement service logger. Console output is meant for
// a terminal, json for log shippers.
func Build(conf *config.Config) (*zap.Logger, error) {
	lvl, ok := levels[conf.LogLvl]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	enc := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoding string
	switch conf.LogFormat {
	case "", "console":
		encoding = "console"
		enc.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encoding = "json"
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		return nil, fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    enc,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return l.Named("gamebank"), nil
}

// InitLogger installs the logger as zap's global one. The returned func
// flushes buffered entries.
func InitLogger(conf *config.Config) (func(), error) {
	l, err := Build(conf)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return func() { _ = l.Sync() }, nil
}
