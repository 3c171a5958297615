// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production zap logger at the given level, falling back to
// error when the level cannot be parsed.
func NewLogger(l string) *Logger {
	var lvl string

	switch strings.ToLower(l) {
	case "debug", "info", "warn", "error", "fatal":
		lvl = strings.ToLower(l)
	default:
		lvl = "error"
	}

	level, err := zap.ParseAtomicLevel(lvl)
	if err != nil {
		panic(err.Error())
	}

	c := zap.NewProductionConfig()
	c.Level = level
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger := zap.Must(c.Build())
	logger.Debug("Logger configured", zap.String("level", lvl))

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: logger.Named("security")},
	}
}
