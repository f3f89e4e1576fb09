// Package logger adapts zap to the ports.Logger abstraction.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger routes structured logs through zap.
type ZapLogger struct {
	log *zap.Logger
}

// New builds a logger; verbose enables debug output on a development encoder,
// otherwise warnings and errors go to a production encoder.
func New(verbose bool) *ZapLogger {
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		log, err = cfg.Build()
	}
	if err != nil {
		log = zap.NewNop()
	}
	return &ZapLogger{log: log}
}

// NewNop returns a logger that discards everything; useful in tests.
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, toZap(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, toZap(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, toZap(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error(msg, append(toZap(fields), zap.Error(err))...)
}

func toZap(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
