/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoding defines the log encoding.
type Encoding = string

// Log encodings.
const (
	Console Encoding = "console"
	JSON    Encoding = "json"
)

// DefaultEncoding is the encoding used when no WithEncoding option is given.
var DefaultEncoding = Console //nolint:gochecknoglobals

type options struct {
	encoding Encoding
	stdOut   zapcore.WriteSyncer
	stdErr   zapcore.WriteSyncer
	fields   []zap.Field
}

// Option configures a logger.
type Option func(o *options)

// WithStdOut sets the sink for DEBUG, INFO and WARN entries.
func WithStdOut(w zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.stdOut = w
	}
}

// WithStdErr sets the sink for ERROR, PANIC and FATAL entries.
func WithStdErr(w zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.stdErr = w
	}
}

// WithFields adds fields to every entry.
func WithFields(fields ...zap.Field) Option {
	return func(o *options) {
		o.fields = fields
	}
}

// WithEncoding sets the output encoding (console or json).
func WithEncoding(encoding Encoding) Option {
	return func(o *options) {
		o.encoding = encoding
	}
}

// Log is a zap logger bound to a module whose level is looked up on every entry.
type Log struct {
	*zap.Logger
	module string
}

// New returns a logger for the given module.
func New(module string, opts ...Option) *Log {
	o := &options{
		encoding: DefaultEncoding,
		stdOut:   os.Stdout,
		stdErr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(o)
	}

	enabled := func(errSink bool) zap.LevelEnablerFunc {
		return func(lvl zapcore.Level) bool {
			if (lvl >= zapcore.ErrorLevel) != errSink {
				return false
			}

			return registry.enabled(module, Level(lvl))
		}
	}

	enc := newEncoder(o.encoding)

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(o.stdErr), enabled(true)),
		zapcore.NewCore(enc, zapcore.Lock(o.stdOut), enabled(false)),
	)

	return &Log{
		Logger: zap.New(core, zap.AddCaller()).Named(module).With(o.fields...),
		module: module,
	}
}

// IsEnabled reports whether entries at the given level are written for this logger's module.
func (l *Log) IsEnabled(level Level) bool {
	return registry.enabled(l.module, level)
}

func newEncoder(encoding Encoding) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch strings.ToLower(encoding) {
	case JSON:
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder

		return zapcore.NewJSONEncoder(cfg)
	case Console:
		cfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(fmt.Sprintf("[%s]", name))
		}

		return zapcore.NewConsoleEncoder(cfg)
	default:
		panic("unsupported encoding " + encoding)
	}
}
