package logging

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the habitd logging handle. Every level method takes a
// context so tracker and request IDs stored there ride along as fields.
type Logger struct {
	zap    *zap.Logger
	config *Config
}

// NewLogger builds a Logger from cfg. Pass a nil otelProvider to log to
// stdout only; with a provider and Output.OTEL set, entries are teed to
// the OTEL bridge as well.
func NewLogger(cfg *Config, otelProvider log.LoggerProvider) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	core, err := newDualCore(cfg, otelProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create core: %w", err)
	}

	var opts []zap.Option
	if cfg.Caller.Enabled {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(cfg.Caller.Skip))
	}
	if cfg.Stacktrace.Level != 0 {
		opts = append(opts, zap.AddStacktrace(cfg.Stacktrace.Level))
	}

	zl := zap.New(core, opts...)
	if len(cfg.Fields) > 0 {
		constant := make([]zap.Field, 0, len(cfg.Fields))
		for k, v := range cfg.Fields {
			constant = append(constant, zap.String(k, v))
		}
		zl = zl.With(constant...)
	}

	return &Logger{zap: zl, config: cfg}, nil
}

// newEncoder returns the encoder for the configured format. Timestamps
// are ISO8601 under the "ts" key in both formats.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// withCtx prepends the context-carried fields to the caller's fields.
func withCtx(ctx context.Context, fields []zap.Field) []zap.Field {
	return append(ContextFields(ctx), fields...)
}

// Trace logs below Debug. Gated here because zap has no built-in trace
// level and Log would otherwise allocate fields for a dropped entry.
func (l *Logger) Trace(ctx context.Context, msg string, fields ...zap.Field) {
	if l.Enabled(TraceLevel) {
		l.zap.Log(TraceLevel, msg, withCtx(ctx, fields)...)
	}
}

// Debug logs at debug level with context fields attached.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.zap.Debug(msg, withCtx(ctx, fields)...)
}

// Info logs at info level with context fields attached.
func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.zap.Info(msg, withCtx(ctx, fields)...)
}

// Warn logs at warn level with context fields attached.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.zap.Warn(msg, withCtx(ctx, fields)...)
}

// Error logs at error level with context fields attached.
func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.zap.Error(msg, withCtx(ctx, fields)...)
}

// With returns a child logger carrying additional constant fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...), config: l.config}
}

// Named returns a child logger with name appended to the logger's name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{zap: l.zap.Named(name), config: l.config}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.zap.Core().Enabled(level)
}

// Sync flushes buffered entries. Syncing a stdout-backed core fails
// with EINVAL or ENOTTY on Linux pipes and terminals; those are
// swallowed so deferred Sync calls stay clean.
func (l *Logger) Sync() error {
	err := l.zap.Sync()
	if err != nil && isStdoutSyncError(err) {
		return nil
	}
	return err
}

func isStdoutSyncError(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EINVAL || errno == syscall.ENOTTY
	}
	return false
}
