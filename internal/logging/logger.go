package logging

import (
	"io"
	"os"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]interface{}

var (
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger atomic.Pointer[zap.Logger]
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput redirects the JSON log lines to w.
func SetOutput(w io.Writer) {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.LevelKey = "level"
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	logger.Store(zap.New(core))
}

// SetLevel accepts debug, info, warn or error.
func SetLevel(name string) error {
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

func toZap(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

func withError(fields Fields, err error) []zap.Field {
	zf := toZap(fields)
	if err != nil {
		zf = append(zf, zap.String("error", err.Error()))
	}
	return zf
}

// Debug logs a diagnostic message with optional fields.
func Debug(msg string, fields Fields) {
	logger.Load().Debug(msg, toZap(fields)...)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	logger.Load().Info(msg, toZap(fields)...)
}

// Warn logs a recoverable problem.
func Warn(msg string, fields Fields) {
	logger.Load().Warn(msg, toZap(fields)...)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	logger.Load().Error(msg, withError(fields, err)...)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	l := logger.Load()
	l.Error(msg, withError(fields, err)...)
	_ = l.Sync()
	os.Exit(1)
}
