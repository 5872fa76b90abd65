// Package jnilog provides structured logging for the bridge using zap.
package jnilog

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with bridge-specific helpers.
type Logger struct {
	*zap.Logger
	onCall func(thread uint64, category, name, detail string) // JNI-call trace callback
}

var (
	// L is the global logger instance.
	L    *Logger
	once sync.Once
)

// Init initializes the global logger with the given configuration.
// Safe to call multiple times; only the first call takes effect.
func Init(debug bool) {
	once.Do(func() {
		L = New(debug)
	})
}

// New creates a new Logger instance.
func New(debug bool) *Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &Logger{Logger: logger}
}

// NewNop creates a no-op logger for testing.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// SetOnCall sets the trace callback that JNICall invokes.
func (l *Logger) SetOnCall(fn func(thread uint64, category, name, detail string)) {
	l.onCall = fn
}

// JNICall logs a JNI call surface event and invokes the trace callback if set.
// In this module only internal/attach reports through it (guard-close
// events); the call, field, array and string operations do not.
func (l *Logger) JNICall(thread uint64, category, name, detail string) {
	if l.onCall != nil {
		l.onCall(thread, category, name, detail)
	}

	l.Debug("jnicall",
		zap.String("cat", category),
		zap.String("fn", name),
		zap.String("detail", detail),
		zap.Uint64("thread", thread),
	)
}

// Attach logs a thread-attachment lifecycle transition.
func (l *Logger) Attach(thread uint64, from, to string) {
	l.Debug("attach",
		zap.Uint64("thread", thread),
		zap.String("from", from),
		zap.String("to", to),
	)
}

// Frame logs a local-reference frame push/pop, tagged with a short
// debug-correlation id so pushes and pops can be matched in a trace.
func (l *Logger) Frame(id string, op string, capacity int32) {
	l.Debug("frame",
		zap.String("id", id),
		zap.String("op", op),
		zap.Int32("capacity", capacity),
	)
}

// EnvelopeOutcome logs how a native-method envelope resolved its outcome.
func (l *Logger) EnvelopeOutcome(method, outcome string, policy string) {
	l.Debug("envelope",
		zap.String("method", method),
		zap.String("outcome", outcome),
		zap.String("policy", policy),
	)
}

// WithCategory returns a logger with the category field preset.
func (l *Logger) WithCategory(category string) *Logger {
	return &Logger{
		Logger: l.Logger.With(zap.String("cat", category)),
		onCall: l.onCall,
	}
}

// Hex formats a uint64 as a hex string for logging.
func Hex(addr uint64) string {
	return "0x" + hexString(addr)
}

func hexString(v uint64) string {
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0"
	}
	buf := make([]byte, 16)
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[i:])
}

// Field helpers for common patterns.

// Addr creates a hex-formatted address field.
func Addr(addr uint64) zap.Field {
	return zap.String("addr", Hex(addr))
}

// Size creates a size field.
func Size(size uint64) zap.Field {
	return zap.Uint64("size", size)
}

// Ptr creates a named hex-formatted pointer field.
func Ptr(name string, ptr uint64) zap.Field {
	return zap.String(name, Hex(ptr))
}

// Fn creates a function-name field.
func Fn(name string) zap.Field {
	return zap.String("fn", name)
}
