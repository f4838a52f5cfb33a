package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init configures the global logger. Safe to call more than once; only the
// first call wins.
func Init(level string, development bool) {
	once.Do(func() {
		var cfg zap.Config
		if development {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
		}
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		logger, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			logger = zap.NewNop()
		}
		sugar = logger.Sugar()
	})
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func logger() *zap.SugaredLogger {
	if sugar == nil {
		Init("info", false)
	}
	return sugar
}

// Debug logs a debug message with key-value pairs
func Debug(msg string, keysAndValues ...any) {
	logger().Debugw(msg, normalize(keysAndValues)...)
}

// Info logs an info message with key-value pairs
func Info(msg string, keysAndValues ...any) {
	logger().Infow(msg, normalize(keysAndValues)...)
}

// Warn logs a warning message with key-value pairs
func Warn(msg string, keysAndValues ...any) {
	logger().Warnw(msg, normalize(keysAndValues)...)
}

// Error logs an error message with key-value pairs
func Error(msg string, keysAndValues ...any) {
	logger().Errorw(msg, normalize(keysAndValues)...)
}

// Sync flushes buffered log entries
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

// normalize tolerates a bare trailing error so call sites can write
// logger.Error("Repo:Method", err) without a key.
func normalize(kv []any) []any {
	if len(kv)%2 == 1 {
		if err, ok := kv[len(kv)-1].(error); ok {
			return append(kv[:len(kv)-1:len(kv)-1], "error", err)
		}
		return append(kv[:len(kv)-1:len(kv)-1], "arg", kv[len(kv)-1])
	}
	return kv
}
