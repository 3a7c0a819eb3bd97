package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/internal/backend"
)

const redactedPlaceholder = "[redacted]"

// Logger is the narrow logging surface the coinswap packages write to.
// Wrap a configured slog.Logger with New, or implement these five methods
// directly to route messages elsewhere or scrub them before they land.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New adapts an slog.Logger to the Logger interface. A nil argument falls
// back to the process-wide slog.Default at call time.
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted stands in for a value that has to stay out of logs. Record the
// attribute under its usual key, substitute the placeholder for the value.
// RPC passwords and wallet passphrases are the expected users.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

var (
	setupOnce sync.Once
	setupErr  error
)

type wireLoggingRequest struct {
	DataDir string `json:"data_dir,omitempty"`
	Level   string `json:"level"`
}

// SetupEngine configures the engine's own file logger under dataDir. The
// native library keeps exactly one logger per process, so only the first
// call takes effect; later calls return the first call's result.
func SetupEngine(dataDir string, level slog.Level) error {
	setupOnce.Do(func() {
		req, err := json.Marshal(wireLoggingRequest{
			DataDir: dataDir,
			Level:   engineLevel(level),
		})
		if err != nil {
			setupErr = err
			return
		}
		setupErr = backend.SetupLogging(req)
	})
	return setupErr
}

func engineLevel(level slog.Level) string {
	switch {
	case level <= slog.LevelDebug:
		return "debug"
	case level <= slog.LevelInfo:
		return "info"
	case level <= slog.LevelWarn:
		return "warn"
	default:
		return "error"
	}
}
