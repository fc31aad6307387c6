package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Backend names accepted by New.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Options selects and tunes a Logger implementation.
type Options struct {
	Backend string
	Level   string
	// File, when set, receives log output through a daily rotated file
	// instead of stdout. The current file is reachable through File itself.
	File   string
	MaxAge time.Duration
}

// New builds a Logger from opts. The returned closer flushes and releases
// the output and is never nil.
func New(opts Options) (Logger, func() error, error) {
	out, closeOut, err := openOutput(opts)
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h)), closeOut, nil
	case BackendZap:
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(out), zapLevel(opts.Level))
		zl := NewZapLogger(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
		return zl, func() error {
			_ = zl.Sync()
			return closeOut()
		}, nil
	default:
		_ = closeOut()
		return nil, nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func openOutput(opts Options) (io.Writer, func() error, error) {
	if opts.File == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}

	ext := filepath.Ext(opts.File)
	pattern := strings.TrimSuffix(opts.File, ext) + ".%Y%m%d" + ext

	rl, err := rotatelogs.New(pattern,
		rotatelogs.WithLinkName(opts.File),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return rl, rl.Close, nil
}

func slogLevel(l string) slog.Level {
	switch strings.ToLower(l) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(l string) zapcore.Level {
	switch strings.ToLower(l) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
