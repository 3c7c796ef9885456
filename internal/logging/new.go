package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Backends accepted by New.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New returns a Logger writing to w. backend is "slog" (text lines) or
// "zap" (JSON lines); level is one of debug, info, warn, error.
func New(backend, level string, w io.Writer) (Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendSlog, "":
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		return newTextSlogLogger(w, l), nil

	case BackendZap:
		var l zapcore.Level
		if err := l.Set(level); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		return newJSONZapLogger(w, l), nil
	}

	return nil, fmt.Errorf("unknown log backend %q", backend)
}
