package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/jwebster45206/adventure-engine/internal/config"
)

// Setup configures the global slog logger based on environment. Lines go to
// cfg.LogFile; if the file cannot be opened or written, logging degrades to a
// no-op after a single diagnostic on stderr. The returned closer releases the
// file.
func Setup(cfg *config.Config) (*slog.Logger, io.Closer) {
	w := openLogFile(cfg.LogFile, os.Stderr)
	return New(cfg, w), w
}

// New builds a logger writing to w with the handler chosen by environment.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	// Configure handler based on environment
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// WithSession adds the session ID to logger context
func WithSession(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With("session_id", sessionID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}

// SafeWriter swallows write errors so a broken log file never takes the game
// down. The first failure is reported once to diag.
type SafeWriter struct {
	mu       sync.Mutex
	w        io.Writer
	diag     io.Writer
	reported bool
}

// NewSafeWriter wraps w. diag may be nil.
func NewSafeWriter(w io.Writer, diag io.Writer) *SafeWriter {
	return &SafeWriter{w: w, diag: diag}
}

func (s *SafeWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		return len(p), nil
	}
	if _, err := s.w.Write(p); err != nil {
		s.report(err)
	}
	return len(p), nil
}

// Close closes the underlying writer if it is closable.
func (s *SafeWriter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.w.(io.Closer); ok {
		err := c.Close()
		s.w = nil
		return err
	}
	return nil
}

func (s *SafeWriter) report(err error) {
	if s.reported || s.diag == nil {
		return
	}
	s.reported = true
	_, _ = fmt.Fprintf(s.diag, "Logging error: %v\n", err)
}

func openLogFile(path string, diag io.Writer) *SafeWriter {
	if path == "" {
		return NewSafeWriter(nil, diag)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			sw := NewSafeWriter(nil, diag)
			sw.report(err)
			return sw
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		sw := NewSafeWriter(nil, diag)
		sw.report(err)
		return sw
	}
	return NewSafeWriter(f, diag)
}
