package toolkit

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps a Tool with cross-cutting behavior (logging, recovery).
type Middleware func(Tool) Tool

// WithLogging returns a middleware that logs start, end, duration, and errors.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Tool) Tool {
		return &loggingTool{toolBase: toolBase{next: next}, logger: logger}
	}
}

// WithRecovery returns a middleware that recovers panics inside a tool and
// returns them as SystemError.
func WithRecovery() Middleware {
	return func(next Tool) Tool {
		return &recoveryTool{toolBase{next: next}}
	}
}

// toolBase delegates the descriptor methods to the wrapped Tool.
type toolBase struct{ next Tool }

func (b *toolBase) Name() string               { return b.next.Name() }
func (b *toolBase) Description() string        { return b.next.Description() }
func (b *toolBase) InputSchema() map[string]any { return b.next.InputSchema() }

type loggingTool struct {
	toolBase
	logger *slog.Logger
}

func (m *loggingTool) Call(ctx context.Context, args []byte) (string, error) {
	m.logger.Info("tool start", "tool", m.next.Name())
	start := time.Now()
	text, err := m.next.Call(ctx, args)
	dur := time.Since(start)
	if err != nil {
		m.logger.Error("tool error", "tool", m.next.Name(), "duration", dur, "error", err)
		return "", err
	}
	m.logger.Info("tool end", "tool", m.next.Name(), "duration", dur)
	return text, nil
}

type recoveryTool struct{ toolBase }

func (r *recoveryTool) Call(ctx context.Context, args []byte) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = &SystemError{Err: &panicError{p: p}}
		}
	}()
	return r.next.Call(ctx, args)
}
