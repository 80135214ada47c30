package logging

import (
	"context"
	"log/slog"
)

// MultiHandler forwards each record to every target handler that accepts its
// level.
type MultiHandler struct {
	targets []slog.Handler
}

func NewMultiHandler(targets ...slog.Handler) *MultiHandler {
	return &MultiHandler{targets: targets}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, target := range m.targets {
		if target.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, target := range m.targets {
		if !target.Enabled(ctx, record.Level) {
			continue
		}
		if err := target.Handle(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	targets := make([]slog.Handler, len(m.targets))
	for i, target := range m.targets {
		targets[i] = target.WithAttrs(attrs)
	}
	return &MultiHandler{targets: targets}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	targets := make([]slog.Handler, len(m.targets))
	for i, target := range m.targets {
		targets[i] = target.WithGroup(name)
	}
	return &MultiHandler{targets: targets}
}
