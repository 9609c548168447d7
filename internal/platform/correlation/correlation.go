// Package correlation carries a per-request ID from the HTTP edge into log records.
package correlation

import (
	"context"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/google/uuid"
)

const (
	// HeaderName is the request and response header carrying the ID.
	HeaderName = "X-Request-ID"
	// LogKey is the slog attribute the ID is logged under.
	LogKey = "correlation_id"
	// MaxIDLength bounds inbound IDs accepted from clients.
	MaxIDLength = 128
)

type ctxKey struct{}

// NewID returns a fresh random ID.
func NewID() string {
	return uuid.NewString()
}

// Resolve keeps a client-supplied ID when it is short, printable ASCII, and
// otherwise returns a fresh one, so logs never carry arbitrary header bytes.
func Resolve(inbound string) string {
	if inbound == "" || len(inbound) > MaxIDLength {
		return NewID()
	}
	for _, r := range inbound {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || r == ' ' {
			return NewID()
		}
	}
	return inbound
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID reports the ID stored on ctx, if any.
func ID(ctx context.Context) (string, bool) {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id, id != ""
}

// Handler decorates records with LogKey whenever the context has an ID.
type Handler struct {
	next slog.Handler
}

func NewHandler(next slog.Handler) *Handler {
	return &Handler{next: next}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	id, ok := ID(ctx)
	if ok {
		r = r.Clone()
		r.AddAttrs(slog.String(LogKey, id))
	}
	if err := h.next.Handle(ctx, r); err != nil {
		return fmt.Errorf("write log record: %w", err)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewHandler(h.next.WithAttrs(attrs))
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return NewHandler(h.next.WithGroup(name))
}
