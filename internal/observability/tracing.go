package observability

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Span times one operation. A span started under another shares its trace ID.
type Span struct {
	TraceID   string
	SpanID    string
	ParentID  string
	Operation string
	Start     time.Time
	Duration  time.Duration
	Err       error

	attrs []slog.Attr
}

type spanKey struct{}

func StartSpan(ctx context.Context, operation string) (context.Context, *Span) {
	span := &Span{
		SpanID:    newID(),
		Operation: operation,
		Start:     time.Now(),
	}
	if parent := GetSpan(ctx); parent != nil {
		span.TraceID = parent.TraceID
		span.ParentID = parent.SpanID
	} else {
		span.TraceID = newID()
	}
	return context.WithValue(ctx, spanKey{}, span), span
}

func GetSpan(ctx context.Context) *Span {
	span, _ := ctx.Value(spanKey{}).(*Span)
	return span
}

func (s *Span) SetAttr(key string, value any) {
	s.attrs = append(s.attrs, slog.Any(key, value))
}

func (s *Span) SetError(err error) {
	s.Err = err
}

// Finish records the elapsed time and returns it.
func (s *Span) Finish() time.Duration {
	s.Duration = time.Since(s.Start)
	return s.Duration
}

// LogValue renders the span as a group when it is passed to a logger.
func (s *Span) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("operation", s.Operation),
		slog.String("span_id", s.SpanID),
		slog.Duration("duration", s.Duration),
	}
	if s.ParentID != "" {
		attrs = append(attrs, slog.String("parent_id", s.ParentID))
	}
	if s.Err != nil {
		attrs = append(attrs, slog.String("status", "error"))
	} else {
		attrs = append(attrs, slog.String("status", "ok"))
	}
	attrs = append(attrs, s.attrs...)
	return slog.GroupValue(attrs...)
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
