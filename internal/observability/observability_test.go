package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ecommerce-dashboard/internal/config"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_ContextIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LoggerConfig{Level: "info", Format: "json"})

	ctx := WithRequestID(context.Background(), "req-42")
	ctx, span := StartSpan(ctx, "report.generate")
	logger.InfoContext(ctx, "report generated")

	entry := decodeLine(t, &buf)
	require.Equal(t, "req-42", entry["request_id"])
	require.Equal(t, span.TraceID, entry["trace_id"])
}

func TestLogger_NoContextIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LoggerConfig{Level: "info", Format: "json"})

	logger.With("component", "reports").Info("started")

	entry := decodeLine(t, &buf)
	require.Equal(t, "reports", entry["component"])
	require.NotContains(t, entry, "request_id")
	require.NotContains(t, entry, "trace_id")
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LoggerConfig{Level: "warn", Format: "text"})

	logger.Info("hidden")
	require.Zero(t, buf.Len())

	logger.Warn("shown")
	require.Contains(t, buf.String(), "msg=shown")
}

func TestStartSpan_Nested(t *testing.T) {
	ctx, parent := StartSpan(context.Background(), "GET /api/late-orders")
	_, child := StartSpan(ctx, "report.generate")

	require.Len(t, parent.TraceID, 16)
	require.Equal(t, parent.TraceID, child.TraceID)
	require.Equal(t, parent.SpanID, child.ParentID)
	require.NotEqual(t, parent.SpanID, child.SpanID)
	require.Same(t, parent, GetSpan(ctx))
}

func TestSpan_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LoggerConfig{Level: "info", Format: "json"})

	_, span := StartSpan(context.Background(), "report.generate")
	span.SetAttr("fact_rows", 7)
	span.SetError(errors.New("load orders.csv: open file"))
	span.Finish()
	logger.Info("done", "span", span)

	group, ok := decodeLine(t, &buf)["span"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "report.generate", group["operation"])
	require.Equal(t, "error", group["status"])
	require.EqualValues(t, 7, group["fact_rows"])
}
