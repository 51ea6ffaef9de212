package errors

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-dashboard/internal/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDataLoadWrap(t *testing.T) {
	cause := stderrors.New("load orders.csv: open file: no such file")
	err := DataLoadWrap(cause, "report data could not be loaded")

	if err.Code != CodeDataLoad {
		t.Errorf("Code = %s, want %s", err.Code, CodeDataLoad)
	}
	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", err.StatusCode)
	}
	if err.Details != cause.Error() {
		t.Errorf("Details = %q, want the cause message", err.Details)
	}
	if !stderrors.Is(err, cause) {
		t.Error("AppError should unwrap to its cause")
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   ErrorCode
	}{
		{"rate limit", RateLimit("slow down"), http.StatusTooManyRequests, CodeRateLimit},
		{"unavailable", Unavailable("shutting down"), http.StatusServiceUnavailable, CodeUnavailable},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/late-orders", nil)
			r = r.WithContext(observability.WithRequestID(r.Context(), "req-1"))
			w := httptest.NewRecorder()
			WriteError(w, r, discardLogger(), tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if got := w.Header().Get("Cache-Control"); got != "no-cache" {
				t.Errorf("Cache-Control = %q, want no-cache", got)
			}

			var resp struct {
				Error   AppError `json:"error"`
				Success bool     `json:"success"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success {
				t.Error("success should be false")
			}
			if resp.Error.Code != tt.code {
				t.Errorf("code = %s, want %s", resp.Error.Code, tt.code)
			}
			if resp.Error.RequestID != "req-1" {
				t.Errorf("request_id = %q, want req-1", resp.Error.RequestID)
			}
			if tt.code == CodeInternal && resp.Error.Message == "boom" {
				t.Error("internal error messages must not be exposed")
			}
		})
	}
}

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, map[string]int{"total": 2})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}

	var resp struct {
		Data    map[string]int `json:"data"`
		Success bool           `json:"success"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data["total"] != 2 {
		t.Errorf("response = %+v", resp)
	}
}
