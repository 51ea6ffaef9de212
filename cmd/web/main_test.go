package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"ecommerce-dashboard/internal/dataset/datasettest"
	"ecommerce-dashboard/internal/server"
	"ecommerce-dashboard/internal/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Test helper to create a report service over the sample tables
func newTestReports(t *testing.T) *services.Reports {
	t.Helper()
	return services.NewReports(datasettest.WritePaths(t, datasettest.Sample), testLogger())
}

func newTestServer(t *testing.T, reports *services.Reports) *server.Server {
	t.Helper()
	logger := testLogger()
	templateHandlers := &server.TemplateHandlers{Dashboard: newDashboardHandler(reports, logger)}
	return server.NewServer(reports, logger, templateHandlers)
}

// Integration tests for HTTP routes
func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, newTestReports(t))

	tests := []struct {
		path           string
		expectedStatus int
		contentType    string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/api/category-revenue", http.StatusOK, "application/json"},
		{"/api/late-orders", http.StatusOK, "application/json"},
		{"/api/charts/revenue", http.StatusOK, "application/json"},
		{"/api/charts/late-orders", http.StatusOK, "application/json"},
		{"/health", http.StatusOK, "application/json"},
		{"/admin/stats", http.StatusOK, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			ct := w.Header().Get("Content-Type")
			if !strings.Contains(ct, tt.contentType) {
				t.Errorf("content-type = %q, want %q", ct, tt.contentType)
			}

			// Validate JSON responses
			if tt.contentType == "application/json" {
				var result any
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Errorf("invalid json: %v", err)
				}
			}
		})
	}
}

func TestServer_CategoryRevenueResponse(t *testing.T) {
	srv := newTestServer(t, newTestReports(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/category-revenue", nil)
	srv.ServeHTTP(w, r)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Top []struct {
				Category string `json:"category"`
				Revenue  string `json:"revenue"`
			} `json:"top"`
			Worst      []json.RawMessage `json:"worst"`
			FanOutRows int               `json:"fan_out_rows"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if !response.Success {
		t.Error("expected success=true in response")
	}
	if len(response.Data.Top) != 3 {
		t.Fatalf("len(top) = %d, want 3", len(response.Data.Top))
	}
	if response.Data.Top[0].Category != "relogios_presentes" || response.Data.Top[0].Revenue != "190" {
		t.Errorf("top[0] = %+v, want relogios_presentes 190", response.Data.Top[0])
	}
	if len(response.Data.Worst) != 3 {
		t.Errorf("len(worst) = %d, want 3", len(response.Data.Worst))
	}
	if response.Data.FanOutRows != 1 {
		t.Errorf("fan_out_rows = %d, want 1", response.Data.FanOutRows)
	}
}

// Test Server-Sent Events routes
func TestServer_SSERoutes(t *testing.T) {
	srv := newTestServer(t, newTestReports(t))

	sseRoutes := []string{
		"/sse/revenue",
		"/sse/late-orders",
		"/sse/refresh-all",
	}

	for _, route := range sseRoutes {
		t.Run(route, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", route, nil)

			srv.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}

			// Check for SSE headers
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, should contain 'text/event-stream'", ct)
			}

			if cc := w.Header().Get("Cache-Control"); cc != "no-cache" {
				t.Errorf("cache-control = %q, want 'no-cache'", cc)
			}
		})
	}
}

// Test error handling for invalid methods
func TestServer_ErrorHandling(t *testing.T) {
	srv := newTestServer(t, newTestReports(t))

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"POST", "/api/category-revenue", http.StatusMethodNotAllowed},
		{"PUT", "/", http.StatusMethodNotAllowed},
		{"DELETE", "/health", http.StatusMethodNotAllowed},
		{"PATCH", "/api/late-orders", http.StatusMethodNotAllowed},
		{"GET", "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

// Test dashboard template rendering
func TestDashboardHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	newDashboardHandler(newTestReports(t), testLogger())(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	expectedComponents := []string{
		"E-Commerce Data Visualization Dashboard",
		"Revenue by Product Category",
		"Late Deliveries in 2017",
		"relogios_presentes",
		"November",
		"Created by: Rendy Pratama",
	}

	for _, component := range expectedComponents {
		if !strings.Contains(body, component) {
			t.Errorf("dashboard should contain '%s'", component)
		}
	}
}

func TestDashboardHandler_LoadError(t *testing.T) {
	files := datasettest.Sample
	files.Products = ""
	reports := services.NewReports(datasettest.WritePaths(t, files), testLogger())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	newDashboardHandler(reports, testLogger())(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(w.Body.String(), "Report data could not be loaded.") {
		t.Error("error page should explain the failure")
	}
}

func TestDashboardHandler_ShuttingDown(t *testing.T) {
	reports := newTestReports(t)
	reports.Close()

	w := httptest.NewRecorder()
	newDashboardHandler(reports, testLogger())(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
