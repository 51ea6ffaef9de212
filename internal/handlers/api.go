package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"ecommerce-dashboard/internal/errors"
	"ecommerce-dashboard/internal/services"
)

type APIHandlers struct {
	reports *services.Reports
	logger  *slog.Logger
}

func NewAPIHandlers(reports *services.Reports, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		reports: reports,
		logger:  logger,
	}
}

// report generates a fresh report, writing the error response itself when
// generation fails.
func (h *APIHandlers) report(w http.ResponseWriter, r *http.Request) (*services.Report, bool) {
	rep, err := h.reports.Generate(r.Context())
	if err != nil {
		if stderrors.Is(err, services.ErrClosed) {
			errors.WriteError(w, r, h.logger, errors.Unavailable("server is shutting down"))
			return nil, false
		}
		errors.WriteError(w, r, h.logger, errors.DataLoadWrap(err, "report data could not be loaded"))
		return nil, false
	}
	return rep, true
}

func (h *APIHandlers) HandleCategoryRevenue(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.report(w, r)
	if !ok {
		return
	}

	errors.WriteSuccess(w, rep.Revenue)
}

func (h *APIHandlers) HandleLateOrders(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.report(w, r)
	if !ok {
		return
	}

	errors.WriteSuccess(w, rep.LateOrders)
}

func (h *APIHandlers) HandleRevenueChart(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.report(w, r)
	if !ok {
		return
	}

	errors.WriteSuccess(w, RevenueFigure(rep))
}

func (h *APIHandlers) HandleLateOrdersChart(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.report(w, r)
	if !ok {
		return
	}

	errors.WriteSuccess(w, LateOrdersFigure(rep))
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {

	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {

	stats := h.reports.Stats()

	errors.WriteSuccess(w, stats)
}
