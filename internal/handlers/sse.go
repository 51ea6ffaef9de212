package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"ecommerce-dashboard/internal/services"
	"ecommerce-dashboard/internal/ui/templates"
)

const statusErrorMessage = "Report data could not be loaded"

type SSEHandlers struct {
	reports *services.Reports
	logger  *slog.Logger
}

func NewSSEHandlers(reports *services.Reports, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		reports: reports,
		logger:  logger,
	}
}

// StatusFor builds the status line shown next to the refresh button.
func StatusFor(rep *services.Report) templates.Status {
	return templates.Status{
		GeneratedAt: rep.GeneratedAt,
		OrderItems:  rep.Tables["order_items"],
		LateOrders:  rep.LateOrders.Total,
		Year:        rep.LateOrders.Year,
	}
}

func (h *SSEHandlers) render(r *http.Request, c templ.Component) (string, error) {
	var buf strings.Builder
	err := c.Render(r.Context(), &buf)
	return buf.String(), err
}

// generate returns nil after patching an error status when the report
// cannot be built.
func (h *SSEHandlers) generate(sse *datastar.ServerSentEventGenerator, r *http.Request) *services.Report {
	rep, err := h.reports.Generate(r.Context())
	if err == nil {
		return rep
	}

	h.logger.ErrorContext(r.Context(), "generate report", "error", err)
	html, renderErr := h.render(r, templates.ReportStatusError(statusErrorMessage))
	if renderErr != nil {
		h.logger.ErrorContext(r.Context(), "render status", "error", renderErr)
		return nil
	}
	if err := sse.PatchElements(html); err != nil {
		h.logger.WarnContext(r.Context(), "patch status", "error", err)
	}
	return nil
}

func (h *SSEHandlers) patch(sse *datastar.ServerSentEventGenerator, r *http.Request, rep *services.Report, signals map[string]any) {
	jsonData, err := json.Marshal(signals)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "marshal chart signals", "error", err)
		return
	}
	if err := sse.PatchSignals(jsonData); err != nil {
		h.logger.WarnContext(r.Context(), "patch signals", "error", err)
		return
	}

	html, err := h.render(r, templates.ReportStatus(StatusFor(rep)))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "render status", "error", err)
		return
	}
	if err := sse.PatchElements(html); err != nil {
		h.logger.WarnContext(r.Context(), "patch status", "error", err)
	}
}

func (h *SSEHandlers) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	rep := h.generate(sse, r)
	if rep == nil {
		return
	}
	h.patch(sse, r, rep, map[string]any{
		"revenueChart": RevenueFigure(rep),
	})
}

func (h *SSEHandlers) HandleLateOrders(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	rep := h.generate(sse, r)
	if rep == nil {
		return
	}
	h.patch(sse, r, rep, map[string]any{
		"lateChart": LateOrdersFigure(rep),
	})
}

func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	rep := h.generate(sse, r)
	if rep == nil {
		return
	}

	figures := FiguresFor(rep)
	h.patch(sse, r, rep, map[string]any{
		"revenueChart": figures.Revenue,
		"lateChart":    figures.LateOrders,
	})
}
