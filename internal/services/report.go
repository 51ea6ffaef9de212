package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"golang.org/x/sync/singleflight"

	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/models"
	"ecommerce-dashboard/internal/observability"
)

const (
	defaultGenerateTimeout = 30 * time.Second
	// latencies are recorded in microseconds, up to ten minutes
	maxLatencyMicros = int64(10 * time.Minute / time.Microsecond)
)

type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Tables      map[string]int `json:"tables"`
	Revenue     RevenueView    `json:"revenue"`
	LateOrders  LateOrdersView `json:"late_orders"`
}

type RevenueView struct {
	Top               []models.CategoryRevenue `json:"top"`
	Worst             []models.CategoryRevenue `json:"worst"`
	Categories        int                      `json:"categories"`
	FactRows          int                      `json:"fact_rows"`
	FanOutRows        int                      `json:"fan_out_rows"`
	UncategorizedRows int                      `json:"uncategorized_rows"`
}

type LateOrdersView struct {
	Year   int                        `json:"year"`
	Months []models.MonthlyLateOrders `json:"months"`
	Total  int                        `json:"total"`
}

// BuildReport runs both views over already loaded tables.
func BuildReport(t *dataset.Tables) *Report {
	facts := BuildRevenueFacts(t)
	categories := AggregateCategoryRevenue(facts)

	uncategorized := 0
	for _, f := range facts {
		if !f.HasCategory {
			uncategorized++
		}
	}

	months := CountLateByMonth(BuildLateDeliveries(t.Orders, TargetYear))

	return &Report{
		Tables: t.Counts(),
		Revenue: RevenueView{
			Top:               TopCategories(categories, categoryLimit),
			Worst:             WorstCategories(categories, categoryLimit),
			Categories:        len(categories),
			FactRows:          len(facts),
			FanOutRows:        len(facts) - len(t.OrderItems),
			UncategorizedRows: uncategorized,
		},
		LateOrders: LateOrdersView{
			Year:   TargetYear,
			Months: months,
			Total:  TotalLate(months),
		},
	}
}

// ErrClosed is returned by Generate after Close.
var ErrClosed = errors.New("report service closed")

// Reports generates a fresh Report from the source files on every call.
// Concurrent callers share one in-flight generation and receive the same
// Report, which must be treated as read-only. Nothing from a finished
// generation is kept except the counters reported by Stats.
type Reports struct {
	paths   dataset.Paths
	timeout time.Duration
	logger  *slog.Logger
	group   singleflight.Group

	// closing is cancelled by Close and aborts in-flight generations.
	closing context.Context
	close   context.CancelFunc

	generations atomic.Int64
	failures    atomic.Int64

	mu      sync.Mutex
	latency *hdrhistogram.Histogram
	last    *runSummary
}

type runSummary struct {
	generatedAt time.Time
	tables      map[string]int
	factRows    int
	fanOutRows  int
	categories  int
	lateOrders  int
}

func NewReports(paths dataset.Paths, logger *slog.Logger) *Reports {
	if logger == nil {
		logger = slog.Default()
	}
	closing, cancel := context.WithCancel(context.Background())
	return &Reports{
		paths:   paths,
		timeout: defaultGenerateTimeout,
		logger:  logger,
		closing: closing,
		close:   cancel,
		latency: hdrhistogram.New(1, maxLatencyMicros, 3),
	}
}

func (r *Reports) SetTimeout(d time.Duration) {
	if d > 0 {
		r.timeout = d
	}
}

func (r *Reports) Paths() dataset.Paths {
	return r.paths
}

// Close cancels any generation in flight. It is safe to call more than once.
func (r *Reports) Close() {
	r.close()
}

func (r *Reports) Generate(ctx context.Context) (*Report, error) {
	if r.closing.Err() != nil {
		return nil, ErrClosed
	}
	v, err, shared := r.group.Do("report", func() (any, error) {
		// detached so one disconnecting client does not fail the others
		genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()
		stop := context.AfterFunc(r.closing, cancel)
		defer stop()
		return r.generate(genCtx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.logger.DebugContext(ctx, "report generation shared")
	}
	return v.(*Report), nil
}

func (r *Reports) generate(ctx context.Context) (*Report, error) {
	ctx, span := observability.StartSpan(ctx, "report.generate")

	start := time.Now()
	r.generations.Add(1)

	tables, err := dataset.Load(ctx, r.paths)
	if err != nil {
		r.failures.Add(1)
		span.SetError(err)
		span.Finish()
		r.logger.ErrorContext(ctx, "report generation failed", "error", err, "span", span)
		return nil, fmt.Errorf("generate report: %w", err)
	}

	report := BuildReport(tables)
	report.GeneratedAt = time.Now().UTC()
	duration := time.Since(start)

	r.mu.Lock()
	if err := r.latency.RecordValue(duration.Microseconds()); err != nil {
		r.logger.WarnContext(ctx, "latency out of histogram range", "duration", duration)
	}
	r.last = &runSummary{
		generatedAt: report.GeneratedAt,
		tables:      report.Tables,
		factRows:    report.Revenue.FactRows,
		fanOutRows:  report.Revenue.FanOutRows,
		categories:  report.Revenue.Categories,
		lateOrders:  report.LateOrders.Total,
	}
	r.mu.Unlock()

	span.SetAttr("fact_rows", report.Revenue.FactRows)
	span.Finish()
	r.logger.InfoContext(ctx, "report generated",
		"fact_rows", report.Revenue.FactRows,
		"fan_out_rows", report.Revenue.FanOutRows,
		"late_orders", report.LateOrders.Total,
		"span", span,
	)
	return report, nil
}

// Stats reports generation counts, latency percentiles in milliseconds and
// the row counts of the most recent successful generation.
func (r *Reports) Stats() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := map[string]any{
		"generations": r.generations.Load(),
		"failures":    r.failures.Load(),
		"latency_ms": map[string]float64{
			"p50":  float64(r.latency.ValueAtQuantile(50)) / 1000,
			"p95":  float64(r.latency.ValueAtQuantile(95)) / 1000,
			"p99":  float64(r.latency.ValueAtQuantile(99)) / 1000,
			"max":  float64(r.latency.Max()) / 1000,
			"mean": r.latency.Mean() / 1000,
		},
	}

	if r.last != nil {
		stats["last_generated"] = r.last.generatedAt
		stats["tables"] = r.last.tables
		stats["fact_rows"] = r.last.factRows
		stats["fan_out_rows"] = r.last.fanOutRows
		stats["categories"] = r.last.categories
		stats["late_orders"] = r.last.lateOrders
	}
	return stats
}
