package templates

import (
	"fmt"
	"time"

	"ecommerce-dashboard/internal/charts"
)

//go:generate templ generate

const (
	PageTitle    = "E-Commerce Dashboard"
	Heading      = "📊 E-Commerce Data Visualization Dashboard"
	RevenueTitle = "📈 Revenue by Product Category"
	DetailsTitle = "🔍 View Details"
	Caption      = "👤 Created by: Rendy Pratama"

	StatusTimeFormat = "2006-01-02 15:04:05 MST"
)

// Status summarises the report a page or patch was rendered from.
type Status struct {
	GeneratedAt time.Time
	OrderItems  int
	LateOrders  int
	Year        int
}

// Page is everything the dashboard shows, already computed.
type Page struct {
	Status       Status
	RevenueChart charts.Figure
	LateChart    charts.Figure
}

func LateTitle(year int) string {
	return fmt.Sprintf("🚚 Late Deliveries in %d", year)
}

func figureID(chartID string) string {
	return chartID + "-figure"
}

func drawEffect(chartID, signal string) string {
	return fmt.Sprintf("drawFigure('%s', $%s)", chartID, signal)
}
