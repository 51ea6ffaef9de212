package handlers

import (
	"ecommerce-dashboard/internal/charts"
	"ecommerce-dashboard/internal/services"
)

// ReportFigures is also the datastar signal payload, hence the signal names
// as JSON keys.
type ReportFigures struct {
	Revenue    charts.Figure `json:"revenueChart"`
	LateOrders charts.Figure `json:"lateChart"`
}

func FiguresFor(rep *services.Report) ReportFigures {
	return ReportFigures{
		Revenue:    RevenueFigure(rep),
		LateOrders: LateOrdersFigure(rep),
	}
}

func RevenueFigure(rep *services.Report) charts.Figure {
	return charts.RevenueFigure(rep.Revenue.Top, rep.Revenue.Worst)
}

func LateOrdersFigure(rep *services.Report) charts.Figure {
	return charts.LateOrdersFigure(rep.LateOrders.Months, services.MonthNames(), rep.LateOrders.Year)
}
