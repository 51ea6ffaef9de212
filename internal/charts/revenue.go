package charts

import "ecommerce-dashboard/internal/models"

const (
	revenueChartHeight = 800
	revenueHoverFormat = "%{y}: %{x}<extra></extra>"
	revenueVerticalGap = 0.15
	RevenueChartTitle  = "Best and Worst Performing Products by Revenue"
	TopPanelTitle      = "Top 5 Product Revenue"
	WorstPanelTitle    = "Worst 5 Product Revenue"
)

// RevenueFigure stacks the top and worst categories as two horizontal bar
// panels. The y axes are reversed so the first entry of each list is drawn
// on top.
func RevenueFigure(top, worst []models.CategoryRevenue) Figure {
	panelHeight := (1 - revenueVerticalGap) / 2
	topDomain := []float64{1 - panelHeight, 1}
	worstDomain := []float64{0, panelHeight}

	fig := Figure{
		Data: []Trace{
			categoryBars(top, AccentColor, "x", "y"),
			categoryBars(worst, NeutralColor, "x2", "y2"),
		},
		Layout: Layout{
			Title:      &Title{Text: RevenueChartTitle},
			Height:     revenueChartHeight,
			ShowLegend: false,
			XAxis:      &Axis{Title: &Title{Text: "Revenue"}, Anchor: "y", RangeMode: "tozero"},
			YAxis:      &Axis{Title: &Title{Text: ""}, AutoRange: "reversed", Domain: topDomain, Anchor: "x", Type: "category"},
			XAxis2:     &Axis{Title: &Title{Text: "Revenue"}, Anchor: "y2", RangeMode: "tozero"},
			YAxis2:     &Axis{Title: &Title{Text: ""}, AutoRange: "reversed", Domain: worstDomain, Anchor: "x2", Type: "category"},
		},
	}
	fig.Layout.Annotations = []Annotation{
		panelTitle(TopPanelTitle, topDomain[1]),
		panelTitle(WorstPanelTitle, worstDomain[1]),
	}

	if len(top) == 0 && len(worst) == 0 {
		fig.Layout.Annotations = append(fig.Layout.Annotations, noDataAnnotation())
	}
	return fig
}

func categoryBars(rows []models.CategoryRevenue, color, xaxis, yaxis string) Trace {
	x := make([]any, 0, len(rows))
	y := make([]any, 0, len(rows))
	for _, r := range rows {
		x = append(x, r.Revenue.InexactFloat64())
		y = append(y, r.Category)
	}
	return Trace{
		Type:          "bar",
		Orientation:   "h",
		X:             x,
		Y:             y,
		XAxis:         xaxis,
		YAxis:         yaxis,
		Marker:        &Marker{Color: color},
		HoverTemplate: revenueHoverFormat,
	}
}

func panelTitle(text string, top float64) Annotation {
	return Annotation{
		Text:      text,
		X:         0.5,
		Y:         top,
		XRef:      "paper",
		YRef:      "paper",
		XAnchor:   "center",
		YAnchor:   "bottom",
		ShowArrow: false,
		Font:      &Font{Size: 16},
	}
}
