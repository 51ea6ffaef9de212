package charts

import (
	"fmt"

	"ecommerce-dashboard/internal/models"
)

// LateOrdersFigure draws late order counts as a single line with markers.
// The x axis always declares the months in the given order, so months that
// are absent from the data still keep their slot.
func LateOrdersFigure(months []models.MonthlyLateOrders, monthNames []string, year int) Figure {
	x := make([]any, 0, len(months))
	y := make([]any, 0, len(months))
	total := 0
	for _, m := range months {
		x = append(x, m.Month)
		y = append(y, m.Count)
		total += m.Count
	}

	fig := Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "lines+markers",
			X:      x,
			Y:      y,
			Line:   &Line{Color: AccentColor, Width: 2, Shape: "linear"},
			Marker: &Marker{Size: 8},
		}},
		Layout: Layout{
			Title: &Title{
				Text:    LateOrdersTitle(year),
				X:       0.5,
				XAnchor: "center",
				Font:    &Font{Size: 20},
			},
			ShowLegend: false,
			XAxis: &Axis{
				Title:         &Title{Text: "Month"},
				TickAngle:     45,
				TickFont:      &Font{Size: 10},
				Type:          "category",
				CategoryOrder: "array",
				CategoryArray: monthNames,
			},
			YAxis: &Axis{
				Title:     &Title{Text: "Total Late Orders"},
				TickFont:  &Font{Size: 10},
				RangeMode: "tozero",
			},
		},
	}

	if total == 0 {
		fig.Layout.Annotations = append(fig.Layout.Annotations, noDataAnnotation())
	}
	return fig
}

func LateOrdersTitle(year int) string {
	return fmt.Sprintf("Total Late Order Case per Month (%d)", year)
}
