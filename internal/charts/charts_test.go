package charts

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ecommerce-dashboard/internal/models"
)

var months = []string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

func categories(pairs ...any) []models.CategoryRevenue {
	out := make([]models.CategoryRevenue, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, models.CategoryRevenue{
			Category: pairs[i].(string),
			Revenue:  decimal.RequireFromString(pairs[i+1].(string)),
		})
	}
	return out
}

func TestRevenueFigure(t *testing.T) {
	top := categories("toys", "30.50", "books", "5")
	worst := categories("books", "5", "toys", "30.50")

	fig := RevenueFigure(top, worst)

	require.Len(t, fig.Data, 2)
	topBars, worstBars := fig.Data[0], fig.Data[1]

	require.Equal(t, "bar", topBars.Type)
	require.Equal(t, "h", topBars.Orientation)
	require.Equal(t, []any{30.5, 5.0}, topBars.X)
	require.Equal(t, []any{"toys", "books"}, topBars.Y)
	require.Equal(t, AccentColor, topBars.Marker.Color)
	require.Equal(t, "x", topBars.XAxis)
	require.Equal(t, "y", topBars.YAxis)

	require.Equal(t, NeutralColor, worstBars.Marker.Color)
	require.Equal(t, "x2", worstBars.XAxis)
	require.Equal(t, "y2", worstBars.YAxis)
	require.Equal(t, []any{"books", "toys"}, worstBars.Y)

	layout := fig.Layout
	require.Equal(t, 800, layout.Height)
	require.False(t, layout.ShowLegend)
	require.Equal(t, RevenueChartTitle, layout.Title.Text)
	require.Equal(t, "reversed", layout.YAxis.AutoRange)
	require.Equal(t, "reversed", layout.YAxis2.AutoRange)
	require.Equal(t, "Revenue", layout.XAxis.Title.Text)
	require.Equal(t, "Revenue", layout.XAxis2.Title.Text)
	require.Greater(t, layout.YAxis.Domain[0], layout.YAxis2.Domain[1], "top panel sits above the worst panel")

	require.Len(t, layout.Annotations, 2)
	require.Equal(t, TopPanelTitle, layout.Annotations[0].Text)
	require.Equal(t, WorstPanelTitle, layout.Annotations[1].Text)
}

func TestRevenueFigure_Empty(t *testing.T) {
	fig := RevenueFigure(nil, nil)

	require.Len(t, fig.Data, 2)
	require.Empty(t, fig.Data[0].X)
	require.Empty(t, fig.Data[1].Y)
	require.Len(t, fig.Layout.Annotations, 3)
	require.Equal(t, "No data", fig.Layout.Annotations[2].Text)

	b, err := json.Marshal(fig)
	require.NoError(t, err)
	require.Contains(t, string(b), `"x":[]`, "empty series encode as arrays, not null")
}

func TestRevenueFigure_Partial(t *testing.T) {
	fig := RevenueFigure(categories("only", "1"), categories("only", "1"))

	require.Len(t, fig.Data[0].Y, 1)
	require.Len(t, fig.Layout.Annotations, 2)
}

func TestLateOrdersFigure(t *testing.T) {
	data := make([]models.MonthlyLateOrders, 0, 12)
	for i, m := range months {
		data = append(data, models.MonthlyLateOrders{Month: m, Count: i % 3})
	}

	fig := LateOrdersFigure(data, months, 2017)

	require.Len(t, fig.Data, 1)
	line := fig.Data[0]
	require.Equal(t, "scatter", line.Type)
	require.Equal(t, "lines+markers", line.Mode)
	require.Len(t, line.X, 12)
	require.Equal(t, "January", line.X[0])
	require.Equal(t, "December", line.X[11])
	require.Equal(t, 2, line.Y[2])
	require.Equal(t, AccentColor, line.Line.Color)
	require.Equal(t, 2, line.Line.Width)
	require.Equal(t, 8, line.Marker.Size)

	layout := fig.Layout
	require.Equal(t, "Total Late Order Case per Month (2017)", layout.Title.Text)
	require.Equal(t, 0.5, layout.Title.X)
	require.Equal(t, "center", layout.Title.XAnchor)
	require.Equal(t, 20, layout.Title.Font.Size)
	require.Equal(t, 45, layout.XAxis.TickAngle)
	require.Equal(t, "Month", layout.XAxis.Title.Text)
	require.Equal(t, "Total Late Orders", layout.YAxis.Title.Text)
	require.Equal(t, "array", layout.XAxis.CategoryOrder)
	require.Equal(t, months, layout.XAxis.CategoryArray)
	require.Empty(t, layout.Annotations)
}

func TestLateOrdersFigure_Empty(t *testing.T) {
	fig := LateOrdersFigure(nil, months, 2017)

	require.Empty(t, fig.Data[0].X)
	require.Equal(t, months, fig.Layout.XAxis.CategoryArray, "axis keeps all months")
	require.Len(t, fig.Layout.Annotations, 1)
	require.Equal(t, "No data", fig.Layout.Annotations[0].Text)
}

// The figure JSON is handed to Plotly.react unchanged, so field names must
// match plotly.js attribute paths.
func TestRevenueFigure_PlotlyAttributes(t *testing.T) {
	raw, err := json.Marshal(RevenueFigure(categories("toys", "30.50"), categories("toys", "30.50")))
	require.NoError(t, err)

	var fig struct {
		Data   []map[string]any `json:"data"`
		Layout map[string]any   `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(raw, &fig))

	require.Len(t, fig.Data, 2)
	require.Equal(t, "x2", fig.Data[1]["xaxis"])
	require.Equal(t, "y2", fig.Data[1]["yaxis"])
	require.Equal(t, "%{y}: %{x}<extra></extra>", fig.Data[0]["hovertemplate"])
	require.Equal(t, map[string]any{"color": AccentColor}, fig.Data[0]["marker"])

	require.Equal(t, false, fig.Layout["showlegend"])
	for _, name := range []string{"yaxis", "yaxis2"} {
		axis, ok := fig.Layout[name].(map[string]any)
		require.True(t, ok, name)
		require.Equal(t, "reversed", axis["autorange"], name)
		require.Equal(t, "category", axis["type"], name)
		require.Len(t, axis["domain"], 2, name)
	}
	xaxis2, ok := fig.Layout["xaxis2"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "y2", xaxis2["anchor"])
	require.Equal(t, "tozero", xaxis2["rangemode"])

	annotations, ok := fig.Layout["annotations"].([]any)
	require.True(t, ok)
	require.Len(t, annotations, 2)
	first := annotations[0].(map[string]any)
	require.Equal(t, "paper", first["xref"])
	require.Equal(t, false, first["showarrow"])
}
