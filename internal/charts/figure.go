// Package charts maps report aggregates to Plotly figure specifications.
// Everything here is a pure transform; the browser draws the figures.
package charts

const (
	AccentColor  = "#72BCD4"
	NeutralColor = "#D3D3D3"
)

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type          string  `json:"type"`
	Mode          string  `json:"mode,omitempty"`
	Orientation   string  `json:"orientation,omitempty"`
	X             []any   `json:"x"`
	Y             []any   `json:"y"`
	XAxis         string  `json:"xaxis,omitempty"`
	YAxis         string  `json:"yaxis,omitempty"`
	Name          string  `json:"name,omitempty"`
	Marker        *Marker `json:"marker,omitempty"`
	Line          *Line   `json:"line,omitempty"`
	HoverTemplate string  `json:"hovertemplate,omitempty"`
}

type Marker struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

type Line struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
	Shape string `json:"shape,omitempty"`
}

type Font struct {
	Size int `json:"size,omitempty"`
}

type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
	Font    *Font   `json:"font,omitempty"`
}

type Axis struct {
	Title         *Title    `json:"title,omitempty"`
	AutoRange     string    `json:"autorange,omitempty"`
	Domain        []float64 `json:"domain,omitempty"`
	Anchor        string    `json:"anchor,omitempty"`
	TickAngle     int       `json:"tickangle,omitempty"`
	TickFont      *Font     `json:"tickfont,omitempty"`
	Type          string    `json:"type,omitempty"`
	CategoryOrder string    `json:"categoryorder,omitempty"`
	CategoryArray []string  `json:"categoryarray,omitempty"`
	RangeMode     string    `json:"rangemode,omitempty"`
}

type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}

type Layout struct {
	Title       *Title       `json:"title,omitempty"`
	Height      int          `json:"height,omitempty"`
	ShowLegend  bool         `json:"showlegend"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	XAxis2      *Axis        `json:"xaxis2,omitempty"`
	YAxis2      *Axis        `json:"yaxis2,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func noDataAnnotation() Annotation {
	return Annotation{
		Text:      "No data",
		X:         0.5,
		Y:         0.5,
		XRef:      "paper",
		YRef:      "paper",
		XAnchor:   "center",
		YAnchor:   "middle",
		ShowArrow: false,
		Font:      &Font{Size: 16},
	}
}
