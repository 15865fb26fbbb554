// Package worldmap renders the advisory dataset as a choropleth world map.
package worldmap

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/dfamap/ita/internal/countries"
	"github.com/dfamap/ita/internal/dataset"
)

// levelColors is the fixed ordinal scale: one color per advisory level.
var levelColors = map[int]string{
	1: "green",
	2: "yellow",
	3: "orange",
	4: "red",
}

// legendNames relabels raw level codes with descriptive legend entries.
// Levels round-tripped through other tooling may arrive float-formatted, so
// both "4" and "4.0" resolve.
var legendNames = map[string]string{
	"1":   "Level 1: Normal Precautions",
	"2":   "Level 2: High Degree of Caution",
	"3":   "Level 3: Avoid Unnecessary Travel",
	"4":   "Level 4: Do Not Travel",
	"1.0": "Level 1: Normal Precautions",
	"2.0": "Level 2: High Degree of Caution",
	"3.0": "Level 3: Avoid Unnecessary Travel",
	"4.0": "Level 4: Do Not Travel",
}

// LegendLabel returns the descriptive legend entry for a raw level code.
// Unknown codes pass through unchanged.
func LegendLabel(code string) string {
	if name, ok := legendNames[code]; ok {
		return name
	}
	return code
}

// Options configures the rendered figure.
type Options struct {
	Title  string
	Width  int
	Height int
}

// chartID keys the chart's JS objects so the legend relabel patch can
// address them.
const chartID = "advisorymap"

// Build constructs the interactive choropleth figure from the assembled
// dataset. Regions are keyed by canonical country name; colors come from
// the fixed four-level scale.
func Build(records []dataset.Record, o Options) *charts.Map {
	if o.Width <= 0 {
		o.Width = 1920
	}
	if o.Height <= 0 {
		o.Height = 1080
	}

	m := charts.NewMap()
	m.RegisterMapType("world")
	m.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			ChartID:   chartID,
			Width:     fmt.Sprintf("%dpx", o.Width),
			Height:    fmt.Sprintf("%dpx", o.Height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: o.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: tooltipFormatter(records),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:   "piecewise",
			Min:    1,
			Max:    4,
			Pieces: legendPieces(),
			Orient: "vertical",
			Left:   "left",
			Top:    "middle",
		}),
	)

	normalizer := countries.NewNormalizer()
	data := make([]opts.MapData, 0, len(records))
	for _, r := range records {
		if !normalizer.IsCanonical(r.Standardized) {
			slog.Warn("country name not in map vocabulary, it will render blank",
				"country", r.Country,
				"standardized", r.Standardized,
			)
		}
		data = append(data, opts.MapData{Name: r.Standardized, Value: float64(r.Level)})
	}
	m.AddSeries("Advisory Level", data)
	m.AddJSFuncs(legendRelabelJS())

	return m
}

// legendPieces builds the four-bucket discrete scale. opts.Piece carries no
// label field, so the descriptive legend entries are merged in afterwards by
// legendRelabelJS.
func legendPieces() []opts.Piece {
	pieces := make([]opts.Piece, 0, 4)
	for level := 1; level <= 4; level++ {
		pieces = append(pieces, opts.Piece{
			Min:   float32(level),
			Max:   float32(level),
			Color: levelColors[level],
		})
	}
	return pieces
}

// legendRelabelJS patches the rendered chart so the legend shows the
// descriptive entries instead of raw level codes, keeping the fixed colors.
func legendRelabelJS() string {
	type piece struct {
		Min   int    `json:"min"`
		Max   int    `json:"max"`
		Label string `json:"label"`
		Color string `json:"color"`
	}
	pieces := make([]piece, 0, 4)
	for level := 1; level <= 4; level++ {
		pieces = append(pieces, piece{
			Min:   level,
			Max:   level,
			Label: LegendLabel(strconv.Itoa(level)),
			Color: levelColors[level],
		})
	}
	blob, err := json.Marshal(pieces)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("goecharts_%s.setOption({visualMap: [{pieces: %s}]});", chartID, blob)
}

// tooltipFormatter embeds a canonical-name -> hover text table so hovering a
// region shows the original DFA display name and the advisory label rather
// than the raw level code.
func tooltipFormatter(records []dataset.Record) types.FuncStr {
	hover := make(map[string]string, len(records))
	for _, r := range records {
		hover[r.Standardized] = fmt.Sprintf("%s: %s", r.Country, r.Label)
	}

	blob, err := json.Marshal(hover)
	if err != nil {
		return "{b}"
	}
	return opts.FuncOpts(fmt.Sprintf(
		"function (params) { var hover = %s; return hover[params.name] || params.name; }",
		blob,
	))
}

// WriteHTML renders the self-contained interactive document.
func WriteHTML(m *charts.Map, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := m.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render map: %w", err)
	}
	return f.Close()
}
