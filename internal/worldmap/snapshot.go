package worldmap

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/snapshot-chromedp/render"
)

// WritePNG exports a static raster image of the figure through headless
// Chrome. The raster backend is optional: callers should treat failure (most
// commonly no Chrome installation) as a warning and keep the interactive
// HTML output. Resolution follows the figure's width and height.
func WritePNG(m *charts.Map, path string) error {
	if err := render.MakeChartSnapshot(m.RenderContent(), path); err != nil {
		return fmt.Errorf("png export: %w", err)
	}
	return nil
}
