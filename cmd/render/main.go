// Command render reads the scraped advisory dataset and produces the
// choropleth world map artifacts: an interactive HTML document and,
// best-effort, a static PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/dfamap/ita/internal/config"
	"github.com/dfamap/ita/internal/dataset"
	"github.com/dfamap/ita/internal/worldmap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Config file path (optional)")
	input := flag.String("input", "", "Input CSV file (overrides config)")
	htmlOut := flag.String("html", "", "Interactive HTML output file (overrides config)")
	pngOut := flag.String("png", "", "Static PNG output file (overrides config)")
	width := flag.Int("width", 0, "Figure width in pixels (overrides config)")
	height := flag.Int("height", 0, "Figure height in pixels (overrides config)")

	flag.Parse()

	cfg, err := config.LoadIfPresent(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Map.Input = *input
	}
	if *htmlOut != "" {
		cfg.Map.HTML = *htmlOut
	}
	if *pngOut != "" {
		cfg.Map.PNG = *pngOut
	}
	if *width > 0 {
		cfg.Map.Width = *width
	}
	if *height > 0 {
		cfg.Map.Height = *height
	}

	records, err := dataset.ReadCSV(cfg.Map.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: %s not found.\n", cfg.Map.Input)
			fmt.Fprintln(os.Stderr, "Run the scrape command first to collect the data.")
		} else {
			fmt.Fprintf(os.Stderr, "Error reading dataset: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Loaded data for %d countries\n", len(records))

	chart := worldmap.Build(records, worldmap.Options{
		Title:  cfg.Map.Title,
		Width:  cfg.Map.Width,
		Height: cfg.Map.Height,
	})

	if err := worldmap.WriteHTML(chart, cfg.Map.HTML); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing interactive map: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Interactive map saved to %s\n", cfg.Map.HTML)

	// The raster backend is optional; its absence never loses the HTML output.
	if err := worldmap.WritePNG(chart, cfg.Map.PNG); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save PNG: %v\n", err)
		fmt.Fprintln(os.Stderr, "Note: PNG export requires a Chrome or Chromium installation.")
	} else {
		fmt.Printf("Map saved to %s\n", cfg.Map.PNG)
	}
}
