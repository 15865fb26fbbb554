// Command scrape collects the travel advisory level for every country listed
// on the DFA travel advice index and writes the assembled dataset to CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dfamap/ita/internal/config"
	"github.com/dfamap/ita/internal/countries"
	"github.com/dfamap/ita/internal/dataset"
	"github.com/dfamap/ita/internal/scrapers"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Config file path (optional)")
	output := flag.String("output", "", "Output CSV file (overrides config)")
	indexURL := flag.String("index-url", "", "Advisory index page URL (overrides config)")
	delay := flag.Duration("delay", 0, "Pause between per-country requests (overrides config)")
	timeout := flag.Duration("timeout", 0, "HTTP request timeout (overrides config)")
	verbose := flag.Bool("verbose", false, "Enable verbose output")

	flag.Parse()

	cfg, err := config.LoadIfPresent(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Scrape.Output = *output
	}
	if *indexURL != "" {
		cfg.Scrape.IndexURL = *indexURL
	}
	if *delay > 0 {
		cfg.Scrape.Delay = config.Duration(*delay)
	}
	if *timeout > 0 {
		cfg.Scrape.Timeout = config.Duration(*timeout)
	}

	fmt.Println("Irish Travel Advisory Scraper")
	fmt.Println(strings.Repeat("=", 40))

	client := scrapers.NewClient(scrapers.Options{
		IndexURL: cfg.Scrape.IndexURL,
		Timeout:  time.Duration(cfg.Scrape.Timeout),
	})

	ctx := context.Background()

	fmt.Println("\nFetching country list...")
	links, err := client.CountryLinks(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching country list: %v\n", err)
		printManualFallback(client.IndexURL())
		os.Exit(1)
	}
	if len(links) == 0 {
		fmt.Fprintln(os.Stderr, "No country links found on the index page.")
		printManualFallback(client.IndexURL())
		os.Exit(1)
	}
	fmt.Printf("Found %d countries\n\n", len(links))

	fmt.Println("Scraping advisory levels (this will take a few minutes)...")
	fmt.Println(strings.Repeat("-", 40))
	records := scrapeLevels(ctx, client, links, time.Duration(cfg.Scrape.Delay), clockwork.NewRealClock(), *verbose)

	normalizer := countries.NewNormalizer()
	for i := range records {
		records[i].Standardized = normalizer.Standardize(records[i].Country)
	}

	assembled := dataset.Assemble(records)

	if err := dataset.WriteCSV(cfg.Scrape.Output, assembled); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dataset: %v\n", err)
		os.Exit(1)
	}

	printSummary(assembled, len(links), cfg.Scrape.Output)
}

// scrapeLevels fetches each country page in turn with a courtesy pause
// between requests. A failed page only loses that country's level; the loop
// always continues.
func scrapeLevels(ctx context.Context, client *scrapers.Client, links []scrapers.CountryLink, delay time.Duration, clock clockwork.Clock, verbose bool) []dataset.Record {
	records := make([]dataset.Record, 0, len(links))
	for i, link := range links {
		fmt.Printf("%d/%d: %s... ", i+1, len(links), link.Country)

		level, err := client.AdvisoryLevel(ctx, link.URL)
		switch {
		case err != nil:
			fmt.Println("error")
			if verbose {
				fmt.Printf("  %v\n", err)
			}
		case level == 0:
			fmt.Println("unable to determine")
		default:
			fmt.Printf("Level %d\n", level)
		}

		records = append(records, dataset.Record{
			Country: link.Country,
			URL:     link.URL,
			Level:   level,
		})

		if i < len(links)-1 {
			clock.Sleep(delay)
		}
	}
	return records
}

// printManualFallback explains how to collect the country list by hand when
// the site blocks automated requests. This is a terminal condition for the
// run; no partial listing is used.
func printManualFallback(indexURL string) {
	fmt.Fprintln(os.Stderr, "\nThe website may be blocking automated requests.")
	fmt.Fprintln(os.Stderr, "Alternative method: use your browser's developer console")
	fmt.Fprintf(os.Stderr, "\n1. Go to: %s\n", indexURL)
	fmt.Fprintln(os.Stderr, "2. Open the console (F12) and paste this JavaScript:")
	fmt.Fprintln(os.Stderr, `
countries = [];
document.querySelectorAll('a[href*="/advice/"]').forEach(link => {
    const href = link.getAttribute('href');
    if (href && href.split('/').length >= 5) {
        const country = href.split('/').filter(x => x).pop();
        if (!['covid', 'index', 'search', 'about'].includes(country)) {
            countries.push({
                country: country.replace(/-/g, ' '),
                url: 'https://www.ireland.ie' + href
            });
        }
    }
});
console.log(JSON.stringify(countries, null, 2));`)
	fmt.Fprintln(os.Stderr, "\n3. Save the output and build the CSV from it by hand.")
}

func printSummary(records []dataset.Record, discovered int, output string) {
	fmt.Println("\n" + strings.Repeat("=", 40))
	fmt.Printf("Successfully classified %d of %d countries\n", len(records), discovered)
	fmt.Println(strings.Repeat("=", 40))

	fmt.Println("\nAdvisory level distribution:")
	dist := dataset.Distribution(records)
	for level := 1; level <= 4; level++ {
		fmt.Printf("  Level %d (%s): %d\n", level, dataset.Label(level), dist[level])
	}

	fmt.Printf("\nData saved to %s\n", output)
	fmt.Println("Run the render command to generate the map visualization.")
}
