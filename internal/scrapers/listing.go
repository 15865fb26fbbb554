package scrapers

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// advisoryPathSegment marks per-country advisory pages on the index.
const advisoryPathSegment = "/advice/"

// excludedKeywords filters out non-country pages that share the advisory path.
var excludedKeywords = []string{"covid", "index", "search", "about"}

var titleCaser = cases.Title(language.English)

// CountryLinks scrapes the index page for per-country advisory page links,
// deduplicated by (country, url). A network or parse failure returns an
// error and no partial listing.
func (c *Client) CountryLinks(ctx context.Context) ([]CountryLink, error) {
	doc, err := c.fetchDocument(ctx, c.indexURL)
	if err != nil {
		return nil, err
	}

	origin := siteOrigin(c.indexURL)

	seen := make(map[CountryLink]bool)
	var links []CountryLink
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if !isCountryHref(href) {
			return
		}

		link := CountryLink{
			Country: displayName(href),
			URL:     absoluteURL(origin, href),
		}
		if seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	})

	return links, nil
}

// isCountryHref reports whether href points at a per-country advisory page:
// it must contain the advisory path segment, have at least five path
// segments, and contain no exclusion keyword.
func isCountryHref(href string) bool {
	lower := strings.ToLower(href)
	if !strings.Contains(lower, advisoryPathSegment) {
		return false
	}
	if strings.Count(href, "/") < 5 {
		return false
	}
	for _, kw := range excludedKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// displayName derives a country display name from the last path segment,
// e.g. "/dfa/overseas-travel/advice/united-arab-emirates/" -> "United Arab Emirates".
func displayName(href string) string {
	trimmed := strings.TrimRight(href, "/")
	slug := trimmed[strings.LastIndex(trimmed, "/")+1:]
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// absoluteURL resolves a relative href against the site origin. Hrefs that
// already carry a scheme pass through unchanged.
func absoluteURL(origin, href string) string {
	if u, err := url.Parse(href); err == nil && u.IsAbs() {
		return href
	}
	return origin + href
}

func siteOrigin(indexURL string) string {
	u, err := url.Parse(indexURL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
