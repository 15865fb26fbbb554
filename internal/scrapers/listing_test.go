package scrapers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCountryHref(t *testing.T) {
	tests := []struct {
		name string
		href string
		want bool
	}{
		{"country page", "/en/dfa/overseas-travel/advice/albania/", true},
		{"absolute country page", "https://www.ireland.ie/en/dfa/overseas-travel/advice/france/", true},
		{"wrong path segment", "/en/dfa/overseas-travel/updates/albania/", false},
		{"too few segments", "/advice/albania/", false},
		{"covid keyword", "/en/dfa/overseas-travel/advice/covid-19/", false},
		{"index keyword", "/en/dfa/overseas-travel/advice/index/", false},
		{"search keyword", "/en/dfa/overseas-travel/advice/search/", false},
		{"about keyword", "/en/dfa/overseas-travel/advice/about-us/", false},
		{"uppercased keyword", "/en/dfa/overseas-travel/advice/COVID/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isCountryHref(tt.href))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "United Arab Emirates", displayName("/en/dfa/overseas-travel/advice/united-arab-emirates/"))
	assert.Equal(t, "Albania", displayName("/en/dfa/overseas-travel/advice/albania"))
	assert.Equal(t, "Bosnia And Herzegovina", displayName("/en/dfa/overseas-travel/advice/bosnia-and-herzegovina/"))
}

func TestAbsoluteURL(t *testing.T) {
	const origin = "https://www.ireland.ie"

	tests := []struct {
		name string
		href string
		want string
	}{
		{"relative path", "/en/dfa/overseas-travel/advice/albania/", origin + "/en/dfa/overseas-travel/advice/albania/"},
		{"absolute http", "http://www.ireland.ie/en/dfa/overseas-travel/advice/albania/", "http://www.ireland.ie/en/dfa/overseas-travel/advice/albania/"},
		{"absolute https", "https://www.ireland.ie/en/dfa/overseas-travel/advice/france/", "https://www.ireland.ie/en/dfa/overseas-travel/advice/france/"},
		{"scheme-less href starting with http", "http-advisories/advice/albania/", origin + "http-advisories/advice/albania/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, absoluteURL(origin, tt.href))
		})
	}
}

func TestCountryLinks(t *testing.T) {
	page := `<html><body>
		<a href="/en/dfa/overseas-travel/advice/albania/">Albania</a>
		<a href="/en/dfa/overseas-travel/advice/albania/">Albania again</a>
		<a href="/en/dfa/overseas-travel/advice/united-arab-emirates/">UAE</a>
		<a href="/en/dfa/overseas-travel/advice/covid-19/">COVID travel advice</a>
		<a href="/en/dfa/overseas-travel/">Back</a>
		<a href="/en/dfa/overseas-travel/advice/search/">Search</a>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	c := NewClient(Options{IndexURL: srv.URL + "/en/dfa/overseas-travel/advice/"})
	links, err := c.CountryLinks(context.Background())
	require.NoError(t, err)

	require.Len(t, links, 2)
	assert.Equal(t, CountryLink{Country: "Albania", URL: srv.URL + "/en/dfa/overseas-travel/advice/albania/"}, links[0])
	assert.Equal(t, CountryLink{Country: "United Arab Emirates", URL: srv.URL + "/en/dfa/overseas-travel/advice/united-arab-emirates/"}, links[1])
}

func TestCountryLinks_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Options{IndexURL: srv.URL + "/en/dfa/overseas-travel/advice/"})
	links, err := c.CountryLinks(context.Background())
	require.Error(t, err)
	assert.Empty(t, links)
}
