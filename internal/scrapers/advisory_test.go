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

func TestClassifyAdvisoryText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"accordion class", "accordion_travel do-not-travel accordion is-open", 4},
		{"plain heading", "Do Not Travel", 4},
		{"mixed case", "dO NoT tRaVeL", 4},
		{"avoid non-essential", "avoid-non-essential-travel", 3},
		{"avoid unnecessary", "Avoid unnecessary travel", 3},
		{"high caution class", "accordion_travel high-degree-of-caution accordion", 2},
		{"high caution short form", "high-degree-caution", 2},
		{"normal precautions", "accordion_travel normal-precautions accordion is-open", 1},
		{"no marker", "accordion_travel accordion is-open", 0},
		{"empty", "", 0},
		// Highest-priority marker wins when several appear.
		{"multiple markers", "high degree of caution but do not travel", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAdvisoryText(tt.in))
		})
	}
}

// servePage returns a test server that serves the same HTML for every request.
func servePage(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, html)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAdvisoryLevel_PrimaryContainer(t *testing.T) {
	srv := servePage(t, `<html><body>
		<div class="accordion_travel do-not-travel accordion is-open">
			<h3 class="accordion__title">Security status</h3>
		</div>
	</body></html>`)

	c := NewClient(Options{IndexURL: srv.URL})
	level, err := c.AdvisoryLevel(context.Background(), srv.URL+"/country")
	require.NoError(t, err)
	assert.Equal(t, LevelDoNotTravel, level)
}

func TestAdvisoryLevel_HeadingFallback(t *testing.T) {
	// No class marker on the container, so the heading text decides.
	srv := servePage(t, `<html><body>
		<div class="accordion_travel accordion is-open">
			<h3 class="accordion__title">High degree of caution</h3>
		</div>
	</body></html>`)

	c := NewClient(Options{IndexURL: srv.URL})
	level, err := c.AdvisoryLevel(context.Background(), srv.URL+"/country")
	require.NoError(t, err)
	assert.Equal(t, LevelHighCaution, level)
}

func TestAdvisoryLevel_HeadingOnly(t *testing.T) {
	srv := servePage(t, `<html><body>
		<h3 class="accordion__title">Avoid non-essential travel</h3>
	</body></html>`)

	c := NewClient(Options{IndexURL: srv.URL})
	level, err := c.AdvisoryLevel(context.Background(), srv.URL+"/country")
	require.NoError(t, err)
	assert.Equal(t, LevelAvoidTravel, level)
}

func TestAdvisoryLevel_NoMarkup(t *testing.T) {
	srv := servePage(t, `<html><body><p>Nothing to see here.</p></body></html>`)

	c := NewClient(Options{IndexURL: srv.URL})
	level, err := c.AdvisoryLevel(context.Background(), srv.URL+"/country")
	require.NoError(t, err)
	assert.Zero(t, level)
}

func TestAdvisoryLevel_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Options{IndexURL: srv.URL})
	level, err := c.AdvisoryLevel(context.Background(), srv.URL+"/country")
	require.Error(t, err)
	assert.Zero(t, level)
}
