package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfamap/ita/internal/dataset"
	"github.com/dfamap/ita/internal/scrapers"
)

func TestScrapeLevels_PausesBetweenCountriesOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div class="accordion_travel do-not-travel accordion"></div></body></html>`)
	}))
	defer srv.Close()

	links := []scrapers.CountryLink{
		{Country: "Albania", URL: srv.URL + "/albania/"},
		{Country: "Belarus", URL: srv.URL + "/belarus/"},
		{Country: "Ukraine", URL: srv.URL + "/ukraine/"},
	}
	client := scrapers.NewClient(scrapers.Options{IndexURL: srv.URL})
	clock := clockwork.NewFakeClock()

	done := make(chan []dataset.Record, 1)
	go func() {
		done <- scrapeLevels(context.Background(), client, links, time.Second, clock, false)
	}()

	// One courtesy pause per country except after the last.
	for i := 0; i < len(links)-1; i++ {
		clock.BlockUntil(1)
		clock.Advance(time.Second)
	}

	select {
	case records := <-done:
		require.Len(t, records, len(links))
		for i, r := range records {
			assert.Equal(t, links[i].Country, r.Country)
			assert.Equal(t, 4, r.Level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("scrape loop paused after the last country")
	}
}

func TestScrapeLevels_ContinuesPastFailedPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "belarus") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `<html><body><div class="accordion_travel normal-precautions accordion"></div></body></html>`)
	}))
	defer srv.Close()

	links := []scrapers.CountryLink{
		{Country: "Albania", URL: srv.URL + "/albania/"},
		{Country: "Belarus", URL: srv.URL + "/belarus/"},
		{Country: "Ukraine", URL: srv.URL + "/ukraine/"},
	}
	client := scrapers.NewClient(scrapers.Options{IndexURL: srv.URL})

	records := scrapeLevels(context.Background(), client, links, 0, clockwork.NewRealClock(), true)

	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Level)
	assert.Equal(t, 0, records[1].Level, "failed page loses only its own level")
	assert.Equal(t, 1, records[2].Level)
}
