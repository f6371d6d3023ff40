package effect_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AbdulWasayUl/go-covid-map/internal/api"
	"github.com/AbdulWasayUl/go-covid-map/internal/config"
	"github.com/AbdulWasayUl/go-covid-map/internal/effect"
	"github.com/AbdulWasayUl/go-covid-map/internal/geo"
	"github.com/AbdulWasayUl/go-covid-map/internal/marker"
	"github.com/AbdulWasayUl/go-covid-map/models"
	"github.com/AbdulWasayUl/go-covid-map/services/stats"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMap struct {
	layers []*geo.Layer
}

func (m *fakeMap) AddLayer(l *geo.Layer) {
	m.layers = append(m.layers, l)
}

type stubFetcher struct {
	records []models.CountryRecord
	ok      bool
	err     error
	calls   int
}

func (f *stubFetcher) Fetch(ctx context.Context) ([]models.CountryRecord, bool, error) {
	f.calls++
	return f.records, f.ok, f.err
}

func newEffect(f effect.Fetcher, buf *bytes.Buffer) *effect.Effect {
	r := marker.NewRenderer("en-US", time.UTC)
	return effect.New(f, r.PointToLayer, zerolog.New(buf).Level(zerolog.InfoLevel))
}

func logLines(buf *bytes.Buffer) []string {
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestRun_AttachesLayer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"country": "Italy", "countryInfo": {"lat": 42.8333, "long": 12.8333}, "cases": 12345, "deaths": 10, "recovered": 5, "updated": 1584800000000},
			{"country": "Nowhere", "cases": 500}
		]`)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	m := &fakeMap{}
	e := newEffect(stats.NewService(&config.Config{StatsAPIBaseURL: ts.URL}), &buf)

	assert.Equal(t, effect.StatePending, e.State())
	e.Run(context.Background(), m)
	assert.Equal(t, effect.StateDone, e.State())

	require.Len(t, m.layers, 1)
	markers := m.layers[0].Markers
	require.Len(t, markers, 2)

	assert.Equal(t, models.LatLng{Lat: 42.8333, Lng: 12.8333}, markers[0].LatLng)
	assert.Contains(t, markers[0].Icon.HTML, "<h2>Italy</h2>")
	assert.Contains(t, markers[0].Icon.HTML, "12k+")
	assert.True(t, markers[0].RiseOnHover)

	assert.False(t, markers[1].LatLng.Valid())
	assert.Contains(t, markers[1].Icon.HTML, "<strong>Confirmed:</strong> 500 </li>")
}

func TestRun_EmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	m := &fakeMap{}
	e := newEffect(stats.NewService(&config.Config{StatsAPIBaseURL: ts.URL}), &buf)

	require.NotPanics(t, func() { e.Run(context.Background(), m) })

	assert.Empty(t, m.layers)
	assert.Equal(t, effect.StateDone, e.State())
}

func TestRun_FetchFailureLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	m := &fakeMap{}
	f := &stubFetcher{err: &api.FetchError{URL: "http://stats/v2/countries", Err: errors.New("connection refused")}}
	e := newEffect(f, &buf)

	require.NotPanics(t, func() { e.Run(context.Background(), m) })

	lines := logLines(&buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Failed to fetch countries")
	assert.Contains(t, lines[0], "connection refused")
	assert.Empty(t, m.layers)
}

func TestRun_FetchFailureFromServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	m := &fakeMap{}
	e := newEffect(stats.NewService(&config.Config{StatsAPIBaseURL: ts.URL}), &buf)

	e.Run(context.Background(), m)

	lines := logLines(&buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "status 503")
	assert.Empty(t, m.layers)
}

func TestRun_OnlyOnce(t *testing.T) {
	name := "Chad"
	var buf bytes.Buffer
	m := &fakeMap{}
	f := &stubFetcher{records: []models.CountryRecord{{Country: &name}}, ok: true}
	e := newEffect(f, &buf)

	e.Run(context.Background(), m)
	e.Run(context.Background(), m)

	assert.Equal(t, 1, f.calls)
	assert.Len(t, m.layers, 1)
}

func TestRun_NotOK(t *testing.T) {
	var buf bytes.Buffer
	m := &fakeMap{}
	f := &stubFetcher{ok: false}
	e := newEffect(f, &buf)

	e.Run(context.Background(), m)

	assert.Empty(t, m.layers)
	assert.Empty(t, logLines(&buf))
}

type blockingFetcher struct {
	entered chan struct{}
	release chan struct{}
}

func (f *blockingFetcher) Fetch(ctx context.Context) ([]models.CountryRecord, bool, error) {
	close(f.entered)
	<-f.release
	return nil, false, nil
}

func TestRun_PendingWhileFetching(t *testing.T) {
	var buf bytes.Buffer
	f := &blockingFetcher{entered: make(chan struct{}), release: make(chan struct{})}
	e := newEffect(f, &buf)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		e.Run(context.Background(), &fakeMap{})
	}()

	select {
	case <-f.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for fetch to start")
	}
	assert.Equal(t, effect.StatePending, e.State())

	// a second run while the first is in flight does nothing
	e.Run(context.Background(), &fakeMap{})
	assert.Equal(t, effect.StatePending, e.State())

	close(f.release)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for run to finish")
	}
	assert.Equal(t, effect.StateDone, e.State())
}
