package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/blanket"
	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/tally"
)

func buildModel(t *testing.T, mutate func(*blanket.Case)) *domain.Model {
	t.Helper()
	c := blanket.DefaultCase()
	if mutate != nil {
		mutate(&c)
	}
	m, err := blanket.New().Build(context.Background(), c)
	require.NoError(t, err)
	return m
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_Routes(t *testing.T) {
	s := NewServer(buildModel(t, nil), WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("blanket_builds_total 1\n"))
	})))
	h := s.Handler()

	tests := []struct {
		target   string
		code     int
		contains string
	}{
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/info", http.StatusOK, `"case":"reference"`},
		{"/model", http.StatusOK, `"name":"TBR channel"`},
		{"/radii", http.StatusOK, `"surface":"fw_inner","radius":188.70065761739`},
		{"/materials", http.StatusOK, `"name":"molten_salt"`},
		{"/materials/first_wall", http.StatusOK, `"name":"first_wall"`},
		{"/materials/unobtainium", http.StatusNotFound, "unobtainium"},
		{"/cells", http.StatusOK, `"name":"flibe2"`},
		{"/tallies/TBR%20tank", http.StatusOK, `"name":"TBR tank"`},
		{"/tallies/missing", http.StatusNotFound, "tally not found"},
		{"/graph?highlight=flibe1", http.StatusOK, "class flibe1 highlight;"},
		{"/report", http.StatusOK, "67 tallies over 13 filters."},
		{"/metrics", http.StatusOK, "blanket_builds_total 1"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, h, tt.target)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestServer_TalliesByShell(t *testing.T) {
	s := NewServer(buildModel(t, nil))
	h := s.Handler()

	w := get(t, h, "/tallies?shell=fw")
	require.Equal(t, http.StatusOK, w.Code)

	var tallies []domain.Tally
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tallies))
	// flux + 8 heating + spectrum
	assert.Len(t, tallies, 10)
	for _, tl := range tallies {
		assert.True(t, tally.CoversShell(s.Model(), tl, "fw"), tl.Name)
	}

	w = get(t, h, "/tallies?shell=flibe1")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tallies))
	// TBR channel + 8 heating + spectrum
	require.Len(t, tallies, 10)
	assert.Equal(t, "TBR channel", tallies[0].Name)

	w = get(t, h, "/tallies")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tallies))
	assert.Len(t, tallies, 67)
}

func TestServer_MetricsNotMounted(t *testing.T) {
	w := get(t, NewServer(buildModel(t, nil)).Handler(), "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Update(t *testing.T) {
	base := buildModel(t, nil)
	s := NewServer(base)

	assert.Nil(t, s.Update(buildModel(t, nil)), "identical rebuild should not produce a diff")

	thicker := buildModel(t, func(c *blanket.Case) { c.Geometry.Thicknesses[5] = 80 })
	diff := s.Update(thicker)
	require.NotNil(t, diff)
	require.NotNil(t, diff.Radii)
	assert.Same(t, thicker, s.Model())
}

func TestSubscribeEvents(t *testing.T) {
	s := NewServer(buildModel(t, nil))
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events?watch=settings,radii", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	next := func() string {
		for {
			select {
			case l, ok := <-lines:
				if !ok {
					t.Fatal("stream closed")
				}
				if strings.HasPrefix(l, "data: ") {
					return strings.TrimPrefix(l, "data: ")
				}
			case <-ctx.Done():
				t.Fatal("timed out waiting for event")
			}
		}
	}

	assert.Equal(t, "connected", next())
	require.Eventually(t, func() bool { return s.Streams.Len() == 1 }, time.Second, 10*time.Millisecond)

	// Material-only change is filtered out by the watch list.
	s.Update(buildModel(t, func(c *blanket.Case) { c.Materials.Li6Enrichment = 0.5 }))
	s.Update(buildModel(t, func(c *blanket.Case) {
		c.Materials.Li6Enrichment = 0.5
		c.Settings.Particles = 1000
	}))

	var diff domain.ModelDiff
	require.NoError(t, json.Unmarshal([]byte(next()), &diff))
	require.NotNil(t, diff.Settings)
	assert.Equal(t, 1000, diff.Settings.Particles)
	assert.Nil(t, diff.Radii)
}

func TestStreamManager(t *testing.T) {
	sm := NewStreamManager()
	ch, cancel := sm.Subscribe()
	assert.Equal(t, 1, sm.Len())

	sm.Broadcast("hello")
	assert.Equal(t, "hello", <-ch)

	cancel()
	cancel()
	assert.Equal(t, 0, sm.Len())
	_, ok := <-ch
	assert.False(t, ok)
}

func TestWatched(t *testing.T) {
	assert.True(t, watched(`{"name":"c","radii":{"old":[1],"new":[2]}}`, []string{"radii"}))
	assert.False(t, watched(`{"name":"c","materials":["a"]}`, []string{"radii", "settings"}))
	assert.True(t, watched(`{"name":"c","tallies_removed":["x"]}`, []string{" tallies"}))
	assert.True(t, watched(`{"name":"c","tallies_changed":["neutron_spectra_fw"]}`, []string{"tallies"}))
	assert.True(t, watched(`not json`, []string{"radii"}))
}
