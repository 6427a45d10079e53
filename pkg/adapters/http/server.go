// Package http serves a built blanket model over HTTP for inspection and
// streams model diffs to subscribers when the model is rebuilt.
package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/blanket"
	"github.com/aretw0/blanket/internal/presentation/graph"
	"github.com/aretw0/blanket/internal/presentation/tui"
	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/tally"
)

// Server exposes the current model. Update swaps it and broadcasts the diff.
type Server struct {
	mu      sync.RWMutex
	model   *domain.Model
	Streams *StreamManager
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics mounts h on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithLogger sets the request and broadcast logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates a server for the given model.
func NewServer(m *domain.Model, opts ...Option) *Server {
	s := &Server{
		model:   m,
		Streams: NewStreamManager(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams.logger = s.logger
	return s
}

// Model returns the model currently served.
func (s *Server) Model() *domain.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// Update replaces the served model and pushes the diff to every subscriber.
// It returns the diff, or nil when nothing changed.
func (s *Server) Update(m *domain.Model) *domain.ModelDiff {
	s.mu.Lock()
	old := s.model
	s.model = m
	s.mu.Unlock()

	diff := domain.Diff(old, m)
	if diff == nil {
		s.logger.Debug("Update: No diff calculated", "case", m.Name)
		return nil
	}
	s.logger.Info("Update: Model changed", "case", m.Name, "diff", diff)
	if b, err := json.Marshal(diff); err == nil {
		s.Streams.Broadcast(string(b))
	}
	return diff
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/model", s.GetModel)
	r.Get("/radii", s.GetRadii)
	r.Get("/materials", s.GetMaterials)
	r.Get("/materials/{name}", s.GetMaterial)
	r.Get("/cells", s.GetCells)
	r.Get("/tallies", s.GetTallies)
	r.Get("/tallies/{name}", s.GetTally)
	r.Get("/graph", s.GetGraph)
	r.Get("/report", s.GetReport)
	r.Get("/events", s.SubscribeEvents)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":     "blanket-http",
		"version": strings.TrimSpace(blanket.Version),
		"case":    s.Model().Name,
	})
}

// GetModel handles GET /model.
func (s *Server) GetModel(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Model())
}

// GetRadii handles GET /radii.
func (s *Server) GetRadii(w http.ResponseWriter, r *http.Request) {
	m := s.Model()
	type shell struct {
		Surface string  `json:"surface"`
		Radius  float64 `json:"radius"`
	}
	out := make([]shell, len(m.Geometry.Surfaces))
	for i, sf := range m.Geometry.Surfaces {
		out[i] = shell{Surface: sf.Name, Radius: sf.MinorRadius}
	}
	s.writeJSON(w, out)
}

// GetMaterials handles GET /materials.
func (s *Server) GetMaterials(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Model().Materials)
}

// GetMaterial handles GET /materials/{name}.
func (s *Server) GetMaterial(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	mat, ok := s.Model().Material(name)
	if !ok {
		http.Error(w, fmt.Sprintf("%v: %q", domain.ErrUnknownMaterial, name), http.StatusNotFound)
		return
	}
	s.writeJSON(w, mat)
}

// GetCells handles GET /cells.
func (s *Server) GetCells(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Model().Geometry.Cells)
}

// GetTallies handles GET /tallies. The optional shell query keeps the
// tallies with a cell filter bin on that cell.
func (s *Server) GetTallies(w http.ResponseWriter, r *http.Request) {
	m := s.Model()
	tallies := m.Tallies
	if shell := r.URL.Query().Get("shell"); shell != "" {
		tallies = slices.DeleteFunc(slices.Clone(tallies), func(t domain.Tally) bool {
			return !tally.CoversShell(m, t, shell)
		})
	}
	s.writeJSON(w, tallies)
}

// GetTally handles GET /tallies/{name}.
func (s *Server) GetTally(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	t, ok := s.Model().Tally(name)
	if !ok {
		http.Error(w, fmt.Sprintf("tally not found: %q", name), http.StatusNotFound)
		return
	}
	s.writeJSON(w, t)
}

// GetGraph handles GET /graph and returns the Mermaid layer diagram.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.Overlay
	if h := r.URL.Query().Get("highlight"); h != "" {
		overlay = &graph.Overlay{Highlight: strings.Split(h, ",")}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(s.Model().Geometry, overlay))
}

// GetReport handles GET /report and returns the markdown summary.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, tui.Report(s.Model()))
}

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan<- string]struct{}
	logger      *slog.Logger
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[chan<- string]struct{}),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (sm *StreamManager) Subscribe() (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

// Len returns the number of active subscribers.
func (sm *StreamManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	sm.logger.Debug("StreamManager: Broadcasting", "subscribers", len(sm.subscribers), "payload_size", len(msg))
	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("SSE: Client buffer full, dropping message")
		}
	}
}

// SubscribeEvents handles GET /events (SSE). The optional watch query is a
// comma separated list of diff fields (radii, materials, tallies, settings);
// diffs touching none of them are skipped.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var watchList []string
	if watch := r.URL.Query().Get("watch"); watch != "" {
		watchList = strings.Split(watch, ",")
	}

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if len(watchList) > 0 && !watched(msg, watchList) {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func watched(msg string, fields []string) bool {
	var diff domain.ModelDiff
	if err := json.Unmarshal([]byte(msg), &diff); err != nil {
		return true
	}
	for _, field := range fields {
		switch strings.TrimSpace(field) {
		case "radii":
			if diff.Radii != nil {
				return true
			}
		case "materials":
			if len(diff.Materials) > 0 {
				return true
			}
		case "tallies":
			if len(diff.TalliesAdded) > 0 || len(diff.TalliesRemoved) > 0 || len(diff.TalliesChanged) > 0 {
				return true
			}
		case "settings":
			if diff.Settings != nil {
				return true
			}
		}
	}
	return false
}
