// Package server runs the local design library server: a small JSON API
// over a stored library plus one-shot evaluation of posted designs.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/orionarts/sharpie/internal/store"
	"github.com/orionarts/sharpie/pkg/perf"
	"github.com/orionarts/sharpie/pkg/report"
	"github.com/orionarts/sharpie/pkg/ship"
)

const maxBody = 1 << 20

// Server serves a design library over HTTP.
type Server struct {
	st   *store.Store
	port int
	log  *slog.Logger
}

// New creates a server over an open library.
func New(st *store.Store, port int, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{st: st, port: port, log: log}
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/designs", s.handleList)
	mux.HandleFunc("POST /api/designs", s.handleSave)
	mux.HandleFunc("GET /api/designs/{id}", s.handleGet)
	mux.HandleFunc("DELETE /api/designs/{id}", s.handleDelete)
	mux.HandleFunc("GET /api/designs/{id}/report", s.handleReport)
	mux.HandleFunc("GET /api/designs/{id}/metrics", s.handleMetrics)
	mux.HandleFunc("GET /api/designs/{id}/findings", s.handleFindings)
	mux.HandleFunc("POST /api/evaluate", s.handleEvaluate)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("server starting", "addr", "http://localhost"+addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Sharpie</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:left">
<h1>Sharpie</h1>
<p>Warship design library. Endpoints:</p>
<pre>
GET    /api/designs               library index (?name= filter)
POST   /api/designs               save a design (YAML body)
GET    /api/designs/{id}          design record (YAML)
DELETE /api/designs/{id}          remove a design
GET    /api/designs/{id}/report   full design report (text)
GET    /api/designs/{id}/metrics  headline figures (JSON)
GET    /api/designs/{id}/findings soundness findings (JSON)
POST   /api/evaluate              evaluate without saving (YAML in, JSON out)
</pre>
</div>
</body></html>`)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.st.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, entries)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	d, err := s.readShip(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := s.st.Save(r.Context(), d)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]string{"id": id})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(d); err != nil {
		s.log.Error("encode design", "err", err)
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := s.st.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, report.Render(d))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, perf.New(d).Summarize())
}

func (s *Server) handleFindings(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, perf.New(d).Findings())
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	d, err := s.readShip(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m := perf.New(d)
	writeJSON(w, map[string]any{
		"metrics":  m.Summarize(),
		"findings": m.Findings(),
	})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*ship.Ship, bool) {
	d, err := s.st.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		s.fail(w, err)
		return nil, false
	}
	return d, true
}

func (s *Server) readShip(r *http.Request) (*ship.Ship, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	d := ship.New()
	if err := yaml.Unmarshal(body, d); err != nil {
		return nil, fmt.Errorf("decode design: %w", err)
	}
	return d, nil
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.log.Error("request failed", "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
