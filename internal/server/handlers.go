package server

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"ecosim/internal/sims/ecosystem"
)

// maxBodyBytes bounds the start-simulation request body.
const maxBodyBytes = 1 << 12

type startRequest struct {
	Plants     *int `json:"plants"`
	Herbivores *int `json:"herbivores"`
	Carnivores *int `json:"carnivores"`
}

func (s *Server) routes() {
	static, _ := fs.Sub(staticFS, "static")
	s.mux.Handle("GET /{$}", http.FileServer(http.FS(static)))
	s.mux.HandleFunc("POST /start-simulation", s.handleStart)
	s.mux.HandleFunc("GET /next-iteration", s.handleNext)
	s.mux.HandleFunc("GET /grid", s.handleGrid)
	s.mux.HandleFunc("GET /population", s.handlePopulation)
	s.mux.HandleFunc("GET /parameters", s.handleParameters)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "Malformed request body", http.StatusBadRequest)
		return
	}
	if req.Plants == nil || req.Herbivores == nil || req.Carnivores == nil {
		http.Error(w, "plants, herbivores and carnivores are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.world.Seed(*req.Plants, *req.Herbivores, *req.Carnivores)
	var snap ecosystem.Snapshot
	if err == nil {
		snap = s.world.Export()
	}
	s.mu.Unlock()

	switch {
	case errors.Is(err, ecosystem.ErrTooManyEntities):
		s.log.Info("seed rejected", "plants", *req.Plants, "herbivores", *req.Herbivores, "carnivores", *req.Carnivores)
		http.Error(w, "Too many entities", http.StatusBadRequest)
		return
	case errors.Is(err, ecosystem.ErrInvalidCount):
		http.Error(w, "Entity counts must not be negative", http.StatusBadRequest)
		return
	case err != nil:
		s.log.Error("seed failed", "err", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	s.log.Info("simulation started", "plants", *req.Plants, "herbivores", *req.Herbivores, "carnivores", *req.Carnivores)
	s.writeJSON(w, snap)
}

func (s *Server) handleNext(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.world.Tick()
	snap := s.world.Export()
	tick := s.world.Ticks()
	s.mu.Unlock()

	s.log.Debug("tick", "n", tick)
	s.writeJSON(w, snap)
}

func (s *Server) handleGrid(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	snap := s.world.Export()
	s.mu.RUnlock()
	s.writeJSON(w, snap)
}

func (s *Server) handlePopulation(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	pop := s.world.Population()
	s.mu.RUnlock()
	s.writeJSON(w, pop)
}

func (s *Server) handleParameters(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	params := s.world.Parameters()
	s.mu.RUnlock()
	s.writeJSON(w, params)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode response", "err", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
