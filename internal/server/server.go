// Package server provides the local HTTP API for the daemon.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rkaroki/signstream/internal/app"
	"github.com/rkaroki/signstream/internal/server/api"
	"github.com/rkaroki/signstream/internal/store"
)

// Config holds the server configuration.
type Config struct {
	Store *store.Store
	App   *app.App
}

// Server is the HTTP API for sessions, recording control, and the live
// descriptor stream.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		sessionHandler := api.NewSessionHandler(s.config.Store)
		s.mux.Handle("/api/sessions", sessionHandler)
		s.mux.Handle("/api/sessions/", sessionHandler)
		s.mux.Handle("/api/stats", api.NewStatsHandler(s.config.Store))
	}

	if s.config.App != nil {
		s.mux.HandleFunc("/api/status", s.handleStatus)
		s.mux.HandleFunc("/api/recording/start", s.handleRecordingStart)
		s.mux.HandleFunc("/api/recording/stop", s.handleRecordingStop)
		s.mux.HandleFunc("/api/recording/cancel", s.handleRecordingCancel)
		s.mux.Handle("/api/live", NewLiveHandler(s.config.App))
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	})
}

// handleStatus reports the pipeline and recording state.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	recording, gesture := s.config.App.Recording()
	status := map[string]any{
		"recording": recording,
		"active":    s.config.App.Active(),
		"frames":    s.config.App.FrameCount(),
	}
	if recording {
		status["gesture"] = gesture
	}
	if last := s.config.App.LastDescriptor(); last != nil {
		status["last_primitive"] = last.Primitive
	}

	writeJSON(w, http.StatusOK, status)
}

type startRecordingRequest struct {
	Gesture string `json:"gesture"`
}

func (s *Server) handleRecordingStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req startRecordingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Gesture == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "gesture name required"})
		return
	}

	if err := s.config.App.StartRecording(req.Gesture); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recording", "gesture": req.Gesture})
}

func (s *Server) handleRecordingStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := s.config.App.StopRecording()
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNotRecording):
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, app.ErrRecordingTooShort):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":    result.SessionID,
		"file_path":     result.FilePath,
		"total_frames":  result.Record.Metadata.TotalFrames,
		"quality_score": result.Quality.Score,
		"warnings":      result.Quality.Warnings,
	})
}

func (s *Server) handleRecordingCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.config.App.CancelRecording(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
