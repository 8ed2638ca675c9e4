// Package api provides the HTTP API handlers for recorded sessions.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rkaroki/signstream/internal/store"
)

// SessionHandler handles HTTP requests for session resources.
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a new SessionHandler with the given store.
func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// ServeHTTP routes session requests.
// Paths: /api/sessions, /api/sessions/{id}, /api/sessions/{id}/record.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.list(w, r)
		return
	}

	if id, ok := strings.CutSuffix(path, "/record"); ok {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.record(w, r, id)
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type sessionResponse struct {
	ID              string  `json:"id"`
	GestureName     string  `json:"gesture_name"`
	Category        string  `json:"category,omitempty"`
	Attempt         int     `json:"attempt,omitempty"`
	RecordedAt      string  `json:"recorded_at"`
	DurationSeconds float64 `json:"duration_seconds"`
	TotalFrames     int     `json:"total_frames"`
	AverageFPS      float64 `json:"average_fps"`
	QualityScore    float64 `json:"quality_score"`
	FilePath        string  `json:"file_path,omitempty"`
}

type listSessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toResponse(s *store.Session) sessionResponse {
	return sessionResponse{
		ID:              s.ID,
		GestureName:     s.GestureName,
		Category:        s.Category,
		Attempt:         s.Attempt,
		RecordedAt:      s.RecordedAt.Format("2006-01-02T15:04:05Z07:00"),
		DurationSeconds: s.DurationSeconds,
		TotalFrames:     s.TotalFrames,
		AverageFPS:      s.AverageFPS,
		QualityScore:    s.QualityScore,
		FilePath:        s.FilePath,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (h *SessionHandler) list(w http.ResponseWriter, r *http.Request) {
	var (
		sessions []*store.Session
		err      error
	)

	if gesture := r.URL.Query().Get("gesture"); gesture != "" {
		sessions, err = h.store.Sessions().ListByGesture(gesture)
	} else {
		sessions, err = h.store.Sessions().List()
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}

	resp := listSessionsResponse{Sessions: make([]sessionResponse, len(sessions))}
	for i, s := range sessions {
		resp.Sessions[i] = toResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *SessionHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	s, err := h.store.Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(s))
}

// record serves the full session JSON as stored at export time.
func (h *SessionHandler) record(w http.ResponseWriter, r *http.Request, id string) {
	s, err := h.store.Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(s.Record)
}

func (h *SessionHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Sessions().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StatsHandler serves the per-gesture aggregate view of the store.
type StatsHandler struct {
	store *store.Store
}

// NewStatsHandler creates a new StatsHandler with the given store.
func NewStatsHandler(s *store.Store) *StatsHandler {
	return &StatsHandler{store: s}
}

type gestureStatsResponse struct {
	GestureName string  `json:"gesture_name"`
	Sessions    int     `json:"sessions"`
	TotalFrames int     `json:"total_frames"`
	AvgDuration float64 `json:"avg_duration"`
	AvgQuality  float64 `json:"avg_quality"`
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.store.Sessions().Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to aggregate sessions")
		return
	}

	resp := make([]gestureStatsResponse, len(stats))
	for i, g := range stats {
		resp[i] = gestureStatsResponse{
			GestureName: g.GestureName,
			Sessions:    g.Sessions,
			TotalFrames: g.TotalFrames,
			AvgDuration: g.AvgDuration,
			AvgQuality:  g.AvgQuality,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"gestures": resp})
}
