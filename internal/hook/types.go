// Package hook provides discovery and execution of export hooks:
// external programs that are notified after a recording session is
// exported.
package hook

import "encoding/json"

// EventSessionExported is fired after a session record has been written
// to disk and indexed in the store.
const EventSessionExported = "session.exported"

// Manifest describes a hook's metadata and the events it subscribes to.
type Manifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Executable  string   `json:"executable"`
	Events      []string `json:"events"`
}

// Request is the payload sent to a hook on its stdin.
type Request struct {
	Event       string          `json:"event"`
	SessionID   string          `json:"session_id"`
	GestureName string          `json:"gesture_name"`
	FilePath    string          `json:"file_path"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// Response is what a hook writes to its stdout.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Hook represents a discovered hook with its manifest and location.
type Hook struct {
	Manifest   Manifest
	Path       string
	Executable string
}

// Subscribed reports whether the hook listens for the given event.
func (h *Hook) Subscribed(event string) bool {
	for _, e := range h.Manifest.Events {
		if e == event {
			return true
		}
	}
	return false
}
