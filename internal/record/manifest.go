package record

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ManifestFilename is the manifest's name inside the data directory.
const ManifestFilename = "recording_manifest.json"

// Manifest summarizes one batch recording session: when it ran, which
// files it produced, and the catalog it was recorded against.
type Manifest struct {
	SessionDate     string              `json:"session_date"`
	TotalRecordings int                 `json:"total_recordings"`
	Recordings      []string            `json:"recordings"`
	Categories      map[string][]string `json:"categories"`
}

// NewManifest builds a manifest for the given completed recordings.
func NewManifest(recordings []string, at time.Time) *Manifest {
	categories := make(map[string][]string, len(Catalog))
	for _, c := range Catalog {
		names := make([]string, len(c.Gestures))
		for i, g := range c.Gestures {
			names[i] = g.Name
		}
		categories[c.Name] = names
	}

	if recordings == nil {
		recordings = []string{}
	}

	return &Manifest{
		SessionDate:     at.Format("2006-01-02 15:04:05"),
		TotalRecordings: len(recordings),
		Recordings:      recordings,
		Categories:      categories,
	}
}

// WriteFile persists the manifest as indented JSON.
func (m *Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// LoadManifest reads a manifest from disk.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
