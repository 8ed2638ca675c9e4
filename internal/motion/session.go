package motion

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SessionMetadata describes one recorded session. recorded_at is the
// export wall-clock time, ISO-8601 in the serialized form.
type SessionMetadata struct {
	GestureName     string         `json:"gesture_name"`
	RecordedAt      time.Time      `json:"recorded_at"`
	DurationSeconds float64        `json:"duration_seconds"`
	TotalFrames     int            `json:"total_frames"`
	AverageFPS      float64        `json:"average_fps"`
	PrimitivesUsed  []Primitive    `json:"primitives_used"`
	Custom          map[string]any `json:"custom"`
}

// SessionRecord is the durable exchange format: session metadata plus the
// full ordered frame sequence. One file per completed recording session.
type SessionRecord struct {
	Metadata SessionMetadata     `json:"metadata"`
	Frames   []*MotionDescriptor `json:"frames"`
}

// Export builds a SessionRecord from a history snapshot. The metadata
// mirrors Aggregate; primitives_used is the session's distinct-primitive
// set in first-seen order (stable within one export). Fails with
// ErrEmptyHistory when the history has zero descriptors; whether that is
// a no-op or a user error is the caller's decision.
func Export(h *MotionHistory, gestureName string, custom map[string]any) (*SessionRecord, error) {
	if h.Len() == 0 {
		return nil, fmt.Errorf("%w: nothing to export for %q", ErrEmptyHistory, gestureName)
	}

	stats := Aggregate(h)
	if custom == nil {
		custom = map[string]any{}
	}

	return &SessionRecord{
		Metadata: SessionMetadata{
			GestureName:     gestureName,
			RecordedAt:      time.Now(),
			DurationSeconds: stats.DurationSeconds,
			TotalFrames:     stats.TotalFrames,
			AverageFPS:      stats.AverageFPS,
			PrimitivesUsed:  h.Primitives(),
			Custom:          custom,
		},
		Frames: h.Descriptors(),
	}, nil
}

// Encode serializes the record as indented UTF-8 JSON.
func (r *SessionRecord) Encode() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteFile persists the record to path as a single synchronous write.
// No retries: failure surfaces immediately to the caller.
func (r *SessionRecord) WriteFile(path string) error {
	data, err := r.Encode()
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// Load parses and validates a serialized SessionRecord. A document whose
// top level is missing either the metadata or the frames field, or where
// either is not well-formed, fails with ErrMalformedRecord. Partial or
// garbled data is never coerced into a record.
func Load(data []byte) (*SessionRecord, error) {
	var probe struct {
		Metadata *json.RawMessage `json:"metadata"`
		Frames   *json.RawMessage `json:"frames"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if probe.Metadata == nil || probe.Frames == nil {
		return nil, fmt.Errorf("%w: missing metadata or frames", ErrMalformedRecord)
	}

	record := &SessionRecord{}
	if err := json.Unmarshal(*probe.Metadata, &record.Metadata); err != nil {
		return nil, fmt.Errorf("%w: bad metadata: %v", ErrMalformedRecord, err)
	}
	if err := json.Unmarshal(*probe.Frames, &record.Frames); err != nil {
		return nil, fmt.Errorf("%w: bad frames: %v", ErrMalformedRecord, err)
	}

	return record, nil
}

// LoadFile reads and validates a session record from disk.
func LoadFile(path string) (*SessionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session record: %w", err)
	}
	return Load(data)
}
