package record

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rkaroki/signstream/internal/motion"
)

func TestCatalog(t *testing.T) {
	if len(Catalog) != 5 {
		t.Fatalf("Catalog has %d categories, want 5", len(Catalog))
	}

	if TotalGestures() != 15 {
		t.Errorf("TotalGestures() = %d, want 15", TotalGestures())
	}

	// Names are unique across categories.
	seen := make(map[string]bool)
	for _, c := range Catalog {
		if len(c.Gestures) == 0 {
			t.Errorf("category %q is empty", c.Name)
		}
		for _, g := range c.Gestures {
			if seen[g.Name] {
				t.Errorf("duplicate gesture name %q", g.Name)
			}
			seen[g.Name] = true
			if g.Description == "" {
				t.Errorf("gesture %q has no description", g.Name)
			}
		}
	}
}

func TestFindGesture(t *testing.T) {
	g, category, ok := FindGesture("wave")
	if !ok {
		t.Fatal("FindGesture(wave) not found")
	}
	if category != "Dynamic Movements" {
		t.Errorf("category = %q, want Dynamic Movements", category)
	}
	if g.Description == "" {
		t.Error("description is empty")
	}

	if _, _, ok := FindGesture("moonwalk"); ok {
		t.Error("FindGesture(moonwalk) should not be found")
	}
}

func TestDefaultPlan(t *testing.T) {
	p := DefaultPlan()

	if p.Duration != 3*time.Second || p.Countdown != 3*time.Second || p.Attempts != 3 {
		t.Errorf("DefaultPlan() = %+v", p)
	}
	if p.TotalRecordings() != 45 {
		t.Errorf("TotalRecordings() = %d, want 45", p.TotalRecordings())
	}
	if p.EstimatedTime() <= 0 {
		t.Error("EstimatedTime() must be positive")
	}
}

func TestFilenames(t *testing.T) {
	at := time.Unix(1750000000, 0)

	if got := Filename("wave", at); got != "wave_1750000000.json" {
		t.Errorf("Filename() = %q", got)
	}
	if got := AttemptFilename("wave", 2, at); got != "wave_2_1750000000.json" {
		t.Errorf("AttemptFilename() = %q", got)
	}
	if got := OutputPath("data", "wave_1750000000.json"); got != filepath.Join("data", "wave_1750000000.json") {
		t.Errorf("OutputPath() = %q", got)
	}
}

func TestAcceptable(t *testing.T) {
	tests := []struct {
		frames int
		want   bool
	}{
		{0, false},
		{19, false},
		{20, true},
		{100, true},
	}

	for _, tt := range tests {
		if got := Acceptable(tt.frames); got != tt.want {
			t.Errorf("Acceptable(%d) = %v, want %v", tt.frames, got, tt.want)
		}
	}
}

func TestCheckQuality(t *testing.T) {
	tests := []struct {
		name         string
		stats        motion.Statistics
		wantWarnings int
		wantScore    float64
	}{
		{
			name:         "clean take",
			stats:        motion.Statistics{AverageFPS: 30, TotalFrames: 90},
			wantWarnings: 0,
			wantScore:    1.0,
		},
		{
			name:         "low fps",
			stats:        motion.Statistics{AverageFPS: 15, TotalFrames: 90},
			wantWarnings: 1,
			wantScore:    0.75,
		},
		{
			name:         "short take",
			stats:        motion.Statistics{AverageFPS: 30, TotalFrames: 27},
			wantWarnings: 1,
			wantScore:    0.65,
		},
		{
			name:         "both low",
			stats:        motion.Statistics{AverageFPS: 15, TotalFrames: 27},
			wantWarnings: 2,
			wantScore:    0.4,
		},
		{
			name:         "scores cap at one",
			stats:        motion.Statistics{AverageFPS: 60, TotalFrames: 300},
			wantWarnings: 0,
			wantScore:    1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := CheckQuality(tt.stats)

			if len(q.Warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d", q.Warnings, tt.wantWarnings)
			}
			if diff := q.Score - tt.wantScore; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Score = %v, want %v", q.Score, tt.wantScore)
			}
		})
	}
}

func TestCheckQualityAgainst_CustomThresholds(t *testing.T) {
	stats := motion.Statistics{AverageFPS: 15, TotalFrames: 27}

	// Both values warn under the defaults.
	if q := CheckQuality(stats); len(q.Warnings) != 2 {
		t.Fatalf("default warnings = %v, want 2", q.Warnings)
	}

	// Relaxed thresholds accept the same take.
	relaxed := Thresholds{MinFPS: 10, MinFrames: 20}
	if q := CheckQualityAgainst(stats, relaxed); len(q.Warnings) != 0 {
		t.Errorf("relaxed warnings = %v, want none", q.Warnings)
	}

	// The warning text carries the configured cutoff, not the default.
	strict := Thresholds{MinFPS: 60, MinFrames: 200}
	q := CheckQualityAgainst(stats, strict)
	if len(q.Warnings) != 2 {
		t.Fatalf("strict warnings = %v, want 2", q.Warnings)
	}
	if q.Warnings[0] != "Low FPS (< 60)" {
		t.Errorf("Warnings[0] = %q", q.Warnings[0])
	}
	if q.Warnings[1] != "Too few frames (< 200)" {
		t.Errorf("Warnings[1] = %q", q.Warnings[1])
	}

	// The score does not depend on the thresholds.
	if base := CheckQuality(stats); q.Score != base.Score {
		t.Errorf("Score = %v, want %v", q.Score, base.Score)
	}
}

func TestManifest_RoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	m := NewManifest([]string{"wave_1_1.json", "wave_2_2.json"}, at)

	if m.SessionDate != "2025-06-01 12:30:00" {
		t.Errorf("SessionDate = %q", m.SessionDate)
	}
	if m.TotalRecordings != 2 {
		t.Errorf("TotalRecordings = %d, want 2", m.TotalRecordings)
	}
	if len(m.Categories) != 5 {
		t.Errorf("Categories has %d entries, want 5", len(m.Categories))
	}
	if got := m.Categories["Static Handshapes"]; len(got) != 5 || got[0] != "point" {
		t.Errorf("Static Handshapes = %v", got)
	}

	path := filepath.Join(t.TempDir(), ManifestFilename)
	if err := m.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if loaded.TotalRecordings != 2 || len(loaded.Recordings) != 2 {
		t.Errorf("loaded manifest = %+v", loaded)
	}
}

func TestNewManifest_NoRecordings(t *testing.T) {
	m := NewManifest(nil, time.Now())

	if m.Recordings == nil {
		t.Error("Recordings should be an empty slice, not nil")
	}
	if m.TotalRecordings != 0 {
		t.Errorf("TotalRecordings = %d, want 0", m.TotalRecordings)
	}
}
