package analyze

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rkaroki/signstream/internal/motion"
	"github.com/rkaroki/signstream/internal/record"
)

// Attempt is the analyzed view of one recording file.
type Attempt struct {
	FilePath     string
	Duration     float64
	Frames       int
	FPS          float64
	QualityScore float64
	Primitives   []motion.Primitive
}

// Report groups the analyzed attempts of a dataset by gesture, each
// group sorted best quality first.
type Report struct {
	Gestures map[string][]Attempt
}

// GestureFromFilename recovers the gesture name from a batch recording
// filename, dropping the trailing attempt number and timestamp.
func GestureFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), ".json")
	parts := strings.Split(stem, "_")
	if len(parts) <= 2 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-2], "_")
}

// AnalyzeDataset loads every recording listed in the manifest and
// scores it. Unreadable files are logged and skipped; one broken take
// must not sink the report.
func AnalyzeDataset(m *record.Manifest) *Report {
	report := &Report{Gestures: make(map[string][]Attempt)}

	for _, path := range m.Recordings {
		a, err := Load(path)
		if err != nil {
			log.Printf("analyze: skipping %s: %v", path, err)
			continue
		}

		meta := a.Record.Metadata
		quality := record.CheckQuality(motion.Statistics{
			AverageFPS:  meta.AverageFPS,
			TotalFrames: meta.TotalFrames,
		})

		gesture := GestureFromFilename(path)
		report.Gestures[gesture] = append(report.Gestures[gesture], Attempt{
			FilePath:     path,
			Duration:     meta.DurationSeconds,
			Frames:       meta.TotalFrames,
			FPS:          meta.AverageFPS,
			QualityScore: quality.Score,
			Primitives:   meta.PrimitivesUsed,
		})
	}

	for gesture := range report.Gestures {
		attempts := report.Gestures[gesture]
		sort.SliceStable(attempts, func(i, j int) bool {
			return attempts[i].QualityScore > attempts[j].QualityScore
		})
	}

	return report
}

// Best returns the highest-quality attempt of a gesture.
func (r *Report) Best(gesture string) (Attempt, bool) {
	attempts := r.Gestures[gesture]
	if len(attempts) == 0 {
		return Attempt{}, false
	}
	return attempts[0], true
}

// Markdown renders the dataset summary report.
func (r *Report) Markdown(m *record.Manifest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dataset Summary Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", m.SessionDate)
	fmt.Fprintf(&b, "**Total Recordings:** %d\n\n", m.TotalRecordings)

	names := make([]string, 0, len(r.Gestures))
	for name := range r.Gestures {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(&b, "## Overview\n\n")
	fmt.Fprintf(&b, "| Gesture | Attempts | Best FPS | Best Frames | Avg Quality |\n")
	fmt.Fprintf(&b, "|---------|----------|----------|-------------|-------------|\n")

	for _, name := range names {
		attempts := r.Gestures[name]
		if len(attempts) == 0 {
			continue
		}

		best := attempts[0]
		sum := 0.0
		for _, a := range attempts {
			sum += a.QualityScore
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f | %d | %.2f |\n",
			name, len(attempts), best.FPS, best.Frames, sum/float64(len(attempts)))
	}

	fmt.Fprintf(&b, "\n## Detailed Analysis\n\n")
	for _, name := range names {
		attempts := r.Gestures[name]
		if len(attempts) == 0 {
			continue
		}

		best := attempts[0]
		primitives := make([]string, len(best.Primitives))
		for i, p := range best.Primitives {
			primitives[i] = string(p)
		}

		fmt.Fprintf(&b, "### %s\n\n", name)
		fmt.Fprintf(&b, "**Best Attempt:** `%s`\n\n", filepath.Base(best.FilePath))
		fmt.Fprintf(&b, "- Duration: %.2fs\n", best.Duration)
		fmt.Fprintf(&b, "- Frames: %d\n", best.Frames)
		fmt.Fprintf(&b, "- FPS: %.1f\n", best.FPS)
		fmt.Fprintf(&b, "- Primitives: %s\n", strings.Join(primitives, ", "))
		fmt.Fprintf(&b, "- Quality Score: %.2f/1.00\n\n", best.QualityScore)

		if len(attempts) > 1 {
			fmt.Fprintf(&b, "**All Attempts:**\n\n")
			for i, a := range attempts {
				fmt.Fprintf(&b, "%d. `%s` - Quality: %.2f, Frames: %d, FPS: %.1f\n",
					i+1, filepath.Base(a.FilePath), a.QualityScore, a.Frames, a.FPS)
			}
			fmt.Fprintf(&b, "\n")
		}
	}

	fmt.Fprintf(&b, "## Quality Assessment\n\n")

	var all []Attempt
	for _, attempts := range r.Gestures {
		all = append(all, attempts...)
	}

	if len(all) > 0 {
		var sumFPS, sumFrames, sumQuality float64
		var high, medium, low int
		for _, a := range all {
			sumFPS += a.FPS
			sumFrames += float64(a.Frames)
			sumQuality += a.QualityScore
			switch {
			case a.QualityScore > 0.9:
				high++
			case a.QualityScore >= 0.7:
				medium++
			default:
				low++
			}
		}

		n := float64(len(all))
		fmt.Fprintf(&b, "- **Average FPS:** %.1f\n", sumFPS/n)
		fmt.Fprintf(&b, "- **Average Frames:** %.0f\n", sumFrames/n)
		fmt.Fprintf(&b, "- **Average Quality:** %.2f/1.00\n", sumQuality/n)
		fmt.Fprintf(&b, "- **High Quality (>0.9):** %d recordings\n", high)
		fmt.Fprintf(&b, "- **Medium Quality (0.7-0.9):** %d recordings\n", medium)
		fmt.Fprintf(&b, "- **Low Quality (<0.7):** %d recordings\n\n", low)
	}

	fmt.Fprintf(&b, "## Recommendations\n\n")
	fmt.Fprintf(&b, "1. Use **best attempts** (highlighted above) for documentation and demos\n")
	fmt.Fprintf(&b, "2. Consider re-recording any gestures with quality < 0.7\n")

	return b.String()
}
