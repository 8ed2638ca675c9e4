// Package analyze inspects recorded session files: per-session
// summaries, side-by-side comparison, and the dataset quality report.
package analyze

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rkaroki/signstream/internal/motion"
)

// Analyzer wraps one loaded session record.
type Analyzer struct {
	Path   string
	Record *motion.SessionRecord
}

// Load reads and validates a session file for analysis.
func Load(path string) (*Analyzer, error) {
	record, err := motion.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Analyzer{Path: path, Record: record}, nil
}

// Summary renders the statistical summary of the session: metadata,
// per-primitive frame shares, velocity statistics, and the hand
// openness range.
func (a *Analyzer) Summary() string {
	var b strings.Builder
	m := a.Record.Metadata
	frames := a.Record.Frames

	rule := strings.Repeat("=", 70)
	fmt.Fprintf(&b, "%s\nMotion Analysis: %s\n%s\n", rule, m.GestureName, rule)

	fmt.Fprintf(&b, "\nMetadata:\n")
	fmt.Fprintf(&b, "  Recorded: %s\n", m.RecordedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "  Duration: %.2f seconds\n", m.DurationSeconds)
	fmt.Fprintf(&b, "  Frames: %d\n", m.TotalFrames)
	fmt.Fprintf(&b, "  Average FPS: %.1f\n", m.AverageFPS)

	counts := make(map[motion.Primitive]int)
	for _, f := range frames {
		counts[f.Primitive]++
	}

	fmt.Fprintf(&b, "\nPrimitive Analysis:\n")
	fmt.Fprintf(&b, "  Unique primitives: %d\n", len(counts))

	names := make([]string, 0, len(counts))
	for p := range counts {
		names = append(names, string(p))
	}
	sort.Strings(names)
	for _, name := range names {
		count := counts[motion.Primitive(name)]
		percentage := float64(count) / float64(len(frames)) * 100
		fmt.Fprintf(&b, "    %-20s: %4d frames (%5.1f%%)\n", name, count, percentage)
	}

	var velocities []float64
	for _, f := range frames {
		if f.Velocity != nil {
			velocities = append(velocities, f.Velocity.Magnitude)
		}
	}
	if len(velocities) > 0 {
		mean, stddev := meanStd(velocities)
		fmt.Fprintf(&b, "\nVelocity Analysis:\n")
		fmt.Fprintf(&b, "  Mean velocity: %.2f px/s\n", mean)
		fmt.Fprintf(&b, "  Max velocity: %.2f px/s\n", maxOf(velocities))
		fmt.Fprintf(&b, "  Min velocity: %.2f px/s\n", minOf(velocities))
		fmt.Fprintf(&b, "  Std deviation: %.2f px/s\n", stddev)
	}

	if len(frames) > 0 {
		var openness []float64
		for _, f := range frames {
			openness = append(openness, f.Features.HandOpenness)
		}
		mean, _ := meanStd(openness)
		fmt.Fprintf(&b, "\nHand Openness:\n")
		fmt.Fprintf(&b, "  Mean: %.2f\n", mean)
		fmt.Fprintf(&b, "  Range: %.2f - %.2f\n", minOf(openness), maxOf(openness))
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}

// Compare renders side-by-side statistics of two sessions.
func Compare(a, b *Analyzer) string {
	var sb strings.Builder

	rule := strings.Repeat("=", 70)
	fmt.Fprintf(&sb, "%s\nGesture Comparison\n%s\n", rule, rule)

	for i, an := range []*Analyzer{a, b} {
		m := an.Record.Metadata
		fmt.Fprintf(&sb, "\nGesture %d: %s\n", i+1, m.GestureName)
		fmt.Fprintf(&sb, "  Duration: %.2fs\n", m.DurationSeconds)
		fmt.Fprintf(&sb, "  Frames: %d\n", len(an.Record.Frames))
		fmt.Fprintf(&sb, "  FPS: %.1f\n", m.AverageFPS)
	}

	fmt.Fprintf(&sb, "\n%s\n", rule)
	return sb.String()
}

func meanStd(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(variance / float64(len(values)))
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
