package record

import (
	"fmt"

	"github.com/rkaroki/signstream/internal/motion"
)

// Quality warning thresholds. Recordings below these are kept but
// flagged for a retry.
const (
	QualityMinFPS    = 25.0
	QualityMinFrames = 30
)

// Reference values for the quality score: a take at 30 FPS with 90
// frames (3 seconds) scores 1.0 on both axes.
const (
	scoreFullFPS    = 30.0
	scoreFullFrames = 90.0
)

// QualityCheck describes how usable one recording is.
type QualityCheck struct {
	// Score is in [0,1]; 1.0 means full frame rate and full length.
	Score float64
	// Warnings lists threshold violations, empty for a clean take.
	Warnings []string
}

// Thresholds carries the warning cutoffs for a quality check. The
// calibration lives in the recording config; the constants above are
// its defaults.
type Thresholds struct {
	MinFPS    float64
	MinFrames int
}

// DefaultThresholds returns the standard warning cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{MinFPS: QualityMinFPS, MinFrames: QualityMinFrames}
}

// Acceptable reports whether a recording of the given length clears the
// hard minimum frame floor.
func Acceptable(totalFrames int) bool {
	return totalFrames >= MinFrames
}

// CheckQuality scores a finished recording against the default
// thresholds.
func CheckQuality(stats motion.Statistics) QualityCheck {
	return CheckQualityAgainst(stats, DefaultThresholds())
}

// CheckQualityAgainst scores a finished recording from its session
// statistics. The score is threshold-independent; the thresholds only
// decide which warnings are raised.
func CheckQualityAgainst(stats motion.Statistics, t Thresholds) QualityCheck {
	var warnings []string

	if stats.AverageFPS < t.MinFPS {
		warnings = append(warnings, fmt.Sprintf("Low FPS (< %.0f)", t.MinFPS))
	}
	if stats.TotalFrames < t.MinFrames {
		warnings = append(warnings, fmt.Sprintf("Too few frames (< %d)", t.MinFrames))
	}

	fpsScore := stats.AverageFPS / scoreFullFPS
	if fpsScore > 1.0 {
		fpsScore = 1.0
	}
	frameScore := float64(stats.TotalFrames) / scoreFullFrames
	if frameScore > 1.0 {
		frameScore = 1.0
	}

	return QualityCheck{
		Score:    (fpsScore + frameScore) / 2,
		Warnings: warnings,
	}
}
