package motion

// VelocityStats summarizes velocity magnitudes over the descriptors that
// carry a velocity.
type VelocityStats struct {
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
	Min  float64 `json:"min"`
}

// Statistics is the aggregate view of one history snapshot.
type Statistics struct {
	DurationSeconds  float64           `json:"duration_seconds"`
	TotalFrames      int               `json:"total_frames"`
	AverageFPS       float64           `json:"average_fps"`
	PrimitiveCounts  map[Primitive]int `json:"primitive_counts"`
	UniquePrimitives int               `json:"unique_primitives"`

	// VelocityStats is nil when no descriptor has a measurable velocity.
	VelocityStats *VelocityStats `json:"velocity_stats,omitempty"`
}

// Empty reports whether the statistics describe a history with no frames.
func (s Statistics) Empty() bool {
	return s.TotalFrames == 0
}

// Aggregate computes statistics over a history snapshot. It never fails:
// an empty history yields the explicit no-data result, not a division
// error.
func Aggregate(h *MotionHistory) Statistics {
	if h.Len() == 0 {
		return Statistics{}
	}

	duration := 0.0
	if h.Len() >= 2 {
		duration = h.Last().CaptureTime.Sub(h.First().CaptureTime).Seconds()
	}

	fps := 0.0
	if duration > 0 {
		fps = float64(h.Len()) / duration
	}

	counts := make(map[Primitive]int)
	var velocities []float64
	for _, d := range h.Descriptors() {
		counts[d.Primitive]++
		if d.Velocity != nil {
			velocities = append(velocities, d.Velocity.Magnitude)
		}
	}

	return Statistics{
		DurationSeconds:  duration,
		TotalFrames:      h.Len(),
		AverageFPS:       fps,
		PrimitiveCounts:  counts,
		UniquePrimitives: len(counts),
		VelocityStats:    velocityStats(velocities),
	}
}

func velocityStats(magnitudes []float64) *VelocityStats {
	if len(magnitudes) == 0 {
		return nil
	}

	stats := &VelocityStats{Max: magnitudes[0], Min: magnitudes[0]}
	sum := 0.0
	for _, m := range magnitudes {
		sum += m
		if m > stats.Max {
			stats.Max = m
		}
		if m < stats.Min {
			stats.Min = m
		}
	}
	stats.Mean = sum / float64(len(magnitudes))

	return stats
}
