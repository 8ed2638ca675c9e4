package motion

import (
	"math"
	"time"
)

// estimateVelocity computes the index-tip velocity of the current frame
// against the immediately preceding descriptor. Returns nil, not zero,
// when there is no predecessor or no time has elapsed: "unmeasurable"
// must never be conflated with "not moving".
func estimateVelocity(prev *MotionDescriptor, indexTip Coord, at time.Time) *Velocity {
	if prev == nil {
		return nil
	}

	dt := at.Sub(prev.CaptureTime).Seconds()
	if dt == 0 {
		return nil
	}

	vx := float64(indexTip.X-prev.Landmarks.IndexTip.X) / dt
	vy := float64(indexTip.Y-prev.Landmarks.IndexTip.Y) / dt

	return &Velocity{
		VX:        vx,
		VY:        vy,
		Magnitude: math.Hypot(vx, vy),
		Direction: math.Atan2(vy, vx),
	}
}
