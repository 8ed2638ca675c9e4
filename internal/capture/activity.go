package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Activity gate constants.
const (
	// GaussianBlurSize is the kernel size for Gaussian blur (21x21).
	GaussianBlurSize = 21
	// DiffThreshold is the binary threshold for difference detection.
	DiffThreshold = 25
	// DefaultHoldFrames is how many still frames the gate stays open
	// after the last observed motion. Signs pause mid-gesture; dropping
	// the frame rate on the first still frame would lose those holds.
	DefaultHoldFrames = 10
)

// ActivityGate decides whether a hand is currently moving in front of
// the camera, using frame differencing with Gaussian blur for noise
// reduction. The pipeline samples at the active frame rate while the
// gate is open and at the idle rate otherwise.
type ActivityGate struct {
	threshold   float64
	hold        int
	still       int
	active      bool
	prevGray    gocv.Mat
	initialized bool
	mu          sync.Mutex
}

// NewActivityGate creates an ActivityGate. threshold is the percentage
// of pixels that must change between frames to count as motion; hold is
// the number of consecutive still frames before the gate closes again.
// A hold of 0 uses DefaultHoldFrames.
func NewActivityGate(threshold float64, hold int) *ActivityGate {
	if hold <= 0 {
		hold = DefaultHoldFrames
	}
	return &ActivityGate{
		threshold: threshold,
		hold:      hold,
		prevGray:  gocv.NewMat(),
	}
}

// Observe feeds one frame through the gate and returns the resulting
// state plus the percentage of pixels that changed.
//
// The differencing core: grayscale, 21x21 Gaussian blur, absolute
// difference against the previous frame, binary threshold at 25, then
// the non-zero pixel ratio. The first frame only seeds the baseline.
func (g *ActivityGate) Observe(frame *gocv.Mat) (bool, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if frame == nil || frame.Empty() {
		return g.active, 0
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: GaussianBlurSize, Y: GaussianBlurSize}, 0, 0, gocv.BorderDefault)

	if !g.initialized {
		blurred.CopyTo(&g.prevGray)
		g.initialized = true
		return g.active, 0
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, g.prevGray, &diff)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(diff, &thresh, DiffThreshold, 255, gocv.ThresholdBinary)

	nonZero := gocv.CountNonZero(thresh)
	totalPixels := thresh.Rows() * thresh.Cols()
	changePercent := float64(nonZero) / float64(totalPixels) * 100.0

	blurred.CopyTo(&g.prevGray)

	if changePercent > g.threshold {
		g.active = true
		g.still = 0
	} else if g.active {
		g.still++
		if g.still >= g.hold {
			g.active = false
			g.still = 0
		}
	}

	return g.active, changePercent
}

// Active reports the current gate state without consuming a frame.
func (g *ActivityGate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.active
}

// Reset clears the gate state, allowing it to be reused with a new
// baseline frame.
func (g *ActivityGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.prevGray.Empty() {
		g.prevGray.Close()
		g.prevGray = gocv.NewMat()
	}
	g.initialized = false
	g.active = false
	g.still = 0
}

// Close releases resources held by the gate.
func (g *ActivityGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.prevGray.Empty() {
		g.prevGray.Close()
		g.prevGray = gocv.NewMat()
	}
	g.initialized = false
	g.active = false
	g.still = 0
}

// SetThreshold sets the motion threshold as a percentage of changed
// pixels. Values less than or equal to 0 are ignored.
func (g *ActivityGate) SetThreshold(threshold float64) {
	if threshold <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.threshold = threshold
}
