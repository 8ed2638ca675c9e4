package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	frames []LandmarkFrame
	err    error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFrames sets the landmark frames that will be returned by Detect.
func (m *MockDetector) SetFrames(frames []LandmarkFrame) {
	m.frames = frames
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured frames or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]LandmarkFrame, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.frames, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// baseHand lays out a plausible right hand in a 640x480 frame with the
// wrist near the bottom center. Finger tips are then adjusted per pose.
func baseHand() []Point {
	coords := [NumLandmarks][2]int{
		{320, 420}, // wrist
		{355, 400}, {380, 375}, {395, 350}, {405, 330}, // thumb
		{345, 360}, {350, 320}, {352, 290}, {354, 265}, // index
		{320, 355}, {320, 310}, {320, 275}, {320, 245}, // middle
		{295, 360}, {290, 320}, {287, 290}, {285, 265}, // ring
		{270, 370}, {260, 340}, {255, 315}, {250, 295}, // pinky
	}

	points := make([]Point, NumLandmarks)
	for i, c := range coords {
		points[i] = Point{Index: i, X: c[0], Y: c[1]}
	}
	return points
}

// curled pulls a finger tip back toward the palm.
func curled(points []Point, tip int) {
	points[tip].X = (points[tip].X + points[Wrist].X) / 2
	points[tip].Y = (points[tip].Y + points[Wrist].Y) / 2
}

// PointFrame returns a preset LandmarkFrame for a pointing hand:
// index extended, all other fingers curled.
func PointFrame() LandmarkFrame {
	points := baseHand()
	curled(points, ThumbTip)
	curled(points, MiddleTip)
	curled(points, RingTip)
	curled(points, PinkyTip)

	return LandmarkFrame{
		Points:     points,
		Fingers:    []int{0, 1, 0, 0, 0},
		Handedness: "Right",
		Score:      0.95,
	}
}

// OpenHandFrame returns a preset LandmarkFrame with all fingers extended.
func OpenHandFrame() LandmarkFrame {
	return LandmarkFrame{
		Points:     baseHand(),
		Fingers:    []int{1, 1, 1, 1, 1},
		Handedness: "Right",
		Score:      0.95,
	}
}

// FistFrame returns a preset LandmarkFrame with all fingers curled.
func FistFrame() LandmarkFrame {
	points := baseHand()
	for _, tip := range []int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip} {
		curled(points, tip)
	}

	return LandmarkFrame{
		Points:     points,
		Fingers:    []int{0, 0, 0, 0, 0},
		Handedness: "Right",
		Score:      0.95,
	}
}

// PinchFrame returns a preset LandmarkFrame with thumb and index extended
// and their tips nearly touching, as in an OK sign.
func PinchFrame() LandmarkFrame {
	points := baseHand()
	curled(points, MiddleTip)
	curled(points, RingTip)
	curled(points, PinkyTip)

	// Bring thumb and index tips within a few pixels of each other.
	points[ThumbTip] = Point{Index: ThumbTip, X: 350, Y: 280}
	points[IndexTip] = Point{Index: IndexTip, X: 356, Y: 274}

	return LandmarkFrame{
		Points:     points,
		Fingers:    []int{1, 1, 0, 0, 0},
		Handedness: "Right",
		Score:      0.95,
	}
}
