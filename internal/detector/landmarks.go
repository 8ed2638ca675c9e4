// Package detector provides hand detection interfaces and the landmark
// frame contract consumed by the motion pipeline.
package detector

// Hand landmark indices following the standard 21-point hand topology.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// NumFingers is the length of the finger-extension vector:
// [thumb, index, middle, ring, pinky].
const NumFingers = 5

// Point is one labeled 2D landmark in pixel coordinates.
type Point struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// LandmarkFrame is the per-tick output of a hand detector: the 21 labeled
// points plus the 5-element finger-extension vector (1 = extended).
// Handedness is supplied by the detector, never derived downstream.
type LandmarkFrame struct {
	Points     []Point `json:"points"`
	Fingers    []int   `json:"fingers"`
	Handedness string  `json:"handedness"` // "Left" or "Right"
	Score      float64 `json:"score"`
}

// Complete reports whether the frame carries all 21 landmarks and exactly
// 5 finger flags. Incomplete frames must be rejected by consumers.
func (f *LandmarkFrame) Complete() bool {
	return f != nil && len(f.Points) >= NumLandmarks && len(f.Fingers) == NumFingers
}

// At returns the landmark at the given position.
// The second return is false when the frame is too short.
func (f *LandmarkFrame) At(index int) (Point, bool) {
	if f == nil || index < 0 || index >= len(f.Points) {
		return Point{}, false
	}
	return f.Points[index], true
}

// ExtendedCount returns the number of raised fingers.
func (f *LandmarkFrame) ExtendedCount() int {
	n := 0
	for _, v := range f.Fingers {
		if v != 0 {
			n++
		}
	}
	return n
}
