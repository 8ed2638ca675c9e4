// Package motion converts per-frame hand landmarks into structured motion
// descriptors, accumulates them into a session history, and serializes
// recorded sessions to a durable JSON exchange format.
package motion

import "time"

// Coord is a 2D point in pixel coordinates.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CoordF is a 2D point with fractional coordinates, used for derived
// points (palm center) and frame-normalized landmarks.
type CoordF struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Landmarks is the named subset of raw landmark positions carried by a
// descriptor.
type Landmarks struct {
	Wrist     Coord `json:"wrist"`
	ThumbTip  Coord `json:"thumb_tip"`
	IndexTip  Coord `json:"index_tip"`
	MiddleTip Coord `json:"middle_tip"`
	RingTip   Coord `json:"ring_tip"`
	PinkyTip  Coord `json:"pinky_tip"`
}

// NormalizedLandmarks mirrors Landmarks with coordinates scaled to [0,1]
// by the capture frame dimensions. Present only when a frame-size hint was
// supplied at build time.
type NormalizedLandmarks struct {
	Wrist      CoordF `json:"wrist"`
	ThumbTip   CoordF `json:"thumb_tip"`
	IndexTip   CoordF `json:"index_tip"`
	MiddleTip  CoordF `json:"middle_tip"`
	RingTip    CoordF `json:"ring_tip"`
	PinkyTip   CoordF `json:"pinky_tip"`
	PalmCenter CoordF `json:"palm_center"`
}

// Features holds the geometric features derived from one frame.
type Features struct {
	PinchDistance float64 `json:"pinch_distance"`
	HandOpenness  float64 `json:"hand_openness"`
	HandSpan      float64 `json:"hand_span"`
	PalmCenter    CoordF  `json:"palm_center"`
}

// Velocity is the instantaneous velocity of the index finger tip, derived
// from the immediately preceding descriptor. Absent when unmeasurable;
// zero velocity and "unmeasurable" are distinct states.
type Velocity struct {
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Magnitude float64 `json:"magnitude"`
	Direction float64 `json:"direction_radians"`
}

// FrameSize is the capture frame dimensions, used to normalize landmark
// coordinates.
type FrameSize struct {
	Width  int
	Height int
}

// MotionDescriptor is the immutable per-frame record produced by the
// Builder. It is created once, appended to a MotionHistory, and never
// mutated afterward.
type MotionDescriptor struct {
	CaptureTime         time.Time            `json:"capture_time"`
	SessionRelativeTime float64              `json:"session_relative_time"`
	FrameIndex          int                  `json:"frame_index"`
	Hand                string               `json:"hand,omitempty"`
	FingersExtended     []int                `json:"fingers_extended"`
	FingerCount         int                  `json:"finger_count"`
	HandshapeCode       string               `json:"handshape_code"`
	Landmarks           Landmarks            `json:"landmarks"`
	Features            Features             `json:"features"`
	Primitive           Primitive            `json:"primitive"`
	Velocity            *Velocity            `json:"velocity,omitempty"`
	Normalized          *NormalizedLandmarks `json:"normalized_landmarks,omitempty"`
}
