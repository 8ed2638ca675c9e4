package motion

import (
	"math"

	"github.com/rkaroki/signstream/internal/detector"
)

// ExtractFeatures derives the geometric features of a single frame.
// It is total: frames missing the required landmark indices yield the
// documented degenerate defaults instead of failing the whole descriptor.
func ExtractFeatures(frame *detector.LandmarkFrame) Features {
	return Features{
		PinchDistance: PinchDistance(frame),
		HandOpenness:  HandOpenness(frame.Fingers),
		HandSpan:      handSpan(frame),
		PalmCenter:    palmCenter(frame),
	}
}

// PinchDistance is the Euclidean distance between the thumb and index
// finger tips, or 0.0 when either landmark is missing.
func PinchDistance(frame *detector.LandmarkFrame) float64 {
	thumb, ok := frame.At(detector.ThumbTip)
	if !ok {
		return 0.0
	}
	index, ok := frame.At(detector.IndexTip)
	if !ok {
		return 0.0
	}
	return math.Hypot(float64(index.X-thumb.X), float64(index.Y-thumb.Y))
}

// HandOpenness is the fraction of extended fingers, in [0,1].
func HandOpenness(fingers []int) float64 {
	if len(fingers) == 0 {
		return 0.0
	}
	sum := 0
	for _, f := range fingers {
		if f != 0 {
			sum++
		}
	}
	return float64(sum) / float64(len(fingers))
}

// handSpan is the Euclidean distance between the thumb and pinky tips,
// or 0.0 when either landmark is missing.
func handSpan(frame *detector.LandmarkFrame) float64 {
	thumb, ok := frame.At(detector.ThumbTip)
	if !ok {
		return 0.0
	}
	pinky, ok := frame.At(detector.PinkyTip)
	if !ok {
		return 0.0
	}
	return math.Hypot(float64(pinky.X-thumb.X), float64(pinky.Y-thumb.Y))
}

// palmCenter approximates the palm position as the midpoint of the wrist
// and the middle-finger base, or {0,0} when either landmark is missing.
func palmCenter(frame *detector.LandmarkFrame) CoordF {
	wrist, ok := frame.At(detector.Wrist)
	if !ok {
		return CoordF{}
	}
	middleBase, ok := frame.At(detector.MiddleMCP)
	if !ok {
		return CoordF{}
	}
	return CoordF{
		X: float64(wrist.X+middleBase.X) / 2,
		Y: float64(wrist.Y+middleBase.Y) / 2,
	}
}
