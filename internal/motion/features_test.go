package motion

import (
	"math"
	"testing"

	"github.com/rkaroki/signstream/internal/detector"
)

// frameWithTips builds a complete frame and then overrides selected
// landmark positions.
func frameWithTips(overrides map[int][2]int) *detector.LandmarkFrame {
	frame := detector.OpenHandFrame()
	for index, xy := range overrides {
		frame.Points[index] = detector.Point{Index: index, X: xy[0], Y: xy[1]}
	}
	return &frame
}

func TestPinchDistance(t *testing.T) {
	frame := frameWithTips(map[int][2]int{
		detector.ThumbTip: {0, 0},
		detector.IndexTip: {3, 4},
	})

	if got := PinchDistance(frame); got != 5.0 {
		t.Errorf("PinchDistance() = %v, want 5.0", got)
	}
}

func TestPinchDistance_InsufficientLandmarks(t *testing.T) {
	frame := detector.OpenHandFrame()
	frame.Points = frame.Points[:4] // thumb tip missing

	if got := PinchDistance(&frame); got != 0.0 {
		t.Errorf("PinchDistance() = %v, want 0.0 for short frame", got)
	}
}

func TestHandOpenness(t *testing.T) {
	tests := []struct {
		name    string
		fingers []int
		want    float64
	}{
		{"fist", []int{0, 0, 0, 0, 0}, 0.0},
		{"open", []int{1, 1, 1, 1, 1}, 1.0},
		{"peace", []int{0, 1, 1, 0, 0}, 0.4},
		{"single", []int{0, 1, 0, 0, 0}, 0.2},
		{"empty", nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandOpenness(tt.fingers)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HandOpenness(%v) = %v, want %v", tt.fingers, got, tt.want)
			}
		})
	}
}

func TestExtractFeatures(t *testing.T) {
	frame := frameWithTips(map[int][2]int{
		detector.Wrist:     {100, 200},
		detector.MiddleMCP: {140, 100},
		detector.ThumbTip:  {10, 10},
		detector.IndexTip:  {10, 40},
		detector.PinkyTip:  {50, 40},
	})
	frame.Fingers = []int{1, 1, 0, 0, 0}

	f := ExtractFeatures(frame)

	if f.PinchDistance != 30.0 {
		t.Errorf("PinchDistance = %v, want 30.0", f.PinchDistance)
	}
	if f.HandOpenness != 0.4 {
		t.Errorf("HandOpenness = %v, want 0.4", f.HandOpenness)
	}
	if f.HandSpan != 50.0 {
		t.Errorf("HandSpan = %v, want 50.0", f.HandSpan)
	}
	if f.PalmCenter.X != 120.0 || f.PalmCenter.Y != 150.0 {
		t.Errorf("PalmCenter = %+v, want {120 150}", f.PalmCenter)
	}
}

func TestExtractFeatures_DegenerateDefaults(t *testing.T) {
	// A frame with too few points must not panic; every feature falls
	// back to its documented default.
	frame := &detector.LandmarkFrame{
		Points:  []detector.Point{{Index: 0, X: 5, Y: 5}},
		Fingers: []int{0, 0, 0, 0, 0},
	}

	f := ExtractFeatures(frame)

	if f.PinchDistance != 0.0 {
		t.Errorf("PinchDistance = %v, want 0.0", f.PinchDistance)
	}
	if f.HandSpan != 0.0 {
		t.Errorf("HandSpan = %v, want 0.0", f.HandSpan)
	}
	if f.PalmCenter != (CoordF{}) {
		t.Errorf("PalmCenter = %+v, want zero", f.PalmCenter)
	}
}
