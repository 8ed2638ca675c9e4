package motion

import "testing"

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name    string
		fingers []int
		pinch   float64
		want    Primitive
	}{
		{"point", []int{0, 1, 0, 0, 0}, 100, PrimitivePoint},
		{"peace", []int{0, 1, 1, 0, 0}, 100, PrimitivePeaceV},
		{"open hand", []int{1, 1, 1, 1, 1}, 100, PrimitiveOpenHand},
		{"fist", []int{0, 0, 0, 0, 0}, 100, PrimitiveFist},
		{"thumbs up", []int{1, 0, 0, 0, 0}, 100, PrimitiveThumbsUp},
		{"ok sign below threshold", []int{1, 1, 0, 0, 0}, 39, PrimitiveOKSign},
		{"pinch ready at threshold", []int{1, 1, 0, 0, 0}, 40, PrimitivePinchReady},
		{"pinch ready above threshold", []int{1, 1, 0, 0, 0}, 120, PrimitivePinchReady},
		{"three", []int{0, 1, 1, 1, 0}, 100, PrimitiveThree},
		{"four", []int{0, 1, 1, 1, 1}, 100, PrimitiveFour},
		{"pinky", []int{0, 0, 0, 0, 1}, 100, PrimitivePinky},
		{"unknown composite", []int{1, 0, 1, 0, 1}, 100, Primitive("UNKNOWN_10101")},
		{"unknown thumb ring", []int{1, 0, 0, 1, 0}, 100, Primitive("UNKNOWN_10010")},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.fingers, tt.pinch)
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %q, want %q", tt.fingers, tt.pinch, got, tt.want)
			}

			// Determinism: identical inputs yield identical labels.
			if again := c.Classify(tt.fingers, tt.pinch); again != got {
				t.Errorf("second Classify(%v, %v) = %q, want %q", tt.fingers, tt.pinch, again, got)
			}
		})
	}
}

func TestClassifier_PointIgnoresPinch(t *testing.T) {
	c := NewClassifier()
	for _, pinch := range []float64{0, 10, 39, 40, 500} {
		if got := c.Classify([]int{0, 1, 0, 0, 0}, pinch); got != PrimitivePoint {
			t.Errorf("Classify(point, %v) = %q, want POINT", pinch, got)
		}
	}
}

func TestClassifier_Total(t *testing.T) {
	// Every one of the 32 finger configurations must yield a label.
	c := NewClassifier()
	for mask := 0; mask < 32; mask++ {
		fingers := make([]int, 5)
		for i := range fingers {
			fingers[i] = (mask >> i) & 1
		}

		got := c.Classify(fingers, 100)
		if got == "" {
			t.Errorf("Classify(%v) returned empty label", fingers)
		}
	}
}

func TestClassifier_CustomThreshold(t *testing.T) {
	c := &Classifier{PinchThreshold: 80}

	if got := c.Classify([]int{1, 1, 0, 0, 0}, 79); got != PrimitiveOKSign {
		t.Errorf("Classify below custom threshold = %q, want OK_SIGN", got)
	}
	if got := c.Classify([]int{1, 1, 0, 0, 0}, 80); got != PrimitivePinchReady {
		t.Errorf("Classify at custom threshold = %q, want PINCH_READY", got)
	}
}

func TestHandshapeCode(t *testing.T) {
	tests := []struct {
		fingers []int
		want    string
	}{
		{[]int{0, 1, 0, 0, 0}, "01000"},
		{[]int{1, 1, 1, 1, 1}, "11111"},
		{[]int{0, 0, 0, 0, 0}, "00000"},
		{[]int{1, 0, 1, 0, 1}, "10101"},
	}

	for _, tt := range tests {
		if got := HandshapeCode(tt.fingers); got != tt.want {
			t.Errorf("HandshapeCode(%v) = %q, want %q", tt.fingers, got, tt.want)
		}
	}
}
