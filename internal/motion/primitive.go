package motion

import "strings"

// Primitive is a symbolic label summarizing one frame's handshape.
// Primitives are building blocks of signs, not complete words.
type Primitive string

// Known primitive labels.
const (
	PrimitivePoint      Primitive = "POINT"
	PrimitivePeaceV     Primitive = "PEACE_V"
	PrimitiveOpenHand   Primitive = "OPEN_HAND"
	PrimitiveFist       Primitive = "FIST"
	PrimitiveThumbsUp   Primitive = "THUMBS_UP"
	PrimitiveOKSign     Primitive = "OK_SIGN"
	PrimitivePinchReady Primitive = "PINCH_READY"
	PrimitiveThree      Primitive = "THREE"
	PrimitiveFour       Primitive = "FOUR"
	PrimitivePinky      Primitive = "PINKY"
)

// DefaultPinchThreshold is the pinch distance in pixels below which thumb
// and index are considered touching. Resolution-dependent; callers
// capturing at other resolutions should scale it via the Classifier.
const DefaultPinchThreshold = 40.0

// UnknownPrimitive builds the fallback label for a handshape no rule
// matches. Distinct configurations yield distinct labels.
func UnknownPrimitive(handshapeCode string) Primitive {
	return Primitive("UNKNOWN_" + handshapeCode)
}

// HandshapeCode encodes the finger-extension vector as a compact string,
// e.g. [0,1,0,0,0] -> "01000".
func HandshapeCode(fingers []int) string {
	var b strings.Builder
	for _, f := range fingers {
		if f != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Classifier maps a finger-extension pattern plus the pinch distance to a
// motion primitive. It is stateless and deterministic.
type Classifier struct {
	// PinchThreshold separates OK_SIGN (below) from PINCH_READY (at or
	// above) for the thumb+index pattern.
	PinchThreshold float64
}

// NewClassifier creates a Classifier with the default pinch threshold.
func NewClassifier() *Classifier {
	return &Classifier{PinchThreshold: DefaultPinchThreshold}
}

// rule is one entry of the ordered classification table. Evaluation order
// is load-bearing: the first matching rule wins, so overlapping patterns
// resolve the same way every time.
type rule struct {
	matches func(fingers []int) bool
	label   func(c *Classifier, pinchDistance float64) Primitive
}

func pattern(want ...int) func([]int) bool {
	return func(fingers []int) bool {
		if len(fingers) != len(want) {
			return false
		}
		for i, w := range want {
			if fingers[i] != w {
				return false
			}
		}
		return true
	}
}

func allDown(fingers []int) bool {
	for _, f := range fingers {
		if f != 0 {
			return false
		}
	}
	return true
}

func fixed(p Primitive) func(*Classifier, float64) Primitive {
	return func(*Classifier, float64) Primitive { return p }
}

// rules is evaluated top to bottom. Keep the order: FIST must come after
// POINT/PEACE_V/OPEN_HAND, and the thumb+index pattern is the only rule
// that consults the pinch distance.
var rules = []rule{
	{pattern(0, 1, 0, 0, 0), fixed(PrimitivePoint)},
	{pattern(0, 1, 1, 0, 0), fixed(PrimitivePeaceV)},
	{pattern(1, 1, 1, 1, 1), fixed(PrimitiveOpenHand)},
	{allDown, fixed(PrimitiveFist)},
	{pattern(1, 0, 0, 0, 0), fixed(PrimitiveThumbsUp)},
	{pattern(1, 1, 0, 0, 0), func(c *Classifier, pinch float64) Primitive {
		if pinch < c.PinchThreshold {
			return PrimitiveOKSign
		}
		return PrimitivePinchReady
	}},
	{pattern(0, 1, 1, 1, 0), fixed(PrimitiveThree)},
	{pattern(0, 1, 1, 1, 1), fixed(PrimitiveFour)},
	{pattern(0, 0, 0, 0, 1), fixed(PrimitivePinky)},
}

// Classify maps the finger vector and pinch distance to a primitive.
// It is total: configurations no rule matches fall through to a distinct
// UNKNOWN_<handshape_code> label.
func (c *Classifier) Classify(fingers []int, pinchDistance float64) Primitive {
	for _, r := range rules {
		if r.matches(fingers) {
			return r.label(c, pinchDistance)
		}
	}
	return UnknownPrimitive(HandshapeCode(fingers))
}
