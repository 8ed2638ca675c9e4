package motion

import (
	"fmt"
	"time"

	"github.com/rkaroki/signstream/internal/detector"
)

// Builder assembles one immutable MotionDescriptor per valid input frame
// and appends it to its session history. It is the sole mutation entry
// point for a MotionHistory; everything else reads.
type Builder struct {
	// Classifier maps handshapes to primitives. Replace or tune before the
	// first Build call, not mid-session.
	Classifier *Classifier

	history *MotionHistory

	// now is the capture clock. Overridable in tests.
	now func() time.Time
}

// NewBuilder creates a Builder writing to the given history, with the
// default primitive classifier.
func NewBuilder(history *MotionHistory) *Builder {
	return &Builder{
		Classifier: NewClassifier(),
		history:    history,
		now:        time.Now,
	}
}

// History returns the session history this builder writes to.
func (b *Builder) History() *MotionHistory {
	return b.history
}

// Build validates the frame, derives features, classifies the handshape,
// estimates velocity against the history's last entry, and appends the
// resulting descriptor to the session history. The first call of a
// session defines time zero for session_relative_time.
//
// A malformed frame fails with ErrInvalidFrame and leaves the history
// untouched: the caller skips the tick, frame_index does not advance.
// size may be nil; when given, normalized landmark coordinates are added.
func (b *Builder) Build(frame *detector.LandmarkFrame, size *FrameSize) (*MotionDescriptor, error) {
	if frame == nil || len(frame.Points) < detector.NumLandmarks {
		return nil, fmt.Errorf("%w: need %d landmarks", ErrInvalidFrame, detector.NumLandmarks)
	}
	if len(frame.Fingers) != detector.NumFingers {
		return nil, fmt.Errorf("%w: need exactly %d finger flags, got %d", ErrInvalidFrame, detector.NumFingers, len(frame.Fingers))
	}

	captureTime := b.now()

	relative := 0.0
	if first := b.history.First(); first != nil {
		relative = captureTime.Sub(first.CaptureTime).Seconds()
	}

	features := ExtractFeatures(frame)
	landmarks := namedLandmarks(frame)

	fingers := make([]int, detector.NumFingers)
	copy(fingers, frame.Fingers)

	d := &MotionDescriptor{
		CaptureTime:         captureTime,
		SessionRelativeTime: relative,
		FrameIndex:          b.history.Len(),
		Hand:                frame.Handedness,
		FingersExtended:     fingers,
		FingerCount:         frame.ExtendedCount(),
		HandshapeCode:       HandshapeCode(fingers),
		Landmarks:           landmarks,
		Features:            features,
		Primitive:           b.Classifier.Classify(fingers, features.PinchDistance),
		Velocity:            estimateVelocity(b.history.Last(), landmarks.IndexTip, captureTime),
	}

	if size != nil {
		d.Normalized = normalizeLandmarks(landmarks, features.PalmCenter, *size)
	}

	if err := b.history.Append(d); err != nil {
		return nil, err
	}

	return d, nil
}

// namedLandmarks extracts the named landmark subset from a complete frame.
func namedLandmarks(frame *detector.LandmarkFrame) Landmarks {
	at := func(index int) Coord {
		p, _ := frame.At(index)
		return Coord{X: p.X, Y: p.Y}
	}

	return Landmarks{
		Wrist:     at(detector.Wrist),
		ThumbTip:  at(detector.ThumbTip),
		IndexTip:  at(detector.IndexTip),
		MiddleTip: at(detector.MiddleTip),
		RingTip:   at(detector.RingTip),
		PinkyTip:  at(detector.PinkyTip),
	}
}

// normalizeLandmarks scales the named landmarks and palm center to [0,1]
// by the frame dimensions.
func normalizeLandmarks(l Landmarks, palm CoordF, size FrameSize) *NormalizedLandmarks {
	if size.Width <= 0 || size.Height <= 0 {
		return nil
	}

	w := float64(size.Width)
	h := float64(size.Height)
	scale := func(c Coord) CoordF {
		return CoordF{X: float64(c.X) / w, Y: float64(c.Y) / h}
	}

	return &NormalizedLandmarks{
		Wrist:      scale(l.Wrist),
		ThumbTip:   scale(l.ThumbTip),
		IndexTip:   scale(l.IndexTip),
		MiddleTip:  scale(l.MiddleTip),
		RingTip:    scale(l.RingTip),
		PinkyTip:   scale(l.PinkyTip),
		PalmCenter: CoordF{X: palm.X / w, Y: palm.Y / h},
	}
}
