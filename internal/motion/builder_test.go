package motion

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rkaroki/signstream/internal/detector"
)

func newTestBuilder(clock *stubClock) *Builder {
	h := NewHistory()
	h.now = clock.Now
	b := NewBuilder(h)
	b.now = clock.Now
	return b
}

func TestBuilder_RejectsInvalidFrame(t *testing.T) {
	clock := newStubClock()
	b := newTestBuilder(clock)

	short := detector.OpenHandFrame()
	short.Points = short.Points[:10]

	if _, err := b.Build(&short, nil); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("Build(10-point frame): err = %v, want ErrInvalidFrame", err)
	}

	badFingers := detector.OpenHandFrame()
	badFingers.Fingers = []int{1, 1, 0}

	if _, err := b.Build(&badFingers, nil); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("Build(3-flag frame): err = %v, want ErrInvalidFrame", err)
	}

	if _, err := b.Build(nil, nil); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("Build(nil): err = %v, want ErrInvalidFrame", err)
	}

	// Rejected frames leave the history untouched; the next valid frame
	// takes index 0.
	if b.History().Len() != 0 {
		t.Fatalf("history len = %d after rejections, want 0", b.History().Len())
	}

	open := detector.OpenHandFrame()
	d, err := b.Build(&open, nil)
	if err != nil {
		t.Fatalf("Build(valid): %v", err)
	}
	if d.FrameIndex != 0 {
		t.Errorf("FrameIndex = %d, want 0: rejected frames must not advance the index", d.FrameIndex)
	}
}

func TestBuilder_VelocityPresence(t *testing.T) {
	clock := newStubClock()
	b := newTestBuilder(clock)

	open := detector.OpenHandFrame()
	first, err := b.Build(&open, nil)
	if err != nil {
		t.Fatalf("Build(first): %v", err)
	}
	if first.Velocity != nil {
		t.Error("first descriptor has velocity, want nil")
	}

	// Same capture instant: dt is zero, velocity stays absent.
	same, err := b.Build(&open, nil)
	if err != nil {
		t.Fatalf("Build(same instant): %v", err)
	}
	if same.Velocity != nil {
		t.Error("zero-dt descriptor has velocity, want nil")
	}

	clock.Advance(100 * time.Millisecond)
	moved := detector.OpenHandFrame()
	moved.Points[detector.IndexTip].X += 30
	moved.Points[detector.IndexTip].Y += 40

	third, err := b.Build(&moved, nil)
	if err != nil {
		t.Fatalf("Build(third): %v", err)
	}
	if third.Velocity == nil {
		t.Fatal("third descriptor has no velocity")
	}

	// 50px of index-tip travel over 0.1s.
	if math.Abs(third.Velocity.VX-300) > 1e-6 {
		t.Errorf("VX = %v, want 300", third.Velocity.VX)
	}
	if math.Abs(third.Velocity.VY-400) > 1e-6 {
		t.Errorf("VY = %v, want 400", third.Velocity.VY)
	}
	if math.Abs(third.Velocity.Magnitude-500) > 1e-6 {
		t.Errorf("Magnitude = %v, want 500", third.Velocity.Magnitude)
	}
	wantDir := math.Atan2(400, 300)
	if math.Abs(third.Velocity.Direction-wantDir) > 1e-9 {
		t.Errorf("Direction = %v, want %v", third.Velocity.Direction, wantDir)
	}
}

func TestBuilder_SessionRelativeTime(t *testing.T) {
	clock := newStubClock()
	b := newTestBuilder(clock)

	open := detector.OpenHandFrame()
	fist := detector.FistFrame()

	steps := []struct {
		frame *detector.LandmarkFrame
		want  Primitive
	}{
		{&open, PrimitiveOpenHand},
		{&open, PrimitiveOpenHand},
		{&fist, PrimitiveFist},
	}

	for i, step := range steps {
		d, err := b.Build(step.frame, nil)
		if err != nil {
			t.Fatalf("Build(%d): %v", i, err)
		}

		wantRel := 0.1 * float64(i)
		if math.Abs(d.SessionRelativeTime-wantRel) > 1e-9 {
			t.Errorf("frame %d: SessionRelativeTime = %v, want %v", i, d.SessionRelativeTime, wantRel)
		}
		if d.FrameIndex != i {
			t.Errorf("frame %d: FrameIndex = %d", i, d.FrameIndex)
		}
		if d.Primitive != step.want {
			t.Errorf("frame %d: Primitive = %q, want %q", i, d.Primitive, step.want)
		}

		clock.Advance(100 * time.Millisecond)
	}

	if b.History().Len() != 3 {
		t.Errorf("history len = %d, want 3", b.History().Len())
	}
}

func TestBuilder_ClassifiesPinchFrame(t *testing.T) {
	clock := newStubClock()
	b := newTestBuilder(clock)

	pinch := detector.PinchFrame()
	d, err := b.Build(&pinch, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if d.Primitive != PrimitiveOKSign {
		t.Errorf("Primitive = %q, want OK_SIGN (tips are %v px apart)", d.Primitive, d.Features.PinchDistance)
	}
	if d.HandshapeCode != "11000" {
		t.Errorf("HandshapeCode = %q, want 11000", d.HandshapeCode)
	}
	if d.FingerCount != 2 {
		t.Errorf("FingerCount = %d, want 2", d.FingerCount)
	}
	if d.Hand != "Right" {
		t.Errorf("Hand = %q, want Right", d.Hand)
	}
}

func TestBuilder_NormalizedLandmarks(t *testing.T) {
	clock := newStubClock()
	b := newTestBuilder(clock)

	open := detector.OpenHandFrame()

	d, err := b.Build(&open, &FrameSize{Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Normalized == nil {
		t.Fatal("Normalized is nil despite frame size")
	}

	wrist, _ := open.At(detector.Wrist)
	wantX := float64(wrist.X) / 640
	wantY := float64(wrist.Y) / 480
	if d.Normalized.Wrist.X != wantX || d.Normalized.Wrist.Y != wantY {
		t.Errorf("Normalized.Wrist = %+v, want {%v %v}", d.Normalized.Wrist, wantX, wantY)
	}

	// Without a size the field stays absent.
	clock.Advance(100 * time.Millisecond)
	plain, err := b.Build(&open, nil)
	if err != nil {
		t.Fatalf("Build(no size): %v", err)
	}
	if plain.Normalized != nil {
		t.Error("Normalized set without a frame size")
	}

	// A degenerate size is treated as absent.
	clock.Advance(100 * time.Millisecond)
	bad, err := b.Build(&open, &FrameSize{Width: 0, Height: 480})
	if err != nil {
		t.Fatalf("Build(zero width): %v", err)
	}
	if bad.Normalized != nil {
		t.Error("Normalized set for zero-width frame size")
	}
}

func TestBuilder_CopiesFingerVector(t *testing.T) {
	clock := newStubClock()
	b := newTestBuilder(clock)

	frame := detector.OpenHandFrame()
	d, err := b.Build(&frame, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	frame.Fingers[0] = 0
	if d.FingersExtended[0] != 1 {
		t.Error("descriptor shares the caller's finger slice")
	}
}
