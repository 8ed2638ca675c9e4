package motion

import (
	"math"
	"testing"
	"time"

	"github.com/rkaroki/signstream/internal/detector"
)

func TestAggregate_EmptyHistory(t *testing.T) {
	s := Aggregate(NewHistory())

	if !s.Empty() {
		t.Error("Empty() = false for empty history")
	}
	if s.TotalFrames != 0 || s.DurationSeconds != 0 || s.AverageFPS != 0 {
		t.Errorf("empty history stats = %+v, want zeroes", s)
	}
	if s.VelocityStats != nil {
		t.Error("VelocityStats set for empty history")
	}
}

func TestAggregate_SingleFrame(t *testing.T) {
	clock := newStubClock()
	h := NewHistory()
	h.now = clock.Now
	h.Append(descriptorAt(0, clock.Now(), PrimitiveFist))

	s := Aggregate(h)

	if s.TotalFrames != 1 {
		t.Errorf("TotalFrames = %d, want 1", s.TotalFrames)
	}
	if s.DurationSeconds != 0 {
		t.Errorf("DurationSeconds = %v, want 0 for single frame", s.DurationSeconds)
	}
	if s.AverageFPS != 0 {
		t.Errorf("AverageFPS = %v, want 0 when duration is zero", s.AverageFPS)
	}
}

func TestAggregate_Session(t *testing.T) {
	clock := newStubClock()
	b := newTestBuilder(clock)

	open := detector.OpenHandFrame()
	fist := detector.FistFrame()
	for i, frame := range []*detector.LandmarkFrame{&open, &open, &fist} {
		if _, err := b.Build(frame, nil); err != nil {
			t.Fatalf("Build(%d): %v", i, err)
		}
		clock.Advance(100 * time.Millisecond)
	}

	s := Aggregate(b.History())

	if s.TotalFrames != 3 {
		t.Errorf("TotalFrames = %d, want 3", s.TotalFrames)
	}
	if math.Abs(s.DurationSeconds-0.2) > 1e-9 {
		t.Errorf("DurationSeconds = %v, want 0.2", s.DurationSeconds)
	}
	if math.Abs(s.AverageFPS-15) > 1e-9 {
		t.Errorf("AverageFPS = %v, want 15", s.AverageFPS)
	}
	if s.PrimitiveCounts[PrimitiveOpenHand] != 2 || s.PrimitiveCounts[PrimitiveFist] != 1 {
		t.Errorf("PrimitiveCounts = %v", s.PrimitiveCounts)
	}
	if s.UniquePrimitives != 2 {
		t.Errorf("UniquePrimitives = %d, want 2", s.UniquePrimitives)
	}
	if s.VelocityStats == nil {
		t.Fatal("VelocityStats is nil for a moving session")
	}
}

func TestVelocityStats(t *testing.T) {
	got := velocityStats([]float64{10, 30, 20})

	if got.Min != 10 || got.Max != 30 {
		t.Errorf("Min/Max = %v/%v, want 10/30", got.Min, got.Max)
	}
	if math.Abs(got.Mean-20) > 1e-9 {
		t.Errorf("Mean = %v, want 20", got.Mean)
	}

	if velocityStats(nil) != nil {
		t.Error("velocityStats(nil) must be nil")
	}
}
