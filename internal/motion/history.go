package motion

import (
	"fmt"
	"time"
)

// MotionHistory is the ordered, append-only sequence of descriptors for
// one recording session. A single Builder writes it; reads are snapshots.
// The history itself does not lock: the surrounding capture loop is
// expected to serialize ticks.
type MotionHistory struct {
	descriptors []*MotionDescriptor
	primitives  []Primitive
	seen        map[Primitive]struct{}

	// now is the clock used for time-windowed queries. Overridable in tests.
	now func() time.Time
}

// NewHistory creates an empty MotionHistory.
func NewHistory() *MotionHistory {
	return &MotionHistory{
		seen: make(map[Primitive]struct{}),
		now:  time.Now,
	}
}

// Append adds a descriptor to the history, enforcing the ordering
// invariants: frame_index must equal the current length and capture_time
// must not precede the last descriptor's. Violations return
// ErrOutOfOrderAppend; they should never happen under single-writer
// discipline, but are checked regardless.
func (h *MotionHistory) Append(d *MotionDescriptor) error {
	if d.FrameIndex != len(h.descriptors) {
		return fmt.Errorf("%w: frame_index %d, want %d", ErrOutOfOrderAppend, d.FrameIndex, len(h.descriptors))
	}
	if last := h.Last(); last != nil && d.CaptureTime.Before(last.CaptureTime) {
		return fmt.Errorf("%w: capture_time precedes previous frame", ErrOutOfOrderAppend)
	}

	h.descriptors = append(h.descriptors, d)

	if _, ok := h.seen[d.Primitive]; !ok {
		h.seen[d.Primitive] = struct{}{}
		h.primitives = append(h.primitives, d.Primitive)
	}

	return nil
}

// Len returns the number of descriptors in the history.
func (h *MotionHistory) Len() int {
	return len(h.descriptors)
}

// First returns the oldest descriptor, or nil if the history is empty.
func (h *MotionHistory) First() *MotionDescriptor {
	if len(h.descriptors) == 0 {
		return nil
	}
	return h.descriptors[0]
}

// Last returns the most recent descriptor, or nil if the history is empty.
func (h *MotionHistory) Last() *MotionDescriptor {
	if len(h.descriptors) == 0 {
		return nil
	}
	return h.descriptors[len(h.descriptors)-1]
}

// Descriptors returns a snapshot of the full ordered sequence.
func (h *MotionHistory) Descriptors() []*MotionDescriptor {
	out := make([]*MotionDescriptor, len(h.descriptors))
	copy(out, h.descriptors)
	return out
}

// Window returns the descriptors captured within the given number of
// seconds of the current wall-clock time, not of the last descriptor.
// The distinction matters for live queries during an ongoing session.
func (h *MotionHistory) Window(seconds float64) []*MotionDescriptor {
	if len(h.descriptors) == 0 {
		return nil
	}

	cutoff := h.now().Add(-time.Duration(seconds * float64(time.Second)))

	var out []*MotionDescriptor
	for _, d := range h.descriptors {
		if d.CaptureTime.After(cutoff) {
			out = append(out, d)
		}
	}
	return out
}

// PrimitiveSequence returns the primitive labels of the descriptors in the
// window, order preserved. This sequence is what downstream sign
// recognition consumes: signs are sequences, not single frames.
func (h *MotionHistory) PrimitiveSequence(seconds float64) []Primitive {
	window := h.Window(seconds)
	out := make([]Primitive, len(window))
	for i, d := range window {
		out[i] = d.Primitive
	}
	return out
}

// Primitives returns the distinct primitives observed this session, in
// first-seen order.
func (h *MotionHistory) Primitives() []Primitive {
	out := make([]Primitive, len(h.primitives))
	copy(out, h.primitives)
	return out
}

// Clear resets the history to empty, discarding all descriptors and the
// distinct-primitive set atomically. Used when a session is cancelled or
// restarted; descriptors are never destroyed selectively.
func (h *MotionHistory) Clear() {
	h.descriptors = nil
	h.primitives = nil
	h.seen = make(map[Primitive]struct{})
}
