package record

import "time"

// Plan defaults for batch dataset recording.
const (
	DefaultDuration  = 3 * time.Second
	DefaultCountdown = 3 * time.Second
	DefaultAttempts  = 3
	// MinFrames is the hard floor below which a recording is discarded.
	MinFrames = 20
)

// Plan describes one recording pass: how long each take runs, how long
// the signer gets to prepare, and how many takes per gesture.
type Plan struct {
	Duration  time.Duration
	Countdown time.Duration
	Attempts  int
}

// DefaultPlan returns the standard 3-second, 3-attempt plan.
func DefaultPlan() Plan {
	return Plan{
		Duration:  DefaultDuration,
		Countdown: DefaultCountdown,
		Attempts:  DefaultAttempts,
	}
}

// TotalRecordings returns the number of takes a full catalog pass
// produces under this plan.
func (p Plan) TotalRecordings() int {
	return TotalGestures() * p.Attempts
}

// EstimatedTime approximates a full catalog pass, including the
// countdown and a short pause between takes.
func (p Plan) EstimatedTime() time.Duration {
	perTake := p.Duration + p.Countdown + 5*time.Second
	return time.Duration(p.TotalRecordings()) * perTake
}
