package viewer

import "time"

// fixedStep paces chain playback at a steady frames-per-second rate,
// independent of the host's actual draw rate.
type fixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// newFixedStep constructs a fixedStep controller targeting the given FPS.
func newFixedStep(fps int) *fixedStep {
	if fps <= 0 {
		fps = 8
	}
	fs := &fixedStep{step: time.Second / time.Duration(fps)}
	fs.accumulator = fs.step
	return fs
}

// shouldAdvance reports whether playback should advance by one frame.
func (f *fixedStep) shouldAdvance() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
