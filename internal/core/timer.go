package core

import "time"

// Unbounded asks FixedStep to run as many ticks as a frame allows.
const Unbounded = -1

const (
	// MaxBurst caps the ticks handed out per frame in unbounded mode.
	MaxBurst = 64
	// maxCatchUp caps the ticks handed out after a long stall at a fixed rate.
	maxCatchUp = 4
)

// FixedStep helps run game ticks at a steady ticks-per-second rate
// independent of the frame rate of the front end driving it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	unbounded   bool

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to Due or ShouldStep yields a tick immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Unbounded switches to burst mode; other
// non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps == Unbounded {
		f.unbounded = true
		return
	}
	if tps <= 0 {
		tps = 60
	}
	f.unbounded = false
	f.step = time.Second / time.Duration(tps)
}

// Unbounded reports whether the controller is in burst mode.
func (f *FixedStep) Unbounded() bool { return f.unbounded }

// ShouldStep reports whether the game should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	if f.unbounded {
		f.advance()
		return true
	}
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due returns how many ticks should run now.
func (f *FixedStep) Due() int {
	f.advance()
	if f.unbounded {
		f.accumulator = 0
		return MaxBurst
	}
	n := int(f.accumulator / f.step)
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}
