package core

import "math"

// Timer is a frame-counted countdown. The counter saturates instead of wrapping.
type Timer struct {
	threshold uint8
	counter   uint8
}

// NewTimer creates a timer that becomes due after threshold ticks.
func NewTimer(threshold uint8) Timer {
	return Timer{threshold: threshold}
}

// InfiniteTimer creates a timer that never fires by ticking alone; only SetDue fires it.
func InfiniteTimer() Timer {
	return NewTimer(math.MaxUint8)
}

// StartAt returns a copy of the timer with its counter preset.
func (t Timer) StartAt(count uint8) Timer {
	t.counter = count
	return t
}

// Count returns the current counter value.
func (t Timer) Count() uint8 {
	return t.counter
}

// Threshold returns the configured delay.
func (t Timer) Threshold() uint8 {
	return t.threshold
}

// Tick increments the counter by one.
func (t *Timer) Tick() {
	if t.counter < math.MaxUint8 {
		t.counter++
	}
}

// IsDue reports whether the counter reached the threshold.
func (t Timer) IsDue() bool {
	return t.counter >= t.threshold
}

// SetDue forces the timer to fire.
func (t *Timer) SetDue() {
	t.counter = math.MaxUint8
}

// Reset starts the interval over.
func (t *Timer) Reset() {
	t.counter = 0
}

// Step ticks once; if the timer is then due it resets and returns true.
func (t *Timer) Step() bool {
	t.Tick()
	if t.IsDue() {
		t.Reset()
		return true
	}
	return false
}
