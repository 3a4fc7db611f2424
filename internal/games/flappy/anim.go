package flappy

import "time"

// Loop is a linear animation from one value to another that restarts at its
// origin every cycle. It stays at the origin while its start delay runs and
// holds its current value once stopped.
type Loop struct {
	from, to float64
	duration time.Duration
	delay    time.Duration
	elapsed  time.Duration
	running  bool
}

// NewLoop creates a stopped loop resting at from.
func NewLoop(from, to float64, duration time.Duration) Loop {
	return Loop{from: from, to: to, duration: duration}
}

// Start rewinds the loop to its origin and runs it after delay.
func (l *Loop) Start(delay time.Duration) {
	l.delay = delay
	l.elapsed = 0
	l.running = true
}

// Stop freezes the loop at its current value.
func (l *Loop) Stop() {
	l.running = false
}

// Rewind stops the loop and puts it back at its origin.
func (l *Loop) Rewind() {
	l.running = false
	l.delay = 0
	l.elapsed = 0
}

// Running reports whether the loop is advancing.
func (l *Loop) Running() bool {
	return l.running
}

// Advance moves a running loop forward by dt.
func (l *Loop) Advance(dt time.Duration) {
	if !l.running || dt <= 0 {
		return
	}
	l.elapsed += dt
}

// Value returns the animated value.
func (l *Loop) Value() float64 {
	if l.elapsed <= l.delay || l.duration <= 0 {
		return l.from
	}
	phase := (l.elapsed - l.delay) % l.duration
	return l.from + (l.to-l.from)*float64(phase)/float64(l.duration)
}

// Fade moves a value linearly to a target after an optional delay. A new
// fade replaces the one in flight and starts from wherever the value is
// when its delay ends.
type Fade struct {
	value    float64
	from, to float64
	delay    time.Duration
	duration time.Duration
	elapsed  time.Duration
	active   bool
}

// Set jumps to v and cancels any fade in flight.
func (f *Fade) Set(v float64) {
	f.value = v
	f.active = false
}

// To schedules a fade to target over duration, starting after delay.
func (f *Fade) To(target float64, duration, delay time.Duration) {
	f.to = target
	f.duration = duration
	f.delay = delay
	f.elapsed = 0
	f.active = true
}

// Active reports whether a fade is scheduled or in progress.
func (f *Fade) Active() bool {
	return f.active
}

// Advance moves the fade forward by dt.
func (f *Fade) Advance(dt time.Duration) {
	if !f.active || dt <= 0 {
		return
	}
	before := f.elapsed
	f.elapsed += dt
	if f.elapsed <= f.delay {
		return
	}
	if before <= f.delay {
		f.from = f.value
	}
	run := f.elapsed - f.delay
	if f.duration <= 0 || run >= f.duration {
		f.value = f.to
		f.active = false
		return
	}
	f.value = f.from + (f.to-f.from)*float64(run)/float64(f.duration)
}

// Value returns the current value.
func (f *Fade) Value() float64 {
	return f.value
}
