// Package sequencer drives the timed boot, login, restart and shutdown
// screens from a duration table.
//
// A Runner is advanced by elapsed time from one repeating tick, so the whole
// sequence is cancelled by dropping that tick. Each step shows one message;
// after the last step the screen waits FadeDelay, fades for FadeDuration and
// is then done.
package sequencer

import "time"

// Step is one message and how long it stays on screen.
type Step struct {
	Message  string
	Duration time.Duration
}

// Sequence is an immutable timing table.
type Sequence struct {
	Name         string
	Banner       []string
	Steps        []Step
	FadeDelay    time.Duration
	FadeDuration time.Duration
	// BlinkEvery toggles the message cursor; zero disables blinking.
	BlinkEvery time.Duration
}

// Total returns the time the steps take, without the fade tail.
func (s Sequence) Total() time.Duration {
	var d time.Duration
	for _, st := range s.Steps {
		d += st.Duration
	}
	return d
}

// Length returns the time from start until the sequence is done.
func (s Sequence) Length() time.Duration {
	return s.Total() + s.FadeDelay + s.FadeDuration
}

// Runner tracks progress through one sequence.
type Runner struct {
	seq     Sequence
	elapsed time.Duration
}

// NewRunner starts seq at time zero.
func NewRunner(seq Sequence) *Runner {
	return &Runner{seq: seq}
}

// Sequence returns the table being run.
func (r *Runner) Sequence() Sequence {
	return r.seq
}

// Advance moves the runner forward by d and reports whether it is done.
// Negative durations are ignored.
func (r *Runner) Advance(d time.Duration) bool {
	if d > 0 {
		r.elapsed += d
	}
	return r.Done()
}

// Elapsed returns the time run so far.
func (r *Runner) Elapsed() time.Duration {
	return r.elapsed
}

// Index returns the step currently shown. After the last step it stays on
// the last one. It returns -1 for an empty sequence.
func (r *Runner) Index() int {
	if len(r.seq.Steps) == 0 {
		return -1
	}
	var at time.Duration
	for i, st := range r.seq.Steps {
		at += st.Duration
		if r.elapsed < at {
			return i
		}
	}
	return len(r.seq.Steps) - 1
}

// Message returns the message of the current step.
func (r *Runner) Message() string {
	i := r.Index()
	if i < 0 {
		return ""
	}
	return r.seq.Steps[i].Message
}

// Progress returns the fraction of steps completed, from 0 to 1.
func (r *Runner) Progress() float64 {
	total := r.seq.Total()
	if total <= 0 {
		return 1
	}
	p := float64(r.elapsed) / float64(total)
	if p > 1 {
		p = 1
	}
	return p
}

// Fading reports whether the fade tail has started.
func (r *Runner) Fading() bool {
	return r.elapsed >= r.seq.Total()+r.seq.FadeDelay
}

// Opacity returns 1 before the fade and falls linearly to 0 during it.
func (r *Runner) Opacity() float64 {
	if !r.Fading() {
		return 1
	}
	if r.seq.FadeDuration <= 0 {
		return 0
	}
	into := r.elapsed - r.seq.Total() - r.seq.FadeDelay
	o := 1 - float64(into)/float64(r.seq.FadeDuration)
	if o < 0 {
		o = 0
	}
	return o
}

// Done reports whether the sequence has finished.
func (r *Runner) Done() bool {
	return r.elapsed >= r.seq.Length()
}

// Blink reports whether the blinking cursor is in its visible phase.
func (r *Runner) Blink() bool {
	if r.seq.BlinkEvery <= 0 {
		return true
	}
	return (r.elapsed/r.seq.BlinkEvery)%2 == 0
}
