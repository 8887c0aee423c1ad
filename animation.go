package statsview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultDuration is the length of the reveal animation in seconds.
const DefaultDuration float32 = 2

// Animator drives chart progress from 0 to 1 over a fixed duration. It is
// one-shot: once finished or cancelled it never changes progress again.
// Call Update(dt) each frame.
//
// There is no global clock; the host decides when to tick.
type Animator struct {
	tween     *gween.Tween
	progress  float64
	done      bool
	cancelled bool
}

// NewAnimator creates an animator that runs for duration seconds using the
// easing function. A nil fn means ease.Linear; a non-positive duration uses
// DefaultDuration.
func NewAnimator(duration float32, fn ease.TweenFunc) *Animator {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Animator{tween: gween.New(0, 1, duration, fn)}
}

// Update advances the animation by dt seconds and returns the new progress
// and whether the animation has finished. Progress is exactly 1 on the
// frame the animation finishes.
func (a *Animator) Update(dt float32) (progress float64, done bool) {
	if a.done || a.cancelled {
		return a.progress, a.done
	}
	val, finished := a.tween.Update(dt)
	a.progress = clamp01(float64(val))
	if finished {
		a.progress = 1
		a.done = true
	}
	return a.progress, a.done
}

// Progress returns the most recent progress value.
func (a *Animator) Progress() float64 {
	return a.progress
}

// Done reports whether the animation ran to completion.
func (a *Animator) Done() bool {
	return a.done
}

// Cancel stops the animation where it is. Further Update calls are no-ops.
func (a *Animator) Cancel() {
	a.cancelled = true
}

// Active reports whether Update would still advance progress.
func (a *Animator) Active() bool {
	return !a.done && !a.cancelled
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
