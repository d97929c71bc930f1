package willowui

import (
	"math"

	"github.com/tanema/gween/ease"
)

// NoPause is the pause-at value of an animation that runs until stopped.
var NoPause = math.Inf(1)

// AnimationController is the play/pause/progress primitive behind every
// transition. Progress is measured in ticks and advances by speed*dt while
// playing. Crossing the pause-at tick pauses the controller and fires the
// finished callback exactly once per crossing.
//
// In loop mode (SetLoop) the controller never pauses by itself; it fires the
// callback every time progress crosses the end of a cycle and the callback
// calls ResetProgress to start the next one.
//
// Controllers do not advance themselves. A Runtime calls Advance once per
// frame for every registered controller.
type AnimationController struct {
	progress float64
	pauseAt  float64
	speed    float64
	paused   bool
	finished bool
	cycle    float64

	onFinished func()
	onAdvance  func()
}

// NewAnimationController returns a paused controller at progress 0.
func NewAnimationController() *AnimationController {
	return &AnimationController{
		pauseAt: NoPause,
		speed:   1,
		paused:  true,
	}
}

// OnFinished sets the callback fired when the controller crosses its pause-at
// tick or, in loop mode, the end of a cycle.
func (c *AnimationController) OnFinished(fn func()) {
	c.onFinished = fn
}

// OnAdvance sets the callback fired after every Advance that moved progress.
func (c *AnimationController) OnAdvance(fn func()) {
	c.onAdvance = fn
}

// Play resumes advancing.
func (c *AnimationController) Play() {
	c.paused = false
}

// Pause stops advancing without touching progress.
func (c *AnimationController) Pause() {
	c.paused = true
}

// Stop pauses the controller and leaves loop mode.
func (c *AnimationController) Stop() {
	c.paused = true
	c.cycle = 0
}

// SetSpeed sets the signed progress rate in ticks per tick.
func (c *AnimationController) SetSpeed(s float64) {
	c.speed = s
}

// Speed returns the signed progress rate.
func (c *AnimationController) Speed() float64 {
	return c.speed
}

// SetPauseAt sets the tick at which the controller pauses. NoPause disables it.
func (c *AnimationController) SetPauseAt(tick float64) {
	c.pauseAt = tick
}

// PauseAt returns the pause-at tick.
func (c *AnimationController) PauseAt() float64 {
	return c.pauseAt
}

// SetLoop switches the controller into loop mode with the given cycle length
// in ticks. A cycle of 0 leaves loop mode.
func (c *AnimationController) SetLoop(cycle float64) {
	if cycle < 0 {
		cycle = 0
	}
	c.cycle = cycle
}

// Looping reports whether the controller is in loop mode.
func (c *AnimationController) Looping() bool {
	return c.cycle > 0
}

// ResetProgress moves progress back to the start of the current playback:
// 0 when playing forward, the cycle end when looping backward.
func (c *AnimationController) ResetProgress() {
	if c.cycle > 0 && c.speed < 0 {
		c.progress = c.cycle
		return
	}
	c.progress = 0
}

// SetProgress places progress at tick without firing callbacks.
func (c *AnimationController) SetProgress(tick float64) {
	c.progress = tick
}

// ClearFinishedFlag re-arms the finished callback for the next crossing.
func (c *AnimationController) ClearFinishedFlag() {
	c.finished = false
}

// Finished reports whether the finished callback fired since the flag was
// last cleared.
func (c *AnimationController) Finished() bool {
	return c.finished
}

// Progress returns the current progress in ticks.
func (c *AnimationController) Progress() float64 {
	return c.progress
}

// IsPaused reports whether the controller is paused.
func (c *AnimationController) IsPaused() bool {
	return c.paused
}

// Advance moves progress by speed*dt. It is a no-op while paused.
func (c *AnimationController) Advance(dt float64) {
	if c.paused || dt <= 0 || c.speed == 0 {
		return
	}
	prev := c.progress
	c.progress += c.speed * dt

	if c.cycle > 0 {
		c.advanceLoop(prev)
		return
	}

	crossed := false
	if c.speed > 0 && prev < c.pauseAt && c.progress >= c.pauseAt {
		crossed = true
	} else if c.speed < 0 && prev > c.pauseAt && c.progress <= c.pauseAt {
		crossed = true
	}
	if !crossed {
		c.notifyAdvance()
		return
	}

	c.progress = c.pauseAt
	c.paused = true
	c.notifyAdvance()
	if !c.finished {
		c.finished = true
		if c.onFinished != nil {
			c.onFinished()
		}
	}
}

// advanceLoop fires the callback when progress leaves [0, cycle]. The
// callback is expected to reset progress; if it does not, progress is
// wrapped so the next cycle crossing is still detected.
func (c *AnimationController) advanceLoop(prev float64) {
	c.notifyAdvance()
	var crossed bool
	if c.speed > 0 {
		crossed = prev < c.cycle && c.progress >= c.cycle
	} else {
		crossed = prev > 0 && c.progress <= 0
	}
	if !crossed {
		return
	}
	before := c.progress
	c.finished = true
	if c.onFinished != nil {
		c.onFinished()
	}
	if c.progress == before {
		c.progress = math.Mod(c.progress, c.cycle)
		if c.progress < 0 {
			c.progress += c.cycle
		}
	}
}

func (c *AnimationController) notifyAdvance() {
	if c.onAdvance != nil {
		c.onAdvance()
	}
}

// Fraction maps progress into [0, 1] over span ticks through the easing
// function. A nil fn is linear. A non-positive span yields 1.
func (c *AnimationController) Fraction(span float64, fn ease.TweenFunc) float64 {
	if span <= 0 {
		return 1
	}
	t := clamp01(c.progress / span)
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}
