package tui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// laneShift is how long the drawn player takes to slide between lanes.
// Collision always uses the logical lane; only the picture is eased.
const laneShift = 200 * time.Millisecond

// laneEase eases the drawn player x toward the logical lane offset.
type laneEase struct {
	tween  *gween.Tween
	x      float64
	target float64
	ready  bool
}

// retarget starts a new slide from the current drawn position when the
// target moved.
func (e *laneEase) retarget(target float64) {
	if !e.ready {
		e.snap(target)
		return
	}
	if target == e.target {
		return
	}
	e.target = target
	e.tween = gween.New(float32(e.x), float32(target), float32(laneShift.Seconds()), ease.OutQuad)
}

// advance moves the slide forward by dt.
func (e *laneEase) advance(dt time.Duration) {
	if e.tween == nil {
		return
	}
	x, done := e.tween.Update(float32(dt.Seconds()))
	e.x = float64(x)
	if done {
		e.x = e.target
		e.tween = nil
	}
}

// snap jumps straight to target, used on restart and resize.
func (e *laneEase) snap(target float64) {
	e.x, e.target, e.tween, e.ready = target, target, nil, true
}

// value returns the drawn x.
func (e *laneEase) value() float64 {
	return e.x
}
