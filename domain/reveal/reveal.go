// Package reveal models one-shot enter transitions for page regions: each
// region fires the first time it becomes visible and never again.
//
// Pages register their regions with a Scheduler and render the timing it
// returns. In the browser, web/static/js/reveal.js does what
// Scheduler.Intersect does: the first intersecting signal marks a region
// data-revealed, later ones are ignored. Progress and FrameAt describe the
// same transition the stylesheet runs, with Duration and EaseOut.
package reveal

import (
	"errors"
	"time"
)

const (
	// Duration of every reveal transition.
	Duration = 600 * time.Millisecond
	// Offset is the starting downward shift in pixels.
	Offset = 50.0
	// ViewportMargin shrinks the viewport so regions fire once they are
	// well inside it.
	ViewportMargin = "-100px"
)

// ErrUnknownRegion is returned for intersection signals about regions that
// were never observed.
var ErrUnknownRegion = errors.New("reveal: unknown region")

// Entry is the reveal state of one region.
type Entry struct {
	ID       string
	Delay    time.Duration
	HasFired bool
	FiredAt  time.Time
}

// Frame is the visual state of a region.
type Frame struct {
	Opacity float64
	OffsetY float64
}

var (
	Hidden  = Frame{Opacity: 0, OffsetY: Offset}
	Visible = Frame{Opacity: 1, OffsetY: 0}
)

// Progress maps a region's state to eased transition progress in [0,1].
// elapsed is measured from the moment the region fired; the transition
// starts after delay and lasts Duration.
func Progress(hasFired bool, delay, elapsed time.Duration) float64 {
	if !hasFired {
		return 0
	}
	running := elapsed - delay
	if running <= 0 {
		return 0
	}
	if running >= Duration {
		return 1
	}
	return EaseOut.At(float64(running) / float64(Duration))
}

// FrameAt interpolates between Hidden and Visible.
func FrameAt(progress float64) Frame {
	return Frame{
		Opacity: Hidden.Opacity + (Visible.Opacity-Hidden.Opacity)*progress,
		OffsetY: Hidden.OffsetY + (Visible.OffsetY-Hidden.OffsetY)*progress,
	}
}

// FrameAt returns the entry's visual state at now.
func (e Entry) FrameAt(now time.Time) Frame {
	if !e.HasFired {
		return Hidden
	}
	return FrameAt(Progress(true, e.Delay, now.Sub(e.FiredAt)))
}

// Settled reports whether the entry's transition has completed at now.
func (e Entry) Settled(now time.Time) bool {
	return e.HasFired && now.Sub(e.FiredAt) >= e.Delay+Duration
}

// Stagger spaces siblings in a grid: the i-th sibling waits i steps.
func Stagger(index int, step time.Duration) time.Duration {
	if index <= 0 {
		return 0
	}
	return time.Duration(index) * step
}
