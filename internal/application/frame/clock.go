// Package frame paces the game loop to a fixed frame interval and counts
// frames per second.
package frame

import "time"

// Frame describes one accepted frame
type Frame struct {
	// Elapsed is the time since the previous accepted frame, in seconds
	Elapsed float64
	// FPS is the number of frames counted since the last report.
	// It is zero unless a report is due on this frame.
	FPS int
}

// Clock gates frames to a minimum interval
type Clock struct {
	interval time.Duration
	report   time.Duration
	now      func() time.Time

	before     time.Time
	lastReport time.Time
	frames     int
}

// NewClock creates a clock for fps frames per second that reports every report
func NewClock(fps int, report time.Duration) *Clock {
	return NewClockWithSource(fps, report, time.Now)
}

// NewClockWithSource creates a clock reading time from now
func NewClockWithSource(fps int, report time.Duration, now func() time.Time) *Clock {
	if fps <= 0 {
		fps = 60
	}
	start := now()
	return &Clock{
		// whole milliseconds: 16ms at 60 fps
		interval:   time.Duration(1000/fps) * time.Millisecond,
		report:     report,
		now:        now,
		before:     start,
		lastReport: start,
	}
}

// Interval returns the minimum time between frames
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Tick accepts a frame if at least one interval has passed since the last one.
// It returns false when the frame should be skipped.
func (c *Clock) Tick() (Frame, bool) {
	now := c.now()
	dt := now.Sub(c.before)
	if dt < c.interval {
		return Frame{}, false
	}

	c.before = now
	c.frames++

	f := Frame{Elapsed: dt.Seconds()}
	if now.Sub(c.lastReport) > c.report {
		f.FPS = c.frames
		c.lastReport = now
		c.frames = 0
	}
	return f, true
}
