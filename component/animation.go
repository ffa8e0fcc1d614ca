package component

// DefaultFrameIntervalMs is the time each animation frame stays on screen.
const DefaultFrameIntervalMs = 80.0

// FrameClock steps a looping animation by elapsed milliseconds. Time that
// has not yet filled a whole interval is carried over to the next call.
type FrameClock struct {
	FrameCount int
	IntervalMs float64

	current     int
	accumulated float64
}

// NewFrameClock creates a clock over frameCount frames. intervalMs defaults
// to DefaultFrameIntervalMs if <= 0.
func NewFrameClock(frameCount int, intervalMs float64) *FrameClock {
	if intervalMs <= 0 {
		intervalMs = DefaultFrameIntervalMs
	}
	return &FrameClock{FrameCount: frameCount, IntervalMs: intervalMs}
}

// Advance adds dtMs to the clock and returns how many frames were stepped.
// A frame only steps once the accumulated time strictly exceeds the interval.
func (c *FrameClock) Advance(dtMs float64) int {
	if c == nil || c.FrameCount <= 0 {
		return 0
	}
	c.accumulated += dtMs
	steps := 0
	for c.accumulated > c.IntervalMs {
		c.current = (c.current + 1) % c.FrameCount
		c.accumulated -= c.IntervalMs
		steps++
	}
	return steps
}

// Frame returns the current frame index.
func (c *FrameClock) Frame() int {
	if c == nil {
		return 0
	}
	return c.current
}

// Accumulated returns the time carried toward the next frame.
func (c *FrameClock) Accumulated() float64 {
	if c == nil {
		return 0
	}
	return c.accumulated
}

// Reset sets the clock back to the first frame.
func (c *FrameClock) Reset() {
	if c == nil {
		return
	}
	c.current = 0
	c.accumulated = 0
}
