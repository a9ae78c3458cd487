package scrolldeck

// Synthetic input mirrors real device input one update at a time: each queued
// delta is consumed by exactly one Update call, and real device input is
// skipped on updates that consume a synthetic event. Used by the scripted
// driver and by tests.

// InjectScroll queues a raw section-unit delta. Positive is forward.
func (c *Carousel) InjectScroll(delta float64) {
	c.injectQueue = append(c.injectQueue, delta)
}

// InjectWheel queues one wheel movement of the given number of notches.
// Positive notches scroll forward (down-page).
func (c *Carousel) InjectWheel(notches float64) {
	c.InjectScroll(notches * wheelNotchDelta)
}

// InjectKeyStep queues one keyboard step in the given direction.
func (c *Carousel) InjectKeyStep(dir Direction) {
	c.InjectScroll(float64(dir) * keyStepDelta)
}

// InjectSwipe queues a vertical drag of the given length in pixels, spread
// linearly over the given number of updates (minimum 1). Positive pixels
// drag up, which moves forward through the sections.
func (c *Carousel) InjectSwipe(pixels float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	per := pixels / dragFullSection / float64(frames)
	for i := 0; i < frames; i++ {
		c.InjectScroll(per)
	}
}

// consumeInput pops one synthetic delta if any are queued, otherwise polls
// the real devices.
func (c *Carousel) consumeInput() float64 {
	if len(c.injectQueue) > 0 {
		d := c.injectQueue[0]
		copy(c.injectQueue, c.injectQueue[1:])
		c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
		return d
	}
	return c.input.readDelta()
}

// discardInjected drops one queued synthetic delta. While the carousel is
// not locked the page owns scrolling, so synthetic input is dropped the way
// real input is ignored; it must not accumulate and leak into a later
// locked update.
func (c *Carousel) discardInjected() {
	if len(c.injectQueue) > 0 {
		c.injectQueue = c.injectQueue[:copy(c.injectQueue, c.injectQueue[1:])]
	}
}
