package graphics

import "gones/internal/console"

// RunHeadless clocks c for n frames with no presentation surface attached,
// discarding pixel output. Useful for test-ROM automation and benchmarking
// where no display is wanted.
func RunHeadless(c *console.Console, frames int) {
	c.PPU.PlotPixel = func(x, y uint16, r, g, b uint8) {}
	for i := 0; i < frames; i++ {
		c.RunFrame()
	}
}
