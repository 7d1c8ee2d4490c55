// Package console wires the CPU, PPU, APU, cartridge mapper, work RAM, and
// controller ports together and drives the master clock: the PPU ticks on
// every call, while the CPU and the APU's DMA controller only tick once
// every three (matching the PPU's 3x-faster dot clock).
package console

import (
	"gones/internal/apu"
	"gones/internal/bus"
	"gones/internal/cartridge"
	"gones/internal/cpu"
	"gones/internal/input"
	"gones/internal/memory"
	"gones/internal/ppu"
)

// Console owns every component of one emulated machine.
type Console struct {
	CPU   *cpu.CPU
	PPU   *ppu.PPU
	APU   *apu.APU
	Ports *input.Ports

	cart *cartridge.Cartridge
	nt   *ppu.Nametable

	tick uint8
}

// New returns a console with no cartridge loaded; call LoadCartridge before
// Clock.
func New() *Console {
	c := &Console{
		Ports: input.NewPorts(),
	}
	return c
}

// LoadCartridge replaces the currently loaded cartridge and rebuilds the bus
// fabric around it. Safe to call before the first Reset, or to swap carts
// between runs.
func (c *Console) LoadCartridge(cart *cartridge.Cartridge) {
	c.cart = cart
	c.nt = ppu.NewNametable(cart.Mirror())

	cpuBus := bus.New()
	wram := memory.New()
	videoBus := ppu.NewVideoBus(cart, c.nt)
	videoPPU := ppu.New(videoBus)

	cpuCore := cpu.New(cpuBus, cpu.VariantRP2A03)
	apuCore := apu.New(cpuBus, cpuCore.SetReady)

	videoPPU.NMI = cpuCore.NMI

	cpuBus.Attach(wram)
	cpuBus.Attach(videoPPU)
	cpuBus.Attach(c.Ports)
	cpuBus.Attach(apuCore)
	cpuBus.Attach(cart)

	c.CPU = cpuCore
	c.PPU = videoPPU
	c.APU = apuCore
	c.tick = 0
}

// Reset pulses the machine's reset line.
func (c *Console) Reset() {
	c.CPU.Reset()
	c.APU.Reset()
	c.PPU.Reset()
	c.tick = 0
}

// Clock advances the console by one PPU dot (one-third of a CPU cycle),
// returning whether this dot completed a video frame.
func (c *Console) Clock() bool {
	if c.tick == 0 {
		c.APU.Clock()
		c.CPU.Clock()
		c.cart.ClockCPU()
	}

	frameComplete := c.PPU.Clock()

	c.tick++
	if c.tick == 3 {
		c.tick = 0
	}

	return frameComplete
}

// RunFrame clocks the console until a full video frame has been produced.
func (c *Console) RunFrame() {
	for !c.Clock() {
	}
}
