package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gones/internal/cartridge"
)

// flatMapper is a minimal cartridge.Mapper backed by plain CHR RAM, enough
// to drive the PPU in isolation.
type flatMapper struct {
	chr    [0x2000]uint8
	mirror cartridge.MirrorMode
}

func (m *flatMapper) ReadPRG(uint16) uint8          { return 0 }
func (m *flatMapper) WritePRG(uint16, uint8)        {}
func (m *flatMapper) ReadCHR(addr uint16) uint8     { return m.chr[addr&0x1FFF] }
func (m *flatMapper) WriteCHR(addr uint16, v uint8) { m.chr[addr&0x1FFF] = v }
func (m *flatMapper) Mirror() cartridge.MirrorMode  { return m.mirror }
func (m *flatMapper) ClockA12(uint16)               {}
func (m *flatMapper) ClockCPU()                     {}
func (m *flatMapper) IRQ() bool                     { return false }

func newTestPPU() *PPU {
	mapper := &flatMapper{mirror: cartridge.MirrorVertical}
	nt := NewNametable(mapper.mirror)
	return New(NewVideoBus(mapper, nt))
}

func TestPaletteMirrorsBackdropEntries(t *testing.T) {
	p := newTestPPU()
	p.resetting = false
	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0x16) // writes $3F00

	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x10) // $3F10 mirrors $3F00
	p.WriteRegister(0x2007, 0x0B)

	assert.Equal(t, uint8(0x0B), p.readPalette(0x3F00), "writing the mirrored backdrop entry must update the base slot")
}

func TestStatusReadClearsVBlankAndWriteToggle(t *testing.T) {
	p := newTestPPU()
	p.status |= uint8(StatusVerticalBlank)
	p.writeToggle = true

	v := p.ReadRegister(0x2002)
	assert.NotZero(t, v&uint8(StatusVerticalBlank), "the read itself still reports the set flag")
	assert.False(t, p.writeToggle)
	assert.Zero(t, p.status&uint8(StatusVerticalBlank), "VBlank clears as a side effect of the $2002 read")
}

func TestOAMDATAIncrementsAddressOnWrite(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(0x2003, 0x05)
	p.WriteRegister(0x2004, 0xAB)
	assert.Equal(t, uint8(0x06), p.primaryOAM.addr)
	assert.Equal(t, uint8(0xAB), p.primaryOAM.table[0x05])
}

func TestClockProducesOneFrameEvery341By262Dots(t *testing.T) {
	p := newTestPPU()
	dots := 0
	for !p.Clock() {
		dots++
		require.Less(t, dots, 341*263, "frame should complete well within one pre-render-skip-adjusted frame")
	}
	// 341 dots/scanline * 262 scanlines, minus the one dot already
	// consumed by the Clock() call that returned true.
	assert.Equal(t, 341*262-1, dots)
}

// TestSpriteZeroHitFiresOnFirstOpaqueOverlap is scenario 5: one opaque
// background tile (CHR filled solid so every tile is opaque) and sprite 0
// placed at screen column x=10, OAM row y=49 so it starts rendering on
// scanline 50. The hit flag must stay clear through the end of scanline 49
// and become set once rendering reaches sprite 0's column on scanline 50.
func TestSpriteZeroHitFiresOnFirstOpaqueOverlap(t *testing.T) {
	mapper := &flatMapper{mirror: cartridge.MirrorVertical}
	for i := range mapper.chr {
		mapper.chr[i] = 0xFF // every tile, every plane: fully opaque
	}
	nt := NewNametable(mapper.mirror)
	p := New(NewVideoBus(mapper, nt))
	p.mask = uint8(MaskShowBG | MaskShowSprites | MaskShowLeft8BG | MaskShowLeft8Sprites)

	// sprite 0: Y=49 (so it's in sprite evaluation's range for scanline 49,
	// latching it for rendering on scanline 50), tile 0, no flips, X=10.
	p.primaryOAM.table[0] = 49
	p.primaryOAM.table[1] = 0
	p.primaryOAM.table[2] = 0
	p.primaryOAM.table[3] = 10

	// clock through the pre-render line, scanlines 0-48, and scanline 49 in
	// full: (scanline+1)*341+tick dots elapse to reach (49, 340).
	const dotsToEndOfScanline49 = 50*341 + 340
	for i := 0; i < dotsToEndOfScanline49; i++ {
		p.Clock()
	}
	assert.Zero(t, p.status&uint8(StatusSprite0Hit), "sprite 0 has not rendered yet; the hit flag must still be clear")

	// 12 more dots reaches (50, 11): the Clock call that rendered column 10
	// (where sprite 0's 8-pixel span begins) has just completed.
	for i := 0; i < 12; i++ {
		p.Clock()
	}
	assert.NotZero(t, p.status&uint8(StatusSprite0Hit), "sprite 0 and the background are both opaque at its column; the hit flag must now be set")
}

func TestNMIFiresOnceOnVBlankRisingEdge(t *testing.T) {
	p := newTestPPU()
	// dots 0 and 1 clear the power-on VBlank bit the constructor sets;
	// only after that does the signal settle into its normal per-frame
	// rising edge at (scanline=241, tick=1).
	p.Clock()
	p.Clock()

	calls := 0
	p.NMI = func() { calls++ }
	p.ctrlHigh = uint8(CtrlNMIEnabled)

	for i := 0; i < 341*262; i++ {
		p.Clock()
	}
	assert.Equal(t, 1, calls, "NMI must fire exactly once per VBlank entry, not once per dot")
}
