package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gones/internal/bus"
)

// flatRAM is a 64KB bus.Device covering the whole address space, used to
// drive the CPU in isolation without a real cartridge/PPU/APU stack.
type flatRAM struct {
	data [0x10000]uint8
}

func (r *flatRAM) Read(addr uint16) (uint8, bool) { return r.data[addr], true }
func (r *flatRAM) Write(addr uint16, v uint8)      { r.data[addr] = v }

// newTestBus wires a single device onto a fresh bus, for tests that need
// to construct their own CPU (e.g. with a non-default Variant).
func newTestBus(dev bus.Device) *bus.Bus {
	b := bus.New()
	b.Attach(dev)
	return b
}

func newTestCPU(program map[uint16]uint8, resetVector uint16) (*CPU, *flatRAM) {
	ram := &flatRAM{}
	for addr, v := range program {
		ram.data[addr] = v
	}
	ram.data[0xFFFC] = uint8(resetVector)
	ram.data[0xFFFD] = uint8(resetVector >> 8)

	c := New(newTestBus(ram), VariantRP2A03)
	// the reset sequence takes exactly 7 cycles; stop right as it lands PC
	// from the vector, before the first post-reset opcode is fetched.
	for i := 0; i < 7; i++ {
		c.Clock()
	}
	return c, ram
}

func TestResetLoadsVectorAndInitialState(t *testing.T) {
	c, _ := newTestCPU(nil, 0xC000)
	assert.Equal(t, uint16(0xC000), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.True(t, c.flag(FlagInterruptDisable))
}

func TestLDAImmediateSetsAccumulatorAndFlags(t *testing.T) {
	c, _ := newTestCPU(map[uint16]uint8{
		0xC000: 0xA9, 0xC001: 0x00, // LDA #$00
	}, 0xC000)

	// LDA #imm takes 2 cycles; clock through it and the next opcode fetch.
	for i := 0; i < 3; i++ {
		c.Clock()
	}

	assert.Equal(t, uint8(0x00), c.A)
	assert.True(t, c.flag(FlagZero))
	assert.False(t, c.flag(FlagNegative))
}

func TestLDASTARoundTripThroughRAM(t *testing.T) {
	c, ram := newTestCPU(map[uint16]uint8{
		0xC000: 0xA9, 0xC001: 0x42, // LDA #$42
		0xC002: 0x85, 0xC003: 0x10, // STA $10
	}, 0xC000)

	// clock enough cycles for both two-byte instructions (2 cycles + 3
	// cycles) plus the following opcode fetch.
	for i := 0; i < 6; i++ {
		c.Clock()
	}

	require.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint8(0x42), ram.data[0x10])
}

func TestNMIIsEdgeTriggeredNotLevelTriggered(t *testing.T) {
	c, _ := newTestCPU(nil, 0xC000)
	c.NMI()
	assert.True(t, c.nmiPending)
	c.NMI()
	assert.True(t, c.nmiPending, "a second NMI call before service must not clear the pending flag early")
}

func TestSetReadyStallsClock(t *testing.T) {
	c, _ := newTestCPU(map[uint16]uint8{0xC000: 0xEA}, 0xC000) // NOP
	c.SetReady(false)
	pcBefore := c.PC
	for i := 0; i < 4; i++ {
		c.Clock()
	}
	assert.Equal(t, pcBefore, c.PC, "clocking while !ready must not advance the CPU")
}
