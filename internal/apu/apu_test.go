package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gones/internal/bus"
)

// oamSink records every write to $2004, standing in for the PPU's OAMDATA
// register during DMA tests.
type oamSink struct{ writes []uint8 }

func (s *oamSink) Read(addr uint16) (uint8, bool) {
	if addr != 0x2004 {
		return 0, false
	}
	return 0, true
}

func (s *oamSink) Write(addr uint16, v uint8) {
	if addr == 0x2004 {
		s.writes = append(s.writes, v)
	}
}

type sourcePage struct{ page [256]uint8 }

func (p *sourcePage) Read(addr uint16) (uint8, bool) {
	if addr>>8 != 0x03 {
		return 0, false
	}
	return p.page[addr&0xFF], true
}
func (p *sourcePage) Write(uint16, uint8) {}

// runOAMDMA attaches a source page and OAM sink, requests a DMA with the
// APU's readCycle latch pre-set to readCycleBeforeWrite, and returns the
// exact number of Clock calls it took to return to dmaIdle plus the write
// log. Clock flips readCycle before stepping, so false means the first
// Clock after the write already starts the transfer; true means one extra
// cycle is spent aligning first.
func runOAMDMA(t *testing.T, readCycleBeforeWrite bool) (cycles int, sink *oamSink) {
	t.Helper()
	b := bus.New()
	sink = &oamSink{}
	src := &sourcePage{}
	for i := range src.page {
		src.page[i] = uint8(i)
	}
	b.Attach(sink)
	b.Attach(src)

	var readyLog []bool
	a := New(b, func(ready bool) { readyLog = append(readyLog, ready) })
	a.readCycle = readCycleBeforeWrite
	a.Write(0x4014, 0x03) // page $03
	require.Equal(t, dmaRequested, a.dma)

	for cycles = 0; a.dma != dmaIdle; cycles++ {
		require.LessOrEqual(t, cycles, 600, "DMA never completed")
		a.Clock()
	}

	require.Len(t, sink.writes, 256)
	assert.Equal(t, uint8(0), sink.writes[0])
	assert.Equal(t, uint8(255), sink.writes[255])
	assert.Contains(t, readyLog, false, "CPU must be stalled for the duration of the transfer")
	assert.Equal(t, false, readyLog[0])
	assert.Equal(t, true, readyLog[len(readyLog)-1])
	return cycles, sink
}

// TestOAMDMATransfers256BytesInPageOrder is scenario 6: OAMDMA costs exactly
// 513 CPU cycles when requested from an already-aligned read cycle, 514
// when requested one cycle out of alignment.
func TestOAMDMATransfers256BytesInPageOrder(t *testing.T) {
	aligned, _ := runOAMDMA(t, false)
	assert.Equal(t, 513, aligned, "DMA from an aligned read cycle must take exactly 513 cycles")

	misaligned, _ := runOAMDMA(t, true)
	assert.Equal(t, 514, misaligned, "DMA from a misaligned cycle must take exactly 514 cycles")
}

func TestIRQIsORofFrameAndDMCLines(t *testing.T) {
	a := New(bus.New(), func(bool) {})
	assert.False(t, a.IRQ())
	a.SetFrameIRQ(true)
	assert.True(t, a.IRQ())
	a.SetFrameIRQ(false)
	a.SetDMCIRQ(true)
	assert.True(t, a.IRQ())
}

func TestResetClearsDMAAndIRQState(t *testing.T) {
	a := New(bus.New(), func(bool) {})
	a.dma = dmaExecuting
	a.frameIRQ = true
	a.Reset()
	assert.Equal(t, dmaIdle, a.dma)
	assert.False(t, a.IRQ())
}
