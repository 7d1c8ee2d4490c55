package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDevice struct {
	low, high uint16
	value     uint8
	writes    []uint16
}

func (d *fakeDevice) Read(addr uint16) (uint8, bool) {
	if addr < d.low || addr > d.high {
		return 0, false
	}
	return d.value, true
}

func (d *fakeDevice) Write(addr uint16, v uint8) {
	d.writes = append(d.writes, addr)
}

type fakeIRQ struct{ asserted bool }

func (d *fakeIRQ) Read(uint16) (uint8, bool) { return 0, false }
func (d *fakeIRQ) Write(uint16, uint8)       {}
func (d *fakeIRQ) IRQ() bool                 { return d.asserted }

func TestReadClaimsFirstMatchingDevice(t *testing.T) {
	b := New()
	first := &fakeDevice{low: 0x2000, high: 0x2007, value: 0xAA}
	second := &fakeDevice{low: 0x0000, high: 0xFFFF, value: 0xBB}
	b.Attach(first)
	b.Attach(second)

	assert.Equal(t, uint8(0xAA), b.Read(0x2000), "earlier-attached device must win")
	assert.Equal(t, uint8(0xBB), b.Read(0x4000), "unclaimed address falls through to the next device")
}

func TestReadOpenBusReturnsZero(t *testing.T) {
	b := New()
	b.Attach(&fakeDevice{low: 0x2000, high: 0x2007, value: 0xAA})
	assert.Equal(t, uint8(0), b.Read(0x9000))
}

func TestWriteBroadcastsToEveryDevice(t *testing.T) {
	b := New()
	a := &fakeDevice{low: 0x0000, high: 0xFFFF}
	c := &fakeDevice{low: 0x0000, high: 0xFFFF}
	b.Attach(a)
	b.Attach(c)

	b.Write(0x1234, 0x55)

	assert.Equal(t, []uint16{0x1234}, a.writes)
	assert.Equal(t, []uint16{0x1234}, c.writes)
}

func TestIRQIsORedAcrossSources(t *testing.T) {
	b := New()
	quiet := &fakeIRQ{asserted: false}
	loud := &fakeIRQ{asserted: true}
	b.Attach(quiet)
	assert.False(t, b.IRQ())

	b.Attach(loud)
	assert.True(t, b.IRQ())
}
