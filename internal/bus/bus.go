// Package bus implements the address-routing fabric that connects the CPU,
// PPU, APU and cartridge mapper together.
package bus

// Device is a single bus-addressable component. Read reports ok=false when
// the device does not claim the given address, letting the Bus fall through
// to the next device. Write is broadcast to every device; a device that does
// not own the address is expected to ignore it.
type Device interface {
	Read(addr uint16) (value uint8, ok bool)
	Write(addr uint16, value uint8)
}

// IRQSource is implemented by devices that can assert the shared IRQ line
// (the cartridge mapper's scanline counter, the APU's frame counter and DMC
// channel). The bus ORs every source together each time the CPU samples IRQ.
type IRQSource interface {
	IRQ() bool
}

// Bus is an ordered device registry. Reads are resolved first-claim-wins in
// registration order; writes are broadcast to every registered device.
type Bus struct {
	devices []Device
	irqs    []IRQSource
}

// New returns an empty bus with no attached devices.
func New() *Bus {
	return &Bus{}
}

// Attach registers a device. Registration order determines read priority:
// devices attached earlier claim an address before devices attached later.
func (b *Bus) Attach(d Device) {
	b.devices = append(b.devices, d)
	if irq, ok := d.(IRQSource); ok {
		b.irqs = append(b.irqs, irq)
	}
}

// Read returns the value from the first attached device that claims addr,
// or 0 if no device claims it (open bus).
func (b *Bus) Read(addr uint16) uint8 {
	for _, d := range b.devices {
		if v, ok := d.Read(addr); ok {
			return v
		}
	}
	return 0
}

// Write broadcasts value to every attached device at addr.
func (b *Bus) Write(addr uint16, value uint8) {
	for _, d := range b.devices {
		d.Write(addr, value)
	}
}

// IRQ reports the OR of every attached IRQSource's current level.
func (b *Bus) IRQ() bool {
	for _, s := range b.irqs {
		if s.IRQ() {
			return true
		}
	}
	return false
}
