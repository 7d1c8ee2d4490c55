package cartridge

// core is embedded by every mapper. It owns the PRG-ROM/CHR memoryRegions,
// the 8KB PRG-RAM window (0x6000-0x7FFF), and the current mirror mode; each
// mapper only has to implement its own register-write side effects.
type core struct {
	prg    *memoryRegion // 0x8000-0xFFFF, addr-0x8000 indexes this region
	chr    *memoryRegion // 0x0000-0x1FFF
	prgRAM [0x2000]uint8
	mirror MirrorMode
}

func newCore(prgData, chrData []uint8, prgBankSize, chrBankSize int, chrWritable bool, mirror MirrorMode) core {
	return core{
		prg:    newMemoryRegion(prgData, prgBankSize, false),
		chr:    newMemoryRegion(chrData, chrBankSize, chrWritable),
		mirror: mirror,
	}
}

func (c *core) readPRGWindow(addr uint16) uint8 {
	if addr >= 0x6000 && addr < 0x8000 {
		return c.prgRAM[addr-0x6000]
	}
	if addr >= 0x8000 {
		return c.prg.read(int(addr - 0x8000))
	}
	return 0
}

func (c *core) writePRGRAM(addr uint16, v uint8) bool {
	if addr >= 0x6000 && addr < 0x8000 {
		c.prgRAM[addr-0x6000] = v
		return true
	}
	return false
}

func (c *core) readCHR(addr uint16) uint8 {
	return c.chr.read(int(addr & 0x1FFF))
}

func (c *core) writeCHR(addr uint16, v uint8) {
	c.chr.write(int(addr&0x1FFF), v)
}

func (c *core) Mirror() MirrorMode { return c.mirror }

// ClockA12 and IRQ default to the common case (no scanline counter); mappers
// that implement MMC3-style counters override both via the embedding type.
// ClockCPU defaults to a no-op; mmc1 overrides it to track write timing.
func (c *core) ClockA12(addr uint16) {}
func (c *core) ClockCPU()            {}
func (c *core) IRQ() bool            { return false }

func (c *core) SaveRAM() []uint8 {
	return c.prgRAM[:]
}
