package cartridge

// namcot108 implements mapper 206: the MMC3 bank-select mechanism (a
// selected-register byte at even addresses, data at odd addresses) without
// the scanline IRQ counter or the PRG/CHR mode-swap bits.
type namcot108 struct {
	core
	bankSelect uint8
	regs       [8]uint8
}

func newNamcot108(prg, chr []uint8, mirror MirrorMode, chrIsRAM bool) *namcot108 {
	m := &namcot108{core: newCore(prg, chr, 0x2000, 0x0400, chrIsRAM, mirror)}
	m.prg.setPage(2, -2)
	m.prg.setPage(3, -1)
	return m
}

func (m *namcot108) ReadPRG(addr uint16) uint8 { return m.readPRGWindow(addr) }

func (m *namcot108) WritePRG(addr uint16, v uint8) {
	if m.writePRGRAM(addr, v) {
		return
	}
	if addr < 0x8000 {
		return
	}
	switch addr & 0xE001 {
	case 0x8000:
		m.bankSelect = v & 0x07
	case 0x8001:
		m.regs[m.bankSelect] = v
		m.applyBanks()
	}
}

func (m *namcot108) applyBanks() {
	r0 := int(m.regs[0]) &^ 1
	r1 := int(m.regs[1]) &^ 1
	m.chr.setPage(0, r0)
	m.chr.setPage(1, r0+1)
	m.chr.setPage(2, r1)
	m.chr.setPage(3, r1+1)
	m.chr.setPage(4, int(m.regs[2]))
	m.chr.setPage(5, int(m.regs[3]))
	m.chr.setPage(6, int(m.regs[4]))
	m.chr.setPage(7, int(m.regs[5]))
	m.prg.setPage(0, int(m.regs[6]))
	m.prg.setPage(1, int(m.regs[7]))
}

func (m *namcot108) ReadCHR(addr uint16) uint8     { return m.readCHR(addr) }
func (m *namcot108) WriteCHR(addr uint16, v uint8) { m.writeCHR(addr, v) }
