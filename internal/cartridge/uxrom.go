package cartridge

// uxrom implements mapper 2 (and, with invert set, mapper 180/UxROM-invert).
// One 16KB PRG window is bank-switched by writes anywhere in $8000-$FFFF;
// the other is fixed. UxROM fixes the high window to the last bank and
// switches the low one; UxROMInvert fixes the low window to bank 0 and
// switches the high one.
type uxrom struct {
	core
	invert bool
}

func newUxROM(prg, chr []uint8, mirror MirrorMode, chrIsRAM, invert bool) *uxrom {
	m := &uxrom{core: newCore(prg, chr, 0x4000, 0x2000, chrIsRAM, mirror), invert: invert}
	m.chr.setPage(0, 0)
	if invert {
		m.prg.setPage(0, 0)
		m.prg.setPage(1, 0)
	} else {
		m.prg.setPage(0, 0)
		m.prg.setPage(1, -1)
	}
	return m
}

func (m *uxrom) ReadPRG(addr uint16) uint8 { return m.readPRGWindow(addr) }

func (m *uxrom) WritePRG(addr uint16, v uint8) {
	if m.writePRGRAM(addr, v) {
		return
	}
	if addr < 0x8000 {
		return
	}
	bank := int(v & 0x0F)
	if m.invert {
		m.prg.setPage(1, bank)
	} else {
		m.prg.setPage(0, bank)
	}
}

func (m *uxrom) ReadCHR(addr uint16) uint8     { return m.readCHR(addr) }
func (m *uxrom) WriteCHR(addr uint16, v uint8) { m.writeCHR(addr, v) }
