package cartridge

// colorDreams implements mapper 11: one combined register write selects
// both the 32KB PRG bank (low bits) and the 8KB CHR bank (high nibble).
type colorDreams struct {
	core
}

func newColorDreams(prg, chr []uint8, mirror MirrorMode, chrIsRAM bool) *colorDreams {
	m := &colorDreams{core: newCore(prg, chr, 0x8000, 0x2000, chrIsRAM, mirror)}
	m.prg.setPage(0, 0)
	m.chr.setPage(0, 0)
	return m
}

func (m *colorDreams) ReadPRG(addr uint16) uint8 { return m.readPRGWindow(addr) }

func (m *colorDreams) WritePRG(addr uint16, v uint8) {
	if m.writePRGRAM(addr, v) {
		return
	}
	if addr < 0x8000 {
		return
	}
	m.prg.setPage(0, int(v&0x03))
	m.chr.setPage(0, int(v>>4))
}

func (m *colorDreams) ReadCHR(addr uint16) uint8     { return m.readCHR(addr) }
func (m *colorDreams) WriteCHR(addr uint16, v uint8) { m.writeCHR(addr, v) }
