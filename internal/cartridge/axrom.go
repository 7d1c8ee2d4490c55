package cartridge

// axrom implements mapper 7: a single switchable 32KB PRG bank and
// single-screen mirroring selected by the same control write.
type axrom struct {
	core
}

func newAxROM(prg, chr []uint8, chrIsRAM bool) *axrom {
	m := &axrom{core: newCore(prg, chr, 0x8000, 0x2000, chrIsRAM, MirrorSingleScreen0)}
	m.prg.setPage(0, 0)
	m.chr.setPage(0, 0)
	return m
}

func (m *axrom) ReadPRG(addr uint16) uint8 { return m.readPRGWindow(addr) }

func (m *axrom) WritePRG(addr uint16, v uint8) {
	if m.writePRGRAM(addr, v) {
		return
	}
	if addr < 0x8000 {
		return
	}
	m.prg.setPage(0, int(v&0x07))
	if v&0x10 != 0 {
		m.mirror = MirrorSingleScreen1
	} else {
		m.mirror = MirrorSingleScreen0
	}
}

func (m *axrom) ReadCHR(addr uint16) uint8     { return m.readCHR(addr) }
func (m *axrom) WriteCHR(addr uint16, v uint8) { m.writeCHR(addr, v) }
