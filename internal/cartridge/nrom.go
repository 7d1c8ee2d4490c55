package cartridge

// nrom implements mapper 0: no bank switching at all. A 16KB PRG image is
// mirrored across the full 32KB CPU window; CHR is a single fixed 8KB bank.
type nrom struct {
	core
}

func newNROM(prg, chr []uint8, mirror MirrorMode, chrIsRAM bool) *nrom {
	m := &nrom{core: newCore(prg, chr, 0x4000, 0x2000, chrIsRAM, mirror)}
	m.prg.setPage(0, 0)
	if m.prg.bankCount() > 1 {
		m.prg.setPage(1, 1)
	} else {
		m.prg.setPage(1, 0)
	}
	m.chr.setPage(0, 0)
	return m
}

func (m *nrom) ReadPRG(addr uint16) uint8     { return m.readPRGWindow(addr) }
func (m *nrom) WritePRG(addr uint16, v uint8) { m.writePRGRAM(addr, v) }
func (m *nrom) ReadCHR(addr uint16) uint8     { return m.readCHR(addr) }
func (m *nrom) WriteCHR(addr uint16, v uint8) { m.writeCHR(addr, v) }
