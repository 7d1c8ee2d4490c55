package cartridge

// mmc1 implements mapper 1 (and, with forceSRAM set, mapper 155): a 5-bit
// serial shift register loaded one bit per write, assembled into one of
// four internal registers (control/chr0/chr1/prg) selected by the address
// of the write that completes the fifth bit. forceSRAM distinguishes board
// variants that wire PRG-RAM enable permanently high; both behave
// identically here since PRG-RAM is never gated.
//
// The real latch ignores the second of two writes landing on consecutive
// CPU cycles (the case read-modify-write instructions like INC/ASL trigger
// on the bus), so the shift register is driven by ClockCPU rather than by
// WritePRG's call count alone.
type mmc1 struct {
	core
	shift     uint8
	control   uint8
	chr0      uint8
	chr1      uint8
	prgReg    uint8
	forceSRAM bool

	cycle          uint64
	lastWriteCycle uint64
	everWrote      bool
}

func newMMC1(prg, chr []uint8, mirror MirrorMode, chrIsRAM, forceSRAM bool) *mmc1 {
	m := &mmc1{
		core:      newCore(prg, chr, 0x4000, 0x1000, chrIsRAM, mirror),
		control:   0x0C,
		shift:     0x10,
		forceSRAM: forceSRAM,
	}
	m.applyPRG()
	m.applyCHR()
	return m
}

// prgBankMode reads control bits 2-3. The distilled Rust source computed
// this as `control & 0b00001100 >> 2`, which Rust operator precedence turns
// into `control & 0b11` — a bug. This port applies the evidently intended
// mask-then-shift semantics instead.
func (m *mmc1) prgBankMode() uint8 { return (m.control >> 2) & 0x03 }
func (m *mmc1) chrBankMode() uint8 { return (m.control >> 4) & 0x01 }

func (m *mmc1) applyMirrorFromControl() {
	switch m.control & 0x03 {
	case 0:
		m.mirror = MirrorSingleScreen0
	case 1:
		m.mirror = MirrorSingleScreen1
	case 2:
		m.mirror = MirrorVertical
	case 3:
		m.mirror = MirrorHorizontal
	}
}

func (m *mmc1) applyPRG() {
	switch m.prgBankMode() {
	case 0, 1:
		bank := int(m.prgReg&0x0E) >> 1
		m.prg.setPage(0, bank*2)
		m.prg.setPage(1, bank*2+1)
	case 2:
		m.prg.setPage(0, 0)
		m.prg.setPage(1, int(m.prgReg&0x0F))
	case 3:
		m.prg.setPage(0, int(m.prgReg&0x0F))
		m.prg.setPage(1, -1)
	}
}

func (m *mmc1) applyCHR() {
	if m.chrBankMode() == 0 {
		bank := int(m.chr0 & 0x1E)
		m.chr.setPage(0, bank)
		m.chr.setPage(1, bank+1)
	} else {
		m.chr.setPage(0, int(m.chr0&0x1F))
		m.chr.setPage(1, int(m.chr1&0x1F))
	}
}

func (m *mmc1) ReadPRG(addr uint16) uint8 { return m.readPRGWindow(addr) }

// ClockCPU advances the latch's notion of the current CPU cycle; it must be
// called once per cycle regardless of whether a write happens on it.
func (m *mmc1) ClockCPU() { m.cycle++ }

func (m *mmc1) WritePRG(addr uint16, v uint8) {
	if m.writePRGRAM(addr, v) {
		return
	}
	if addr < 0x8000 {
		return
	}
	if m.everWrote && m.cycle-m.lastWriteCycle <= 1 {
		// Second write of a back-to-back pair on consecutive CPU cycles;
		// the real shift register drops it entirely.
		return
	}
	m.lastWriteCycle = m.cycle
	m.everWrote = true
	if v&0x80 != 0 {
		m.shift = 0x10
		m.control |= 0x0C
		m.applyMirrorFromControl()
		m.applyPRG()
		return
	}
	complete := m.shift&0x01 != 0
	m.shift = (m.shift >> 1) | ((v & 0x01) << 4)
	if !complete {
		return
	}
	value := m.shift
	m.shift = 0x10
	switch (addr >> 13) & 0x03 {
	case 0:
		m.control = value
		m.applyMirrorFromControl()
	case 1:
		m.chr0 = value
	case 2:
		m.chr1 = value
	case 3:
		m.prgReg = value
	}
	m.applyPRG()
	m.applyCHR()
}

func (m *mmc1) ReadCHR(addr uint16) uint8     { return m.readCHR(addr) }
func (m *mmc1) WriteCHR(addr uint16, v uint8) { m.writeCHR(addr, v) }
