package cartridge

// mmc3TxSROM implements mapper 118 (TxSROM): the full MMC3 bank-select and
// IRQ machinery, but the board wires its mirroring pin to a CHR address
// line instead of MMC3's $A000 register, so that register has no effect.
type mmc3TxSROM struct {
	mmc3
}

func newMMC3TxSROM(prg, chr []uint8, mirror MirrorMode, chrIsRAM bool) *mmc3TxSROM {
	return &mmc3TxSROM{mmc3: *newMMC3(prg, chr, mirror, chrIsRAM)}
}

// Mirror derives nametable selection from bit 7 of CHR bank register R2
// (set: single-screen 1, clear: single-screen 0) rather than the (ignored)
// $A000 write, approximating TxSROM's per-bank nametable wiring with this
// core's simpler single-screen model.
func (m *mmc3TxSROM) Mirror() MirrorMode {
	if m.regs[2]&0x80 != 0 {
		return MirrorSingleScreen1
	}
	return MirrorSingleScreen0
}
