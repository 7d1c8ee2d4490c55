package cpu

// AddrMode identifies how an instruction's operand address is computed.
type AddrMode int

const (
	ModeImp AddrMode = iota // implied / no operand
	ModeAcc                 // operates on the accumulator
	ModeImm                 // immediate, operand is the next byte
	ModeZp
	ModeZpX
	ModeZpY
	ModeAbs
	ModeAbsX
	ModeAbsY
	ModeInd
	ModeIndX // (zp,X)
	ModeIndY // (zp),Y
	ModeRel  // branch displacement
)

// opcode is one row of the 256-entry decode table: the mnemonic dispatched
// in execute, its addressing mode, and its base cycle count. pageExtra marks
// instructions that cost one extra cycle when indexed addressing crosses a
// page boundary; branches cost extra on taken/page-crossed per execute.
type opcode struct {
	mnemonic  string
	mode      AddrMode
	cycles    uint8
	pageExtra bool
}

func o(m string, mode AddrMode, cycles uint8, pageExtra bool) opcode {
	return opcode{mnemonic: m, mode: mode, cycles: cycles, pageExtra: pageExtra}
}

// decodeTable is the full 256-entry 6502/RP2A03 opcode matrix, documented
// and undocumented instructions alike. Undocumented opcodes decode to the
// same mnemonics real silicon executes (SLO, RLA, SRE, RRA, SAX, LAX, DCP,
// ISC, ANC, ALR, ARR, AXS, SHY, SHX, TAS, LAS, and the multi-byte/read-only
// NOP family); unstable write-the-high-byte-of-(addr+1) forms (AHX/SHX/SHY/
// TAS/LAS on page-crossing pages) are modeled with their commonly documented
// behavior rather than the chip's analog-level instability. JAM/KIL opcodes
// halt the CPU, matching real hardware.
var decodeTable = [256]opcode{
	/*0x00*/ o("BRK", ModeImp, 7, false), o("ORA", ModeIndX, 6, false), o("JAM", ModeImp, 2, false), o("SLO", ModeIndX, 8, false),
	/*0x04*/ o("NOP", ModeZp, 3, false), o("ORA", ModeZp, 3, false), o("ASL", ModeZp, 5, false), o("SLO", ModeZp, 5, false),
	/*0x08*/ o("PHP", ModeImp, 3, false), o("ORA", ModeImm, 2, false), o("ASL", ModeAcc, 2, false), o("ANC", ModeImm, 2, false),
	/*0x0C*/ o("NOP", ModeAbs, 4, false), o("ORA", ModeAbs, 4, false), o("ASL", ModeAbs, 6, false), o("SLO", ModeAbs, 6, false),
	/*0x10*/ o("BPL", ModeRel, 2, false), o("ORA", ModeIndY, 5, true), o("JAM", ModeImp, 2, false), o("SLO", ModeIndY, 8, false),
	/*0x14*/ o("NOP", ModeZpX, 4, false), o("ORA", ModeZpX, 4, false), o("ASL", ModeZpX, 6, false), o("SLO", ModeZpX, 6, false),
	/*0x18*/ o("CLC", ModeImp, 2, false), o("ORA", ModeAbsY, 4, true), o("NOP", ModeImp, 2, false), o("SLO", ModeAbsY, 7, false),
	/*0x1C*/ o("NOP", ModeAbsX, 4, true), o("ORA", ModeAbsX, 4, true), o("ASL", ModeAbsX, 7, false), o("SLO", ModeAbsX, 7, false),
	/*0x20*/ o("JSR", ModeAbs, 6, false), o("AND", ModeIndX, 6, false), o("JAM", ModeImp, 2, false), o("RLA", ModeIndX, 8, false),
	/*0x24*/ o("BIT", ModeZp, 3, false), o("AND", ModeZp, 3, false), o("ROL", ModeZp, 5, false), o("RLA", ModeZp, 5, false),
	/*0x28*/ o("PLP", ModeImp, 4, false), o("AND", ModeImm, 2, false), o("ROL", ModeAcc, 2, false), o("ANC", ModeImm, 2, false),
	/*0x2C*/ o("BIT", ModeAbs, 4, false), o("AND", ModeAbs, 4, false), o("ROL", ModeAbs, 6, false), o("RLA", ModeAbs, 6, false),
	/*0x30*/ o("BMI", ModeRel, 2, false), o("AND", ModeIndY, 5, true), o("JAM", ModeImp, 2, false), o("RLA", ModeIndY, 8, false),
	/*0x34*/ o("NOP", ModeZpX, 4, false), o("AND", ModeZpX, 4, false), o("ROL", ModeZpX, 6, false), o("RLA", ModeZpX, 6, false),
	/*0x38*/ o("SEC", ModeImp, 2, false), o("AND", ModeAbsY, 4, true), o("NOP", ModeImp, 2, false), o("RLA", ModeAbsY, 7, false),
	/*0x3C*/ o("NOP", ModeAbsX, 4, true), o("AND", ModeAbsX, 4, true), o("ROL", ModeAbsX, 7, false), o("RLA", ModeAbsX, 7, false),
	/*0x40*/ o("RTI", ModeImp, 6, false), o("EOR", ModeIndX, 6, false), o("JAM", ModeImp, 2, false), o("SRE", ModeIndX, 8, false),
	/*0x44*/ o("NOP", ModeZp, 3, false), o("EOR", ModeZp, 3, false), o("LSR", ModeZp, 5, false), o("SRE", ModeZp, 5, false),
	/*0x48*/ o("PHA", ModeImp, 3, false), o("EOR", ModeImm, 2, false), o("LSR", ModeAcc, 2, false), o("ALR", ModeImm, 2, false),
	/*0x4C*/ o("JMP", ModeAbs, 3, false), o("EOR", ModeAbs, 4, false), o("LSR", ModeAbs, 6, false), o("SRE", ModeAbs, 6, false),
	/*0x50*/ o("BVC", ModeRel, 2, false), o("EOR", ModeIndY, 5, true), o("JAM", ModeImp, 2, false), o("SRE", ModeIndY, 8, false),
	/*0x54*/ o("NOP", ModeZpX, 4, false), o("EOR", ModeZpX, 4, false), o("LSR", ModeZpX, 6, false), o("SRE", ModeZpX, 6, false),
	/*0x58*/ o("CLI", ModeImp, 2, false), o("EOR", ModeAbsY, 4, true), o("NOP", ModeImp, 2, false), o("SRE", ModeAbsY, 7, false),
	/*0x5C*/ o("NOP", ModeAbsX, 4, true), o("EOR", ModeAbsX, 4, true), o("LSR", ModeAbsX, 7, false), o("SRE", ModeAbsX, 7, false),
	/*0x60*/ o("RTS", ModeImp, 6, false), o("ADC", ModeIndX, 6, false), o("JAM", ModeImp, 2, false), o("RRA", ModeIndX, 8, false),
	/*0x64*/ o("NOP", ModeZp, 3, false), o("ADC", ModeZp, 3, false), o("ROR", ModeZp, 5, false), o("RRA", ModeZp, 5, false),
	/*0x68*/ o("PLA", ModeImp, 4, false), o("ADC", ModeImm, 2, false), o("ROR", ModeAcc, 2, false), o("ARR", ModeImm, 2, false),
	/*0x6C*/ o("JMP", ModeInd, 5, false), o("ADC", ModeAbs, 4, false), o("ROR", ModeAbs, 6, false), o("RRA", ModeAbs, 6, false),
	/*0x70*/ o("BVS", ModeRel, 2, false), o("ADC", ModeIndY, 5, true), o("JAM", ModeImp, 2, false), o("RRA", ModeIndY, 8, false),
	/*0x74*/ o("NOP", ModeZpX, 4, false), o("ADC", ModeZpX, 4, false), o("ROR", ModeZpX, 6, false), o("RRA", ModeZpX, 6, false),
	/*0x78*/ o("SEI", ModeImp, 2, false), o("ADC", ModeAbsY, 4, true), o("NOP", ModeImp, 2, false), o("RRA", ModeAbsY, 7, false),
	/*0x7C*/ o("NOP", ModeAbsX, 4, true), o("ADC", ModeAbsX, 4, true), o("ROR", ModeAbsX, 7, false), o("RRA", ModeAbsX, 7, false),
	/*0x80*/ o("NOP", ModeImm, 2, false), o("STA", ModeIndX, 6, false), o("NOP", ModeImm, 2, false), o("SAX", ModeIndX, 6, false),
	/*0x84*/ o("STY", ModeZp, 3, false), o("STA", ModeZp, 3, false), o("STX", ModeZp, 3, false), o("SAX", ModeZp, 3, false),
	/*0x88*/ o("DEY", ModeImp, 2, false), o("NOP", ModeImm, 2, false), o("TXA", ModeImp, 2, false), o("XAA", ModeImm, 2, false),
	/*0x8C*/ o("STY", ModeAbs, 4, false), o("STA", ModeAbs, 4, false), o("STX", ModeAbs, 4, false), o("SAX", ModeAbs, 4, false),
	/*0x90*/ o("BCC", ModeRel, 2, false), o("STA", ModeIndY, 6, false), o("JAM", ModeImp, 2, false), o("AHX", ModeIndY, 6, false),
	/*0x94*/ o("STY", ModeZpX, 4, false), o("STA", ModeZpX, 4, false), o("STX", ModeZpY, 4, false), o("SAX", ModeZpY, 4, false),
	/*0x98*/ o("TYA", ModeImp, 2, false), o("STA", ModeAbsY, 5, false), o("TXS", ModeImp, 2, false), o("TAS", ModeAbsY, 5, false),
	/*0x9C*/ o("SHY", ModeAbsX, 5, false), o("STA", ModeAbsX, 5, false), o("SHX", ModeAbsY, 5, false), o("AHX", ModeAbsY, 5, false),
	/*0xA0*/ o("LDY", ModeImm, 2, false), o("LDA", ModeIndX, 6, false), o("LDX", ModeImm, 2, false), o("LAX", ModeIndX, 6, false),
	/*0xA4*/ o("LDY", ModeZp, 3, false), o("LDA", ModeZp, 3, false), o("LDX", ModeZp, 3, false), o("LAX", ModeZp, 3, false),
	/*0xA8*/ o("TAY", ModeImp, 2, false), o("LDA", ModeImm, 2, false), o("TAX", ModeImp, 2, false), o("LAX", ModeImm, 2, false),
	/*0xAC*/ o("LDY", ModeAbs, 4, false), o("LDA", ModeAbs, 4, false), o("LDX", ModeAbs, 4, false), o("LAX", ModeAbs, 4, false),
	/*0xB0*/ o("BCS", ModeRel, 2, false), o("LDA", ModeIndY, 5, true), o("JAM", ModeImp, 2, false), o("LAX", ModeIndY, 5, true),
	/*0xB4*/ o("LDY", ModeZpX, 4, false), o("LDA", ModeZpX, 4, false), o("LDX", ModeZpY, 4, false), o("LAX", ModeZpY, 4, false),
	/*0xB8*/ o("CLV", ModeImp, 2, false), o("LDA", ModeAbsY, 4, true), o("TSX", ModeImp, 2, false), o("LAS", ModeAbsY, 4, true),
	/*0xBC*/ o("LDY", ModeAbsX, 4, true), o("LDA", ModeAbsX, 4, true), o("LDX", ModeAbsY, 4, true), o("LAX", ModeAbsY, 4, true),
	/*0xC0*/ o("CPY", ModeImm, 2, false), o("CMP", ModeIndX, 6, false), o("NOP", ModeImm, 2, false), o("DCP", ModeIndX, 8, false),
	/*0xC4*/ o("CPY", ModeZp, 3, false), o("CMP", ModeZp, 3, false), o("DEC", ModeZp, 5, false), o("DCP", ModeZp, 5, false),
	/*0xC8*/ o("INY", ModeImp, 2, false), o("CMP", ModeImm, 2, false), o("DEX", ModeImp, 2, false), o("AXS", ModeImm, 2, false),
	/*0xCC*/ o("CPY", ModeAbs, 4, false), o("CMP", ModeAbs, 4, false), o("DEC", ModeAbs, 6, false), o("DCP", ModeAbs, 6, false),
	/*0xD0*/ o("BNE", ModeRel, 2, false), o("CMP", ModeIndY, 5, true), o("JAM", ModeImp, 2, false), o("DCP", ModeIndY, 8, false),
	/*0xD4*/ o("NOP", ModeZpX, 4, false), o("CMP", ModeZpX, 4, false), o("DEC", ModeZpX, 6, false), o("DCP", ModeZpX, 6, false),
	/*0xD8*/ o("CLD", ModeImp, 2, false), o("CMP", ModeAbsY, 4, true), o("NOP", ModeImp, 2, false), o("DCP", ModeAbsY, 7, false),
	/*0xDC*/ o("NOP", ModeAbsX, 4, true), o("CMP", ModeAbsX, 4, true), o("DEC", ModeAbsX, 7, false), o("DCP", ModeAbsX, 7, false),
	/*0xE0*/ o("CPX", ModeImm, 2, false), o("SBC", ModeIndX, 6, false), o("NOP", ModeImm, 2, false), o("ISC", ModeIndX, 8, false),
	/*0xE4*/ o("CPX", ModeZp, 3, false), o("SBC", ModeZp, 3, false), o("INC", ModeZp, 5, false), o("ISC", ModeZp, 5, false),
	/*0xE8*/ o("INX", ModeImp, 2, false), o("SBC", ModeImm, 2, false), o("NOP", ModeImp, 2, false), o("SBC", ModeImm, 2, false),
	/*0xEC*/ o("CPX", ModeAbs, 4, false), o("SBC", ModeAbs, 4, false), o("INC", ModeAbs, 6, false), o("ISC", ModeAbs, 6, false),
	/*0xF0*/ o("BEQ", ModeRel, 2, false), o("SBC", ModeIndY, 5, true), o("JAM", ModeImp, 2, false), o("ISC", ModeIndY, 8, false),
	/*0xF4*/ o("NOP", ModeZpX, 4, false), o("SBC", ModeZpX, 4, false), o("INC", ModeZpX, 6, false), o("ISC", ModeZpX, 6, false),
	/*0xF8*/ o("SED", ModeImp, 2, false), o("SBC", ModeAbsY, 4, true), o("NOP", ModeImp, 2, false), o("ISC", ModeAbsY, 7, false),
	/*0xFC*/ o("NOP", ModeAbsX, 4, true), o("SBC", ModeAbsX, 4, true), o("INC", ModeAbsX, 7, false), o("ISC", ModeAbsX, 7, false),
}
