package cpu

// resolveAddress computes the effective address for the current
// instruction's addressing mode, consuming operand bytes from PC as real
// hardware would. For ModeImp/ModeAcc no operand exists and addr is unused.
func (c *CPU) resolveAddress(mode AddrMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case ModeImp, ModeAcc:
		return 0, false
	case ModeImm:
		addr = c.PC
		c.PC++
	case ModeZp:
		addr = uint16(c.Bus.Read(c.PC))
		c.PC++
	case ModeZpX:
		addr = uint16(c.Bus.Read(c.PC) + c.X)
		c.PC++
	case ModeZpY:
		addr = uint16(c.Bus.Read(c.PC) + c.Y)
		c.PC++
	case ModeAbs:
		addr = c.readAbs()
	case ModeAbsX:
		base := c.readAbs()
		addr = base + uint16(c.X)
		pageCrossed = base&0xFF00 != addr&0xFF00
	case ModeAbsY:
		base := c.readAbs()
		addr = base + uint16(c.Y)
		pageCrossed = base&0xFF00 != addr&0xFF00
	case ModeInd:
		base := c.readAbs()
		addr = c.read16Bug(base)
	case ModeIndX:
		zp := c.Bus.Read(c.PC) + c.X
		c.PC++
		addr = c.read16ZP(zp)
	case ModeIndY:
		zp := c.Bus.Read(c.PC)
		c.PC++
		base := c.read16ZP(zp)
		addr = base + uint16(c.Y)
		pageCrossed = base&0xFF00 != addr&0xFF00
	case ModeRel:
		offset := int8(c.Bus.Read(c.PC))
		c.PC++
		addr = uint16(int32(c.PC) + int32(offset))
	}
	return addr, pageCrossed
}

func (c *CPU) readAbs() uint16 {
	lo := c.Bus.Read(c.PC)
	c.PC++
	hi := c.Bus.Read(c.PC)
	c.PC++
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) read16ZP(zp uint8) uint16 {
	lo := c.Bus.Read(uint16(zp))
	hi := c.Bus.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// read16Bug reproduces the documented 6502 JMP ($xxFF) bug: the high byte
// is fetched from the start of the same page instead of the next page.
func (c *CPU) read16Bug(addr uint16) uint16 {
	lo := c.Bus.Read(addr)
	hiAddr := (addr & 0xFF00) | uint16(uint8(addr)+1)
	hi := c.Bus.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// execute performs the effect of the current instruction and returns any
// extra cycles earned by page-crossing or branch-taken, beyond cur.cycles.
func (c *CPU) execute() int {
	mode := c.cur.mode
	addr, pageCrossed := c.resolveAddress(mode)
	extra := 0
	if c.cur.pageExtra && pageCrossed {
		extra++
	}

	switch c.cur.mnemonic {
	case "LDA":
		c.A = c.Bus.Read(addr)
		c.setZN(c.A)
	case "LDX":
		c.X = c.Bus.Read(addr)
		c.setZN(c.X)
	case "LDY":
		c.Y = c.Bus.Read(addr)
		c.setZN(c.Y)
	case "STA":
		c.Bus.Write(addr, c.A)
	case "STX":
		c.Bus.Write(addr, c.X)
	case "STY":
		c.Bus.Write(addr, c.Y)
	case "TAX":
		c.X = c.A
		c.setZN(c.X)
	case "TAY":
		c.Y = c.A
		c.setZN(c.Y)
	case "TXA":
		c.A = c.X
		c.setZN(c.A)
	case "TYA":
		c.A = c.Y
		c.setZN(c.A)
	case "TSX":
		c.X = c.SP
		c.setZN(c.X)
	case "TXS":
		c.SP = c.X
	case "PHA":
		c.push(c.A)
	case "PHP":
		c.push(c.status | FlagBreak | FlagUnused)
	case "PLA":
		c.A = c.pop()
		c.setZN(c.A)
	case "PLP":
		c.status = (c.pop() &^ FlagBreak) | FlagUnused
	case "ADC":
		c.adc(c.Bus.Read(addr))
	case "SBC":
		c.sbc(c.Bus.Read(addr))
	case "INC":
		v := c.Bus.Read(addr) + 1
		c.Bus.Write(addr, v)
		c.setZN(v)
	case "INX":
		c.X++
		c.setZN(c.X)
	case "INY":
		c.Y++
		c.setZN(c.Y)
	case "DEC":
		v := c.Bus.Read(addr) - 1
		c.Bus.Write(addr, v)
		c.setZN(v)
	case "DEX":
		c.X--
		c.setZN(c.X)
	case "DEY":
		c.Y--
		c.setZN(c.Y)
	case "AND":
		c.A &= c.Bus.Read(addr)
		c.setZN(c.A)
	case "ORA":
		c.A |= c.Bus.Read(addr)
		c.setZN(c.A)
	case "EOR":
		c.A ^= c.Bus.Read(addr)
		c.setZN(c.A)
	case "BIT":
		v := c.Bus.Read(addr)
		c.setFlag(FlagZero, c.A&v == 0)
		c.setFlag(FlagOverflow, v&0x40 != 0)
		c.setFlag(FlagNegative, v&0x80 != 0)
	case "ASL":
		c.shift(mode, addr, func(v uint8) uint8 {
			c.setFlag(FlagCarry, v&0x80 != 0)
			return v << 1
		})
	case "LSR":
		c.shift(mode, addr, func(v uint8) uint8 {
			c.setFlag(FlagCarry, v&0x01 != 0)
			return v >> 1
		})
	case "ROL":
		c.shift(mode, addr, func(v uint8) uint8 {
			carryIn := uint8(0)
			if c.flag(FlagCarry) {
				carryIn = 1
			}
			c.setFlag(FlagCarry, v&0x80 != 0)
			return v<<1 | carryIn
		})
	case "ROR":
		c.shift(mode, addr, func(v uint8) uint8 {
			carryIn := uint8(0)
			if c.flag(FlagCarry) {
				carryIn = 0x80
			}
			c.setFlag(FlagCarry, v&0x01 != 0)
			return v>>1 | carryIn
		})
	case "CMP":
		c.compare(c.A, c.Bus.Read(addr))
	case "CPX":
		c.compare(c.X, c.Bus.Read(addr))
	case "CPY":
		c.compare(c.Y, c.Bus.Read(addr))
	case "BCC":
		extra += c.branch(addr, !c.flag(FlagCarry))
	case "BCS":
		extra += c.branch(addr, c.flag(FlagCarry))
	case "BEQ":
		extra += c.branch(addr, c.flag(FlagZero))
	case "BNE":
		extra += c.branch(addr, !c.flag(FlagZero))
	case "BMI":
		extra += c.branch(addr, c.flag(FlagNegative))
	case "BPL":
		extra += c.branch(addr, !c.flag(FlagNegative))
	case "BVC":
		extra += c.branch(addr, !c.flag(FlagOverflow))
	case "BVS":
		extra += c.branch(addr, c.flag(FlagOverflow))
	case "CLC":
		c.setFlag(FlagCarry, false)
	case "CLD":
		c.setFlag(FlagDecimal, false)
	case "CLI":
		c.setFlag(FlagInterruptDisable, false)
	case "CLV":
		c.setFlag(FlagOverflow, false)
	case "SEC":
		c.setFlag(FlagCarry, true)
	case "SED":
		c.setFlag(FlagDecimal, true)
	case "SEI":
		c.setFlag(FlagInterruptDisable, true)
	case "JMP":
		c.PC = addr
	case "JSR":
		c.push16(c.PC - 1)
		c.PC = addr
	case "RTS":
		c.PC = c.pop16() + 1
	case "RTI":
		c.status = (c.pop() &^ FlagBreak) | FlagUnused
		c.PC = c.pop16()
	case "BRK":
		c.dispatchInterrupt(vectorIRQ, true)
	case "NOP":
		// operand bytes (if any) already consumed by resolveAddress
	case "LAX":
		c.A = c.Bus.Read(addr)
		c.X = c.A
		c.setZN(c.A)
	case "SAX":
		c.Bus.Write(addr, c.A&c.X)
	case "DCP":
		v := c.Bus.Read(addr) - 1
		c.Bus.Write(addr, v)
		c.compare(c.A, v)
	case "ISC":
		v := c.Bus.Read(addr) + 1
		c.Bus.Write(addr, v)
		c.sbc(v)
	case "SLO":
		v := c.Bus.Read(addr)
		c.setFlag(FlagCarry, v&0x80 != 0)
		v <<= 1
		c.Bus.Write(addr, v)
		c.A |= v
		c.setZN(c.A)
	case "RLA":
		v := c.Bus.Read(addr)
		carryIn := uint8(0)
		if c.flag(FlagCarry) {
			carryIn = 1
		}
		c.setFlag(FlagCarry, v&0x80 != 0)
		v = v<<1 | carryIn
		c.Bus.Write(addr, v)
		c.A &= v
		c.setZN(c.A)
	case "SRE":
		v := c.Bus.Read(addr)
		c.setFlag(FlagCarry, v&0x01 != 0)
		v >>= 1
		c.Bus.Write(addr, v)
		c.A ^= v
		c.setZN(c.A)
	case "RRA":
		v := c.Bus.Read(addr)
		carryIn := uint8(0)
		if c.flag(FlagCarry) {
			carryIn = 0x80
		}
		c.setFlag(FlagCarry, v&0x01 != 0)
		v = v>>1 | carryIn
		c.Bus.Write(addr, v)
		c.adc(v)
	case "ANC":
		c.A &= c.Bus.Read(addr)
		c.setZN(c.A)
		c.setFlag(FlagCarry, c.A&0x80 != 0)
	case "ALR":
		c.A &= c.Bus.Read(addr)
		c.setFlag(FlagCarry, c.A&0x01 != 0)
		c.A >>= 1
		c.setZN(c.A)
	case "ARR":
		c.A &= c.Bus.Read(addr)
		carryIn := uint8(0)
		if c.flag(FlagCarry) {
			carryIn = 0x80
		}
		c.A = c.A>>1 | carryIn
		c.setZN(c.A)
		c.setFlag(FlagCarry, c.A&0x40 != 0)
		c.setFlag(FlagOverflow, (c.A>>6)&1 != (c.A>>5)&1)
	case "AXS":
		v := c.Bus.Read(addr)
		and := c.A & c.X
		c.setFlag(FlagCarry, and >= v)
		c.X = and - v
		c.setZN(c.X)
	case "XAA":
		c.A = c.X & c.Bus.Read(addr)
		c.setZN(c.A)
	case "AHX":
		c.Bus.Write(addr, c.A&c.X&(uint8(addr>>8)+1))
	case "SHX":
		c.Bus.Write(addr, c.X&(uint8(addr>>8)+1))
	case "SHY":
		c.Bus.Write(addr, c.Y&(uint8(addr>>8)+1))
	case "TAS":
		c.SP = c.A & c.X
		c.Bus.Write(addr, c.SP&(uint8(addr>>8)+1))
	case "LAS":
		v := c.Bus.Read(addr) & c.SP
		c.A, c.X, c.SP = v, v, v
		c.setZN(v)
	case "JAM":
		c.halted = true
	}
	return extra
}

func (c *CPU) shift(mode AddrMode, addr uint16, f func(uint8) uint8) {
	if mode == ModeAcc {
		c.A = f(c.A)
		c.setZN(c.A)
		return
	}
	v := f(c.Bus.Read(addr))
	c.Bus.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) compare(reg, v uint8) {
	c.setFlag(FlagCarry, reg >= v)
	c.setZN(reg - v)
}

// branch applies a taken/not-taken branch, returning the extra cycle cost:
// +1 if taken, +1 more if the branch crosses a page. A branch whose target
// is its own opcode address is flagged as an infinite-loop trap, matching
// the guard the distilled source uses to stop runaway self-branch programs.
func (c *CPU) branch(target uint16, take bool) int {
	if !take {
		return 0
	}
	extra := 1
	if c.PC&0xFF00 != target&0xFF00 {
		extra++
	}
	if target == c.instrAddr {
		c.trapped = true
	}
	c.PC = target
	return extra
}

func (c *CPU) adc(v uint8) {
	a := c.A
	carryIn := uint16(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(v) + carryIn
	result := uint8(sum)
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagNegative, result&0x80 != 0)
	c.setFlag(FlagOverflow, (a^result)&(v^result)&0x80 != 0)
	if c.bcdEnabled() && c.flag(FlagDecimal) {
		lo := (a & 0x0F) + (v & 0x0F) + uint8(carryIn)
		hi := (a >> 4) + (v >> 4)
		if lo > 9 {
			lo += 6
			hi++
		}
		if hi > 9 {
			hi += 6
		}
		result = hi<<4 | (lo & 0x0F)
		c.setFlag(FlagCarry, hi > 15)
	} else {
		c.setFlag(FlagCarry, sum > 0xFF)
	}
	c.A = result
}

func (c *CPU) sbc(v uint8) {
	if c.bcdEnabled() && c.flag(FlagDecimal) {
		a := c.A
		carryIn := uint8(0)
		if c.flag(FlagCarry) {
			carryIn = 1
		}
		sum := uint16(a) + uint16(^v) + uint16(carryIn)
		result := uint8(sum)
		c.setFlag(FlagZero, result == 0)
		c.setFlag(FlagNegative, result&0x80 != 0)
		c.setFlag(FlagOverflow, (a^v)&(a^result)&0x80 != 0)
		lo := int16(a&0x0F) - int16(v&0x0F) + int16(carryIn) - 1
		hi := int16(a>>4) - int16(v>>4)
		if lo < 0 {
			lo -= 6
			hi--
		}
		if hi < 0 {
			hi -= 6
		}
		c.setFlag(FlagCarry, sum > 0xFF)
		c.A = uint8(hi<<4) | uint8(lo&0x0F)
		return
	}
	c.adc(^v)
}
