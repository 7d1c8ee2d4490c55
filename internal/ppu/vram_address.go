package ppu

// vramAddress packs the PPU's loopy-register layout:
//
//	0 yyy NN YYYYY XXXXX
//	| ||| || ||||| +++++-- coarse X scroll
//	| ||| || +++++-------- coarse Y scroll
//	| ||| ++-------------- nametable select
//	| +++------------------ fine Y scroll
//	+-------------------- unused
//
// fineX is tracked alongside since it is not part of the 15-bit register.
type vramAddress struct {
	register uint16
	fineX    uint8
}

func (v *vramAddress) coarseX() uint8 { return uint8(v.register & 0x001F) }
func (v *vramAddress) setCoarseX(x uint8) {
	v.register = (v.register &^ 0x001F) | uint16(x&0x1F)
}

func (v *vramAddress) coarseY() uint8 { return uint8((v.register & 0x03E0) >> 5) }
func (v *vramAddress) setCoarseY(y uint8) {
	v.register = (v.register &^ 0x03E0) | (uint16(y&0x1F) << 5)
}

func (v *vramAddress) fineY() uint8 { return uint8((v.register & 0x7000) >> 12) }
func (v *vramAddress) setFineY(y uint8) {
	v.register = (v.register &^ 0x7000) | (uint16(y&0x07) << 12)
}

func (v *vramAddress) horizontalNametable() bool { return v.register&0x0400 != 0 }
func (v *vramAddress) setHorizontalNametable(on bool) {
	if on {
		v.register |= 0x0400
	} else {
		v.register &^= 0x0400
	}
}

func (v *vramAddress) verticalNametable() bool { return v.register&0x0800 != 0 }
func (v *vramAddress) setVerticalNametable(on bool) {
	if on {
		v.register |= 0x0800
	} else {
		v.register &^= 0x0800
	}
}

func (v *vramAddress) nametableBits() uint8 { return uint8((v.register & 0x0C00) >> 10) }
func (v *vramAddress) setNametableBits(bits uint8) {
	v.register = (v.register &^ 0x0C00) | (uint16(bits&0x03) << 10)
}

func (v *vramAddress) x() uint8 { return (v.coarseX() << 3) | v.fineX }
func (v *vramAddress) setX(x uint8) {
	v.setCoarseX(x >> 3)
	v.fineX = x & 0x07
}

func (v *vramAddress) y() uint8 { return (v.coarseY() << 3) | v.fineY() }
func (v *vramAddress) setY(y uint8) {
	v.setFineY(y)
	v.setCoarseY(y >> 3)
}

func (v *vramAddress) addressHigh() uint8 { return uint8((v.register & 0x3F00) >> 8) }
func (v *vramAddress) setAddressHigh(data uint8) {
	v.register = (v.register &^ 0x3F00) | (uint16(data&0x3F) << 8)
}

func (v *vramAddress) addressLow() uint8 { return uint8(v.register & 0x00FF) }
func (v *vramAddress) setAddressLow(data uint8) {
	v.register = (v.register &^ 0x00FF) | uint16(data)
}

func (v *vramAddress) incAddress(amount uint16) { v.register += amount }

// incrementCoarseX wraps at 32 tiles, flipping the horizontal nametable bit.
func (v *vramAddress) incrementCoarseX() {
	if v.coarseX() == 31 {
		v.setCoarseX(0)
		v.setHorizontalNametable(!v.horizontalNametable())
	} else {
		v.setCoarseX(v.coarseX() + 1)
	}
}

// incrementY wraps the fine/coarse Y pair at 240, flipping the vertical
// nametable bit. Coarse Y can overflow past 239 when attribute fetches run
// off the end of a nametable; both 239 and 255 trigger the wrap.
func (v *vramAddress) incrementY() {
	y := v.y()
	if y == 239 || y == 255 {
		v.setY(0)
		v.setVerticalNametable(!v.verticalNametable())
	} else {
		v.setY(y + 1)
	}
}

func (v *vramAddress) copyXFrom(other *vramAddress) {
	v.setX(other.x())
	v.setHorizontalNametable(other.horizontalNametable())
}

func (v *vramAddress) copyYFrom(other *vramAddress) {
	v.setY(other.y())
	v.setVerticalNametable(other.verticalNametable())
}

func (v *vramAddress) nametableAddress() uint16 {
	return 0x2000 | (v.register & 0x0FFF)
}

// attributeAddress derives the attribute-table byte address for the
// current coarse scroll position: nametable select, a fixed 0x03C0 offset,
// and the top 3 bits of each coarse coordinate.
func (v *vramAddress) attributeAddress() uint16 {
	return 0x2000 |
		(v.register & 0x0C00) |
		0x03C0 |
		((v.register >> 4) & 0x0038) |
		((v.register >> 2) & 0x0007)
}

// attributeShift locates which 2-bit palette field within the attribute
// byte covers the current 16x16 pixel quadrant.
func attributeShift(x, y uint8) uint8 {
	return ((y >> 2) & 0x04) | ((x >> 3) & 0x02)
}

func (v *vramAddress) attributeShift() uint8 {
	return attributeShift(v.x(), v.y())
}
