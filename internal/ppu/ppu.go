// Package ppu implements the Picture Processing Unit (2C02): the 8 CPU-
// visible registers, the background tile pipeline, sprite evaluation and
// rendering, and the master clock that drives the rest of the console.
package ppu

const (
	cpuAddrStart uint16 = 0x2000
	cpuAddrEnd   uint16 = 0x3FFF
	cpuAddrMask  uint16 = 0x2007

	paletteStart uint16 = 0x3F00
	paletteSize         = 0x20
	paletteMask  uint16 = 0x001F

	primaryOAMSize   = 0x0100
	secondaryOAMSize = 0x0020
)

// blargg's widely-used power-on palette values.
var initialPaletteValues = [paletteSize]uint8{
	0x09, 0x01, 0x00, 0x01, 0x00, 0x02, 0x02, 0x0D, 0x08, 0x10, 0x08, 0x24, 0x00, 0x00, 0x04, 0x2C,
	0x09, 0x01, 0x34, 0x03, 0x00, 0x04, 0x00, 0x14, 0x08, 0x3A, 0x00, 0x02, 0x00, 0x20, 0x2C, 0x08,
}

type busRequest int

const (
	busNone busRequest = iota
	busRead
	busWrite
)

// PPU is the NES 2C02. Clock must be called once per master PPU dot; the
// console wires it to run three times for every CPU cycle.
type PPU struct {
	bus *VideoBus

	ctrlHigh uint8 // CtrlFlags with the nametable-select bits masked out; those live in t
	mask     uint8
	status   uint8

	primaryOAM   oamData
	secondaryOAM oamData
	spriteRows   spriteRowSet

	palettes [paletteSize]uint8
	scanline int16
	tick     uint16

	evenFrame bool

	writeToggle bool
	v, t        vramAddress

	bg bgShiftRegisterSet

	oamBuffer      uint8
	spriteEvalState spriteEvalState

	pendingRequest busRequest
	pendingAddr    uint16
	pendingData    uint8
	dataBuffer     uint8

	resetting   bool
	nmiAsserted bool

	// PlotPixel receives each rendered pixel as it is produced.
	PlotPixel func(x, y uint16, r, g, b uint8)
	// NMI is invoked once on the rising edge of (vertical-blank AND
	// NMI-enable), matching the real PPU's edge-triggered NMI line rather
	// than firing once per dot while the line is held asserted.
	NMI func()
}

// New returns a PPU wired to bus for CHR/nametable traffic.
func New(bus *VideoBus) *PPU {
	p := &PPU{
		bus:       bus,
		resetting: true,
		status:    uint8(StatusVerticalBlank | StatusSpriteOverflow),
		scanline:  -1,
		evenFrame: true,
		PlotPixel: func(uint16, uint16, uint8, uint8, uint8) {},
		NMI:       func() {},
	}
	copy(p.palettes[:], initialPaletteValues[:])
	p.primaryOAM = *newOAMData(primaryOAMSize)
	p.secondaryOAM = *newOAMData(secondaryOAMSize)
	p.spriteRows = newSpriteRowSet()
	return p
}

// Reset clears control, mask, the write toggle, the current VRAM address v,
// the background shifters, secondary OAM and the sprite rows, and restarts
// timing at the pre-render line; PPUSTATUS, primary OAM contents and the
// temporary VRAM address t are left untouched.
func (p *PPU) Reset() {
	p.resetting = true
	p.evenFrame = true
	p.ctrlHigh = 0
	p.mask = 0
	p.scanline = -1
	p.tick = 0
	p.writeToggle = false
	p.v = vramAddress{}
	p.bg = bgShiftRegisterSet{}
	p.secondaryOAM = *newOAMData(secondaryOAMSize)
	p.spriteRows = newSpriteRowSet()
	p.pendingRequest = busNone
	p.nmiAsserted = false
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&uint8(MaskShowBG|MaskShowSprites) != 0
}

// Clock advances the PPU by one dot, returning whether this dot completed
// a frame. Caller should check NMI delivery via the NMI callback, which is
// invoked directly rather than polled.
func (p *PPU) Clock() (frameComplete bool) {
	p.manageBusRequest()
	p.manageStatus()
	if p.renderingEnabled() && p.scanline < 240 {
		p.manageSpriteEvaluation()
		p.manageShiftRegisters()
		p.manageRender()
		p.manageScrolling()
	}
	frameComplete = p.manageTick()

	asserted := p.status&uint8(StatusVerticalBlank) != 0 && p.ctrlHigh&uint8(CtrlNMIEnabled) != 0
	if asserted && !p.nmiAsserted {
		p.NMI()
	}
	p.nmiAsserted = asserted

	return frameComplete
}

func (p *PPU) manageBusRequest() {
	switch p.pendingRequest {
	case busRead:
		p.dataBuffer = p.bus.Read(p.pendingAddr)
	case busWrite:
		p.bus.Write(p.pendingAddr, p.pendingData)
	}
	p.pendingRequest = busNone
}

func (p *PPU) requestRead(addr uint16)          { p.pendingRequest, p.pendingAddr = busRead, addr }
func (p *PPU) requestWrite(addr uint16, v uint8) {
	p.pendingRequest, p.pendingAddr, p.pendingData = busWrite, addr, v
}

func (p *PPU) manageStatus() {
	switch {
	case p.scanline == -1 && p.tick == 1:
		p.status = 0
		p.resetting = false
		p.primaryOAM.writeEnabled = false
	case p.scanline == 241 && p.tick == 1:
		p.status |= uint8(StatusVerticalBlank)
		p.primaryOAM.writeEnabled = true
	}
}

func (p *PPU) manageScrolling() {
	switch {
	case p.tick >= 1 && p.tick < 256 && p.tick%8 == 0:
		p.v.incrementCoarseX()
	case p.tick == 256:
		p.v.incrementCoarseX()
		p.v.incrementY()
	case p.tick == 257:
		p.v.copyXFrom(&p.t)
	case p.scanline == -1 && p.tick >= 280 && p.tick <= 304:
		p.v.copyYFrom(&p.t)
	case p.tick == 328, p.tick == 336:
		p.v.incrementCoarseX()
	}
}

func (p *PPU) spriteSizeLarge() bool { return p.ctrlHigh&uint8(CtrlSpriteSizeLarge) != 0 }

func (p *PPU) manageSpriteEvaluation() {
	if p.scanline < 0 {
		return
	}
	t := p.tick
	switch {
	case t == 0:
		p.primaryOAM.loadAddr(0)
		p.primaryOAM.readEnabled = false
		p.secondaryOAM.loadAddr(0)
		p.secondaryOAM.writeEnabled = true
		p.secondaryOAM.hasSprite0 = false
	case t >= 1 && t <= 64:
		if t%2 == 1 {
			p.oamBuffer = p.primaryOAM.readData()
			p.primaryOAM.incAddr()
		} else {
			p.secondaryOAM.writeData(p.oamBuffer)
			p.secondaryOAM.incAddr()
		}
	case t >= 65 && t <= 256:
		if t == 65 {
			p.primaryOAM.loadAddr(0)
			p.primaryOAM.readEnabled = true
			p.secondaryOAM.loadAddr(0)
			p.spriteEvalState = evalReadY
		}
		p.stepSpriteEvaluation()
	case t == 257:
		p.latchSpriteRows()
	}
}

func (p *PPU) stepSpriteEvaluation() {
	height := int16(8)
	if p.spriteSizeLarge() {
		height = 16
	}
	switch p.spriteEvalState {
	case evalReadY:
		p.oamBuffer = p.primaryOAM.readData()
		p.primaryOAM.incAddr()
		p.spriteEvalState = evalWriteCompareY
	case evalWriteCompareY:
		y := int16(p.oamBuffer)
		p.secondaryOAM.writeData(p.oamBuffer)
		if y <= p.scanline && p.scanline < y+height && p.status&uint8(StatusSpriteOverflow) == 0 {
			if !p.secondaryOAM.writeEnabled {
				p.status |= uint8(StatusSpriteOverflow)
			} else if p.primaryOAM.addr < 4 {
				p.secondaryOAM.hasSprite0 = true
			}
			p.secondaryOAM.incAddr()
			p.spriteEvalState = evalReadTileIndex
		} else {
			p.primaryOAM.incAddr()
			p.primaryOAM.incAddr()
			p.primaryOAM.incAddr()
			// the extra increment below is the hardware sprite-overflow bug:
			// triggered once 8 sprites have been found but before an overflow
			// sprite has actually been detected.
			if !p.secondaryOAM.writeEnabled {
				p.primaryOAM.incAddr()
			}
			p.spriteEvalState = evalReadY
		}
	case evalReadTileIndex:
		p.oamBuffer = p.primaryOAM.readData()
		p.primaryOAM.incAddr()
		p.spriteEvalState = evalWriteTileIndex
	case evalWriteTileIndex:
		p.secondaryOAM.writeData(p.oamBuffer)
		p.secondaryOAM.incAddr()
		p.spriteEvalState = evalReadAttributes
	case evalReadAttributes:
		p.oamBuffer = p.primaryOAM.readData()
		p.primaryOAM.incAddr()
		p.spriteEvalState = evalWriteTileAttributes
	case evalWriteTileAttributes:
		p.secondaryOAM.writeData(p.oamBuffer)
		p.secondaryOAM.incAddr()
		p.spriteEvalState = evalReadX
	case evalReadX:
		p.oamBuffer = p.primaryOAM.readData()
		p.primaryOAM.incAddr()
		p.spriteEvalState = evalWriteX
	case evalWriteX:
		p.secondaryOAM.writeData(p.oamBuffer)
		if p.secondaryOAM.isFull() {
			p.secondaryOAM.writeEnabled = false
		}
		p.secondaryOAM.incAddr()
		p.spriteEvalState = evalReadY
	}
}

func (p *PPU) latchSpriteRows() {
	p.primaryOAM.loadAddr(0)
	p.secondaryOAM.loadAddr(0)
	p.spriteRows.setCurrent(0)
	for i := 0; i < 8; i++ {
		cur := p.spriteRows.currentSprite()
		cur.sprite0 = i == 0 && p.secondaryOAM.hasSprite0
		cur.y = p.secondaryOAM.readData()
		p.secondaryOAM.incAddr()
		cur.tileID = p.secondaryOAM.readData()
		p.secondaryOAM.incAddr()
		cur.attributes = p.secondaryOAM.readData()
		p.secondaryOAM.incAddr()
		cur.x = int16(p.secondaryOAM.readData())
		p.secondaryOAM.incAddr()
		p.spriteRows.incCurrent()
	}
}

func (p *PPU) baseSpritePatternAddress() uint16 {
	return p.spriteRows.currentSprite().patternAddress(p.spriteSizeLarge(), p.ctrlHigh&uint8(CtrlSpriteTableHigh) != 0, uint16(p.scanline))
}

func (p *PPU) manageShiftRegisters() {
	if p.tick == 0 {
		return
	}
	switch p.tick % 8 {
	case 1:
		p.requestRead(p.v.nametableAddress())
		if p.tick >= 9 {
			p.bg.latch()
		}
	case 2:
		p.bg.loadNameTableData(p.dataBuffer)
	case 3:
		p.requestRead(p.v.attributeAddress())
	case 4:
		if p.tick != 340 {
			p.bg.loadAttributeData(p.dataBuffer, p.v.attributeShift())
		} else {
			p.bg.loadNameTableData(p.dataBuffer)
		}
	case 5:
		if p.tick >= 261 && p.tick <= 320 {
			if p.scanline >= -1 && p.scanline <= 239 {
				p.requestRead(p.baseSpritePatternAddress())
			}
		} else {
			p.requestRead(p.bg.patternAddress(p.ctrlHigh&uint8(CtrlBackgroundPatternHigh) != 0, p.v.fineY()))
		}
	case 6:
		if p.tick >= 261 && p.tick <= 320 {
			if p.scanline >= -1 && p.scanline <= 239 {
				p.spriteRows.currentSprite().setPatternLow(p.dataBuffer)
			}
		} else {
			p.bg.loadPatternLow(p.dataBuffer)
		}
	case 7:
		if p.tick >= 261 && p.tick <= 320 {
			if p.scanline >= -1 && p.scanline <= 239 {
				p.requestRead(p.baseSpritePatternAddress() | 0x08)
			}
		} else {
			p.requestRead(p.bg.patternAddress(p.ctrlHigh&uint8(CtrlBackgroundPatternHigh) != 0, p.v.fineY()) | 0x08)
		}
	case 0:
		if p.tick >= 261 && p.tick <= 320 {
			if p.scanline >= -1 && p.scanline <= 239 {
				p.spriteRows.currentSprite().setPatternHigh(p.dataBuffer)
				p.spriteRows.incCurrent()
			}
		} else {
			p.bg.loadPatternHigh(p.dataBuffer)
		}
	}

	// tick%8==3 has a special case at dot 339 handled above via the
	// case-3/case-4 swap; dot 339/340 reuse the nametable fetch slot
	// instead of the attribute slot (the PPU's well-known "dummy fetch").
	if p.tick == 339 {
		p.requestRead(p.v.nametableAddress())
	}

	if p.tick <= 336 {
		p.bg.shift()
	}
	if p.tick <= 256 {
		p.spriteRows.shift()
	}
}

func (p *PPU) manageRender() {
	x, y := p.tick, uint16(p.scanline)
	if x >= 256 || y >= 240 {
		return
	}

	bgPalette, bgColor := p.bg.paletteNumberAndColor(p.t.fineX)

	var spritePalette, spriteColor uint16 = 0x10, 0
	var sprite0, bgPriority bool = false, true
	if sprite := p.spriteRows.firstOpaque(); sprite != nil {
		spritePalette, spriteColor = sprite.paletteNumberAndColor()
		sprite0 = sprite.sprite0
		bgPriority = sprite.backgroundPriority()
	}

	if bgColor != 0 && spriteColor != 0 && sprite0 {
		p.status |= uint8(StatusSprite0Hit)
	}

	if !(p.mask&uint8(MaskShowBG) != 0 && (x >= 8 || p.mask&uint8(MaskShowLeft8BG) != 0)) {
		bgPalette, bgColor = 0, 0
	}
	if !(p.mask&uint8(MaskShowSprites) != 0 && (x >= 8 || p.mask&uint8(MaskShowLeft8Sprites) != 0)) {
		spritePalette, spriteColor = 0x04, 0
	}

	var paletteNumber, color uint16
	switch {
	case bgColor == 0 && spriteColor == 0:
		paletteNumber, color = 0, 0
	case bgColor == 0:
		paletteNumber, color = spritePalette, spriteColor
	case spriteColor == 0:
		paletteNumber, color = bgPalette, bgColor
	case !bgPriority:
		paletteNumber, color = spritePalette, spriteColor
	default:
		paletteNumber, color = bgPalette, bgColor
	}

	paletteAddr := 0x3F00 | (paletteNumber << 2) | color
	entry := p.readPalette(paletteAddr)
	r, g, b := translateToRGB(entry)
	p.PlotPixel(x, y, r, g, b)
}

func (p *PPU) manageTick() bool {
	// skip a tick on odd frames while rendering, the long-documented
	// "skipped dot" that keeps NTSC PPU timing an exact 3x the CPU clock.
	if p.scanline == -1 && p.tick == 339 && !p.evenFrame && p.renderingEnabled() {
		p.tick = 340
	}

	endOfFrame := false
	p.tick++
	if p.tick == 341 {
		p.tick = 0
		p.scanline++
		if p.scanline == 261 {
			endOfFrame = true
			p.scanline = -1
			p.evenFrame = !p.evenFrame
		}
	}
	return endOfFrame
}

func (p *PPU) readPalette(addr uint16) uint8 {
	mirrored := addr & paletteMask
	var physical uint16
	if mirrored&0xF3 == 0x10 {
		physical = mirrored & 0x0C
	} else {
		physical = mirrored
	}
	data := p.palettes[physical]
	if p.mask&uint8(MaskGreyscale) != 0 {
		return data & 0x30
	}
	return data & 0x3F
}

func (p *PPU) writePalette(addr uint16, data uint8) uint8 {
	mirrored := addr & paletteMask
	var physical uint16
	if mirrored&0x13 == 0x10 {
		physical = mirrored & 0x0C
	} else {
		physical = mirrored
	}
	old := p.palettes[physical]
	p.palettes[physical] = data & 0x3F
	return old
}

func (p *PPU) setCtrlFlags(data uint8) {
	if !p.resetting {
		p.ctrlHigh = data &^ 0x03
		p.t.setNametableBits(data)
	}
}

func (p *PPU) incVRAMAddr() {
	if p.ctrlHigh&uint8(CtrlIncrementAcross) != 0 {
		p.v.incAddress(32)
	} else {
		p.v.incAddress(1)
	}
}

// ReadRegister implements the CPU-visible side of $2000-$2007 (mirrored
// every 8 bytes through $3FFF).
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr & cpuAddrMask {
	case 0x2000, 0x2001, 0x2003, 0x2005, 0x2006:
		return p.dataBuffer
	case 0x2002:
		p.writeToggle = false
		result := p.status | (p.dataBuffer & 0x1F)
		p.status &^= uint8(StatusVerticalBlank)
		return result
	case 0x2004:
		return p.primaryOAM.readData()
	case 0x2007:
		addr := p.v.register
		var result uint8
		if addr >= paletteStart && addr <= 0x3FFF {
			result = p.readPalette(addr)
		} else {
			result = p.dataBuffer
		}
		// the real PPU still issues the VRAM read even in palette range,
		// refilling the read-back buffer for the following access.
		p.requestRead(addr)
		p.incVRAMAddr()
		return result
	}
	return p.dataBuffer
}

// WriteRegister implements the CPU-visible side of $2000-$2007.
func (p *PPU) WriteRegister(addr uint16, data uint8) {
	switch addr & cpuAddrMask {
	case 0x2000:
		p.setCtrlFlags(data)
	case 0x2001:
		if !p.resetting {
			p.mask = data
		}
	case 0x2002:
		// read-only
	case 0x2003:
		p.primaryOAM.loadAddr(data)
	case 0x2004:
		p.primaryOAM.writeData(data)
		p.primaryOAM.incAddr()
	case 0x2005:
		if p.resetting {
			return
		}
		if !p.writeToggle {
			p.writeToggle = true
			p.t.setX(data)
		} else {
			p.writeToggle = false
			p.t.setY(data)
		}
	case 0x2006:
		if p.resetting {
			return
		}
		if !p.writeToggle {
			p.writeToggle = true
			p.t.setAddressHigh(data)
		} else {
			p.writeToggle = false
			p.t.setAddressLow(data)
			p.v.register = p.t.register
		}
	case 0x2007:
		addr := p.v.register
		if addr >= paletteStart && addr <= 0x3FFF {
			p.writePalette(addr, data)
		} else {
			p.requestWrite(addr, data)
		}
		p.incVRAMAddr()
	}
}

// Read implements bus.Device for the CPU-side mapping at $2000-$3FFF.
func (p *PPU) Read(addr uint16) (uint8, bool) {
	if addr < cpuAddrStart || addr > cpuAddrEnd {
		return 0, false
	}
	return p.ReadRegister(addr), true
}

// Write implements bus.Device for the CPU-side mapping at $2000-$3FFF.
func (p *PPU) Write(addr uint16, v uint8) {
	if addr < cpuAddrStart || addr > cpuAddrEnd {
		return
	}
	p.WriteRegister(addr, v)
}

// FrameOdd reports whether the frame currently being drawn is the odd one
// that skips a dot on the pre-render line, exposed purely for tests.
func (p *PPU) FrameOdd() bool { return !p.evenFrame }
