package ppu

// oamData is the shared model for both primary (256-byte) and secondary
// (32-byte) OAM: an address register plus independent read/write-enable
// gates, since hardware disables each side at different points of sprite
// evaluation.
type oamData struct {
	addr         uint8
	table        []uint8
	addrMask     uint8
	readEnabled  bool
	writeEnabled bool
	hasSprite0   bool
}

func newOAMData(size int) *oamData {
	return &oamData{
		table:        make([]uint8, size),
		addrMask:     uint8(size - 1),
		readEnabled:  true,
		writeEnabled: true,
	}
}

func (o *oamData) loadAddr(addr uint8) uint8 {
	old := o.addr
	o.addr = addr & o.addrMask
	return old
}

func (o *oamData) incAddr() {
	o.addr = (o.addr + 1) & o.addrMask
}

func (o *oamData) writeData(data uint8) uint8 {
	old := o.table[o.addr]
	if o.writeEnabled {
		o.table[o.addr] = data
	}
	return old
}

func (o *oamData) readData() uint8 {
	if o.readEnabled {
		return o.table[o.addr]
	}
	return 0xFF
}

func (o *oamData) isFull() bool {
	return int(o.addr) == len(o.table)-1
}

// spriteEvalState walks the 8-step read/compare/copy cycle the real PPU
// runs once per OAM entry during sprite evaluation (ticks 65-256).
type spriteEvalState int

const (
	evalReadY spriteEvalState = iota
	evalWriteCompareY
	evalReadTileIndex
	evalWriteTileIndex
	evalReadAttributes
	evalWriteTileAttributes
	evalReadX
	evalWriteX
)

// spriteRowData holds one slot's worth of latched, shifting sprite pixel
// state for the scanline currently being rendered.
type spriteRowData struct {
	y, tileID, attributes uint8
	x                     int16
	sprite0               bool
	patternHigh, patternLow uint8
}

func newSpriteRowData() spriteRowData {
	return spriteRowData{y: 0xFF, tileID: 0xFF, attributes: 0xFF, x: 0xFF, patternHigh: 0xFF, patternLow: 0xFF}
}

// patternAddress computes the low-plane pattern fetch address for this
// sprite's row on scanline y; callers OR in 0x08 for the high plane.
func (s *spriteRowData) patternAddress(largeSprite, spriteHighMode bool, y uint16) uint16 {
	yOffset := y - uint16(s.y)
	spriteHigh := spriteHighMode
	if largeSprite {
		spriteHigh = yOffset > 7
	}
	if s.verticalFlip() {
		maxHeight := uint16(7)
		if largeSprite {
			maxHeight = 15
		}
		yOffset = maxHeight - yOffset
	}
	var base uint16
	if spriteHigh {
		base = 0x1000
	}
	return base | (uint16(s.tileID) << 4) | (yOffset & 0x07)
}

func (s *spriteRowData) paletteNumberAndColor() (uint16, uint16) {
	color := s.pixelColorNumber()
	if color == 0 {
		return 0, 0
	}
	return 0x04 | s.paletteNumber(), color
}

func (s *spriteRowData) paletteNumber() uint16  { return uint16(s.attributes & 0x03) }
func (s *spriteRowData) pixelColorNumber() uint16 {
	return uint16(((s.patternHigh >> 6) & 0x02) | ((s.patternLow >> 7) & 0x01))
}

// backgroundPriority reports whether the background should be drawn in
// front of this sprite.
func (s *spriteRowData) backgroundPriority() bool { return s.attributes&0x20 != 0 }
func (s *spriteRowData) horizontalFlip() bool      { return s.attributes&0x40 != 0 }
func (s *spriteRowData) verticalFlip() bool        { return s.attributes&0x80 != 0 }

func (s *spriteRowData) shift() {
	if s.x != 255 {
		if s.live() {
			s.patternHigh <<= 1
			s.patternLow <<= 1
		}
		s.x--
	}
}

// live reports whether this slot's X counter has reached the pixel column
// currently being drawn.
func (s *spriteRowData) live() bool { return s.x > -8 && s.x <= 0 }

func (s *spriteRowData) setPatternHigh(data uint8) {
	if s.horizontalFlip() {
		data = reverseByte(data)
	}
	s.patternHigh = data
}

func (s *spriteRowData) setPatternLow(data uint8) {
	if s.horizontalFlip() {
		data = reverseByte(data)
	}
	s.patternLow = data
}

func reverseByte(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// spriteRowSet holds the eight sprites latched for the scanline about to be
// drawn, shifted one pixel per dot during rendering.
type spriteRowSet struct {
	sprites [8]spriteRowData
	current int
}

func newSpriteRowSet() spriteRowSet {
	s := spriteRowSet{}
	for i := range s.sprites {
		s.sprites[i] = newSpriteRowData()
	}
	return s
}

func (s *spriteRowSet) setCurrent(n int)  { s.current = n }
func (s *spriteRowSet) incCurrent()       { s.current = (s.current + 1) & 0x07 }
func (s *spriteRowSet) currentSprite() *spriteRowData { return &s.sprites[s.current] }

func (s *spriteRowSet) shift() {
	for i := range s.sprites {
		s.sprites[i].shift()
	}
}

// firstOpaque returns the highest-priority (lowest-index) currently-visible
// sprite with a non-transparent pixel, or nil if none is live.
func (s *spriteRowSet) firstOpaque() *spriteRowData {
	for i := range s.sprites {
		if s.sprites[i].live() && s.sprites[i].pixelColorNumber() != 0 {
			return &s.sprites[i]
		}
	}
	return nil
}
