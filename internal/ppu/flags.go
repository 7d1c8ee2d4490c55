package ppu

// CtrlFlags are the bits of the $2000 PPUCTRL register.
type CtrlFlags uint8

const (
	CtrlBaseNameTableLow     CtrlFlags = 0x01
	CtrlBaseNameTableHigh    CtrlFlags = 0x02
	CtrlIncrementAcross      CtrlFlags = 0x04
	CtrlSpriteTableHigh      CtrlFlags = 0x08
	CtrlBackgroundPatternHigh CtrlFlags = 0x10
	CtrlSpriteSizeLarge      CtrlFlags = 0x20
	CtrlPPUMaster            CtrlFlags = 0x40
	CtrlNMIEnabled           CtrlFlags = 0x80
)

// MaskFlags are the bits of the $2001 PPUMASK register.
type MaskFlags uint8

const (
	MaskGreyscale        MaskFlags = 0x01
	MaskShowLeft8BG      MaskFlags = 0x02
	MaskShowLeft8Sprites MaskFlags = 0x04
	MaskShowBG           MaskFlags = 0x08
	MaskShowSprites      MaskFlags = 0x10
	MaskEmphasizeRed     MaskFlags = 0x20
	MaskEmphasizeGreen   MaskFlags = 0x40
	MaskEmphasizeBlue    MaskFlags = 0x80
)

// StatusFlags are the bits of the $2002 PPUSTATUS register.
type StatusFlags uint8

const (
	StatusSpriteOverflow StatusFlags = 0x20
	StatusSprite0Hit     StatusFlags = 0x40
	StatusVerticalBlank  StatusFlags = 0x80
)
