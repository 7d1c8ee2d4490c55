// Package graphics hosts the two presentation surfaces this core ships:
// an ebiten window for normal play and a bubbletea/lipgloss terminal
// renderer for headless-box debugging sessions.
package graphics

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gones/internal/console"
	"gones/internal/input"
)

const (
	nesWidth  = 256
	nesHeight = 240
)

// EbitenGame implements ebiten.Game, driving the console one frame at a
// time and presenting its pixel output through a single reused image.
type EbitenGame struct {
	console *console.Console
	scale   int
	showFPS bool

	frame  *image.RGBA
	buffer *ebiten.Image
}

// NewEbitenGame returns a game that advances c by one frame per Update.
func NewEbitenGame(c *console.Console, scale int, showFPS bool) *EbitenGame {
	g := &EbitenGame{
		console: c,
		scale:   scale,
		showFPS: showFPS,
		frame:   image.NewRGBA(image.Rect(0, 0, nesWidth, nesHeight)),
		buffer:  ebiten.NewImage(nesWidth, nesHeight),
	}
	c.PPU.PlotPixel = g.plotPixel
	return g
}

func (g *EbitenGame) plotPixel(x, y uint16, r, gr, b uint8) {
	idx := (int(y)*nesWidth + int(x)) * 4
	px := g.frame.Pix[idx : idx+4 : idx+4]
	px[0], px[1], px[2], px[3] = r, gr, b, 0xFF
}

var keyMap1 = map[ebiten.Key]input.Button{
	ebiten.KeyJ:      input.ButtonA,
	ebiten.KeyK:      input.ButtonB,
	ebiten.KeySpace:  input.ButtonSelect,
	ebiten.KeyEnter:  input.ButtonStart,
	ebiten.KeyW:      input.ButtonUp,
	ebiten.KeyS:      input.ButtonDown,
	ebiten.KeyA:      input.ButtonLeft,
	ebiten.KeyD:      input.ButtonRight,
}

// Update advances the emulated console by exactly one video frame, sampling
// the keyboard into controller port 1 first.
func (g *EbitenGame) Update() error {
	for key, button := range keyMap1 {
		g.console.Ports.One.SetButton(button, ebiten.IsKeyPressed(key))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.console.RunFrame()
	return nil
}

// Draw blits the accumulated frame buffer to the screen.
func (g *EbitenGame) Draw(screen *ebiten.Image) {
	g.buffer.WritePixels(g.frame.Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.buffer, op)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
	}
}

// Layout reports the window's logical pixel size.
func (g *EbitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return nesWidth * g.scale, nesHeight * g.scale
}
