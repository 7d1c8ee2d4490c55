package graphics

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gones/internal/console"
)

// terminalCols/terminalRows is the block-character downsample resolution
// of the 256x240 frame buffer: one character cell covers an 8x10 pixel
// block, roughly matching a monospace cell's aspect ratio.
const (
	terminalCols = nesWidth / 8
	terminalRows = nesHeight / 10
)

var statusStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// terminalModel is a tea.Model that single-steps or free-runs the console
// and renders its frame buffer as a grid of colored block characters
// alongside a CPU register dump.
type terminalModel struct {
	console *console.Console
	frame   *[nesWidth * nesHeight * 4]byte
	running bool
	frames  uint64
	err     error
}

// NewTerminalModel wires a PlotPixel sink into c and returns a tea.Model
// ready to run.
func NewTerminalModel(c *console.Console) tea.Model {
	var buf [nesWidth * nesHeight * 4]byte
	m := &terminalModel{console: c, frame: &buf}
	c.PPU.PlotPixel = func(x, y uint16, r, g, b uint8) {
		idx := (int(y)*nesWidth + int(x)) * 4
		buf[idx], buf[idx+1], buf[idx+2] = r, g, b
	}
	return m
}

type frameMsg struct{}

func (m *terminalModel) Init() tea.Cmd {
	return nil
}

func (m *terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			m.console.RunFrame()
			m.frames++
		case "r":
			m.running = !m.running
			if m.running {
				return m, m.tick()
			}
		}
	case frameMsg:
		if m.running {
			m.console.RunFrame()
			m.frames++
			return m, m.tick()
		}
	}
	return m, nil
}

func (m *terminalModel) tick() tea.Cmd {
	return func() tea.Msg { return frameMsg{} }
}

// View renders a coarse preview of the frame buffer next to a register
// dump, matching the side-by-side layout the debugger this is grounded on
// uses for its page table and status panes.
func (m *terminalModel) View() string {
	preview := m.renderPreview()
	status := statusStyle.Render(fmt.Sprintf(
		"frame  %d\nrunning %v\n\n%s",
		m.frames, m.running, spew.Sdump(m.console.CPU),
	))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, preview, status),
		"",
		"space/n: step frame   r: run/pause   q: quit",
	)
}

func (m *terminalModel) renderPreview() string {
	var b strings.Builder
	for cy := 0; cy < terminalRows; cy++ {
		for cx := 0; cx < terminalCols; cx++ {
			r, g, bl := m.sampleBlock(cx, cy)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, bl)))
			b.WriteString(style.Render("█"))
		}
		b.WriteByte('\n')
	}
	return statusStyle.Render(b.String())
}

func (m *terminalModel) sampleBlock(cx, cy int) (r, g, b uint8) {
	px, py := cx*8, cy*10
	idx := (py*nesWidth + px) * 4
	if idx+2 >= len(m.frame) {
		return 0, 0, 0
	}
	return m.frame[idx], m.frame[idx+1], m.frame[idx+2]
}

// Run starts the bubbletea program until the user quits.
func Run(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
