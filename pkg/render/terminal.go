package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row shows two framebuffer rows using the upper half
// block (▀) with fg = top pixel and bg = bottom pixel, so the framebuffer
// height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: color.Color(topColor.RGBA()),
					Bg: color.Color(botColor.RGBA()),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// TerminalRenderer presents a framebuffer on an ultraviolet terminal.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int // Terminal columns
	height int // Terminal rows
}

// NewTerminalRenderer creates a presenter for a terminal of the given size.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{term: term, width: width, height: height}
}

// FramebufferSize returns the pixel dimensions the framebuffer should have:
// one pixel per column, two per row (half-block rendering).
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.width, t.height * 2
}

// Render writes the framebuffer contents into the terminal's cell buffer.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.term, uv.Rect(0, 0, t.width, t.height))
}

// Flush displays the pending cells.
func (t *TerminalRenderer) Flush() error {
	return t.term.Display()
}
