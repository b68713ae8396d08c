package render

import (
	"github.com/gdamore/tcell/v2"
)

// Screen adapts a tcell.Screen to Surface
// tcell addresses cells as (x, y); Screen translates from (row, col)
type Screen struct {
	screen  tcell.Screen
	palette Palette
}

// NewScreen wraps an initialized tcell screen
func NewScreen(screen tcell.Screen, palette Palette) *Screen {
	return &Screen{screen: screen, palette: palette}
}

// Write draws a symbol at the palette style for its intensity
func (s *Screen) Write(row, col int, symbol rune, in Intensity) {
	s.screen.SetContent(col, row, symbol, nil, s.palette.Style(in))
}

// Clear resets a cell to the default blank
func (s *Screen) Clear(row, col int) {
	s.screen.SetContent(col, row, Blank, nil, tcell.StyleDefault)
}

// Size returns (rows, cols)
func (s *Screen) Size() (rows, cols int) {
	width, height := s.screen.Size()
	return height, width
}

// Flush pushes pending cell changes to the terminal
func (s *Screen) Flush() {
	s.screen.Show()
}

// Decorate performs one-time terminal setup: border around the edge and hidden cursor
// Must run before the scheduler starts; the border is never redrawn
func Decorate(screen tcell.Screen) {
	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()
	if width < 2 || height < 2 {
		return
	}
	style := tcell.StyleDefault
	right, bottom := width-1, height-1

	for x := 1; x < right; x++ {
		screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
	screen.Show()
}
