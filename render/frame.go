package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/starfield/asset"
)

// DrawFrame writes the non-space cells of f with its top-left corner at (row, col)
// With erase set, the same cells are cleared instead; cells off the surface are skipped
func DrawFrame(s Surface, row, col int, f asset.Frame, erase bool) {
	rows, cols := s.Size()

	for dy, line := range f.Lines() {
		y := row + dy
		if y < 0 {
			continue
		}
		if y >= rows {
			break
		}

		x := col
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if x >= cols {
				break
			}
			if x >= 0 && r != Blank {
				if erase {
					s.Clear(y, x)
				} else {
					s.Write(y, x, r, Normal)
				}
			}
			x += max(w, 1)
		}
	}
}
