package render

import (
	"fmt"

	"github.com/fogleman/ease"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starfield/constants"
)

// Palette maps each Intensity to a foreground shade of one base color
type Palette struct {
	shades [3]tcell.Color
}

var intensityLevels = [3]float64{
	Normal: constants.IntensityLevelNormal,
	Dim:    constants.IntensityLevelDim,
	Bold:   constants.IntensityLevelBold,
}

// NewPalette derives intensity shades by blending from background toward base in Lab space
// Levels are passed through an in-out quadratic curve so dim stays clearly darker than normal
func NewPalette(baseHex string) (Palette, error) {
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return Palette{}, fmt.Errorf("palette color %q: %w", baseHex, err)
	}
	bg, err := colorful.Hex(constants.BackgroundColor)
	if err != nil {
		return Palette{}, fmt.Errorf("background color: %w", err)
	}

	var p Palette
	for i, level := range intensityLevels {
		c := bg.BlendLab(base, ease.InOutQuad(level)).Clamped()
		r, g, b := c.RGB255()
		p.shades[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return p, nil
}

// Color returns the shade for an intensity, falling back to Normal
func (p Palette) Color(in Intensity) tcell.Color {
	if int(in) >= len(p.shades) {
		return p.shades[Normal]
	}
	return p.shades[in]
}

// Style returns the tcell style for an intensity: shade plus dim/bold attribute
func (p Palette) Style(in Intensity) tcell.Style {
	style := tcell.StyleDefault.Foreground(p.Color(in))
	switch in {
	case Dim:
		style = style.Dim(true)
	case Bold:
		style = style.Bold(true)
	}
	return style
}
