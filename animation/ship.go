package animation

import (
	"math"

	"github.com/lixenwraith/starfield/asset"
	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/input"
	"github.com/lixenwraith/starfield/render"
	"github.com/lixenwraith/starfield/vmath"
)

// FireFunc receives the muzzle position when the player requests a shot
type FireFunc func(row, col float64)

// Ship is the player-controlled frame animation
// Frames rotate every ShipFrameHoldTicks; position follows input, clamped to the interior
type Ship struct {
	row, col  float64
	step      float64
	frames    []asset.Frame
	frameRows int
	frameCols int
	source    input.Source
	ticks     int

	// OnFire, if set, is called on a fire request; spawning policy belongs to the caller
	OnFire FireFunc

	// Frame written on the previous step, erased on the next
	drawn              bool
	drawnRow, drawnCol int
	drawnFrame         int
}

// NewShip creates a ship with its top-left corner at (row, col)
// A nil source behaves as permanently neutral input
func NewShip(row, col, step float64, frames []asset.Frame, source input.Source) (*Ship, error) {
	if len(frames) == 0 {
		return nil, asset.ErrNoFrames
	}
	if source == nil {
		source = input.SourceFunc(func() input.Controls { return input.Neutral })
	}

	frameRows, frameCols := asset.Extent(frames)
	return &Ship{
		row:       row,
		col:       col,
		step:      step,
		frames:    frames,
		frameRows: frameRows,
		frameCols: frameCols,
		source:    source,
	}, nil
}

// Step erases the previous frame, applies input, and draws the next frame; never completes
func (sh *Ship) Step(s render.Surface) (bool, error) {
	if sh.drawn {
		render.DrawFrame(s, sh.drawnRow, sh.drawnCol, sh.frames[sh.drawnFrame], true)
		sh.drawn = false
	}

	c := sh.source.Poll()

	maxRow, maxCol := vmath.MaxDrawableBounds(s)
	sh.row = vmath.Clamp(sh.row+float64(c.Rows)*sh.step, 1, float64(maxRow-sh.frameRows))
	sh.col = vmath.Clamp(sh.col+float64(c.Cols)*sh.step, 1, float64(maxCol-sh.frameCols))

	idx := (sh.ticks / constants.ShipFrameHoldTicks) % len(sh.frames)
	sh.ticks++

	row, col := int(math.Round(sh.row)), int(math.Round(sh.col))
	render.DrawFrame(s, row, col, sh.frames[idx], false)
	sh.drawn = true
	sh.drawnRow, sh.drawnCol, sh.drawnFrame = row, col, idx

	if c.Fire && sh.OnFire != nil {
		sh.OnFire(sh.row-1, sh.col+float64(sh.frameCols/2))
	}
	return false, nil
}

// Position returns the top-left corner of the ship
func (sh *Ship) Position() (row, col float64) {
	return sh.row, sh.col
}

// FrameIndex returns the index of the frame drawn on the last step
func (sh *Ship) FrameIndex() int {
	return sh.drawnFrame
}

// Extent returns the bounding size of the ship frames
func (sh *Ship) Extent() (rows, cols int) {
	return sh.frameRows, sh.frameCols
}
