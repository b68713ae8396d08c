package animation

import (
	"math"

	"github.com/lixenwraith/starfield/audio"
	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/render"
	"github.com/lixenwraith/starfield/vmath"
)

type projectileStage uint8

const (
	stageFlashSmall projectileStage = iota
	stageFlashLarge
	stageFlying
	stageDone
)

// Projectile is a shot: two-tick muzzle flash, then straight flight until it leaves the interior
type Projectile struct {
	row, col           float64
	startRow, startCol float64
	rowSpeed           float64
	colSpeed           float64
	symbol             rune
	stage              projectileStage

	// Movement ticks taken; position is start + moves*speed
	moves int

	// Cell written on the previous step, cleared on the next
	drawn              bool
	drawnRow, drawnCol int
}

// NewProjectile creates a shot at (row, col) moving by (rowSpeed, colSpeed) per tick
// The notifier, if any, is told once that a shot was fired
func NewProjectile(row, col, rowSpeed, colSpeed float64, notifier audio.Notifier) *Projectile {
	symbol := constants.ProjectileVertical
	if colSpeed != 0 {
		symbol = constants.ProjectileHorizontal
	}

	if notifier != nil {
		notifier.NotifyFire()
	}

	return &Projectile{
		row:      row,
		col:      col,
		startRow: row,
		startCol: col,
		rowSpeed: rowSpeed,
		colSpeed: colSpeed,
		symbol:   symbol,
	}
}

// Step advances the shot one tick
func (p *Projectile) Step(s render.Surface) (bool, error) {
	switch p.stage {
	case stageFlashSmall:
		p.plot(s, constants.ProjectileFlashSmall)
		p.stage = stageFlashLarge
		return false, nil

	case stageFlashLarge:
		p.plot(s, constants.ProjectileFlashLarge)
		p.stage = stageFlying
		return false, nil

	case stageFlying:
		p.erase(s)
		maxRow, maxCol := vmath.MaxDrawableBounds(s)
		limitRow, limitCol := float64(maxRow), float64(maxCol)

		// A shot fired from the border or beyond never flies
		if p.moves == 0 {
			if !vmath.Inside(p.row, p.col, limitRow, limitCol) {
				p.stage = stageDone
				return true, nil
			}
		}

		p.moves++
		p.row = p.startRow + float64(p.moves)*p.rowSpeed
		p.col = p.startCol + float64(p.moves)*p.colSpeed
		if !vmath.Inside(p.row, p.col, limitRow, limitCol) {
			p.stage = stageDone
			return true, nil
		}
		p.plot(s, p.symbol)
		return false, nil

	default:
		return true, ErrFinished
	}
}

// plot writes r at the rounded position when that cell is on the surface
func (p *Projectile) plot(s render.Surface, r rune) {
	rows, cols := s.Size()
	row, col := int(math.Round(p.row)), int(math.Round(p.col))
	if !vmath.Contains(row, col, rows, cols) {
		p.drawn = false
		return
	}
	s.Write(row, col, r, render.Normal)
	p.drawn = true
	p.drawnRow, p.drawnCol = row, col
}

func (p *Projectile) erase(s render.Surface) {
	if p.drawn {
		s.Clear(p.drawnRow, p.drawnCol)
		p.drawn = false
	}
}

// Position returns the current real-valued position
func (p *Projectile) Position() (row, col float64) {
	return p.row, p.col
}

// Symbol returns the in-flight glyph
func (p *Projectile) Symbol() rune {
	return p.symbol
}

// Done reports whether the shot has left the interior
func (p *Projectile) Done() bool {
	return p.stage == stageDone
}
