package animation

import (
	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/render"
)

// Phase is a Blinker state
type Phase uint8

const (
	PhaseDelay Phase = iota
	PhaseDim
	PhaseNormal1
	PhaseBold
	PhaseNormal2
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseDelay:
		return "Delay"
	case PhaseDim:
		return "Dim"
	case PhaseNormal1:
		return "Normal1"
	case PhaseBold:
		return "Bold"
	case PhaseNormal2:
		return "Normal2"
	default:
		return "Unknown"
	}
}

type blinkStage struct {
	phase     Phase
	intensity render.Intensity
	hold      int
}

// blinkCycle loops forever; the startup delay is not part of it
var blinkCycle = [...]blinkStage{
	{PhaseDim, render.Dim, constants.BlinkDimTicks},
	{PhaseNormal1, render.Normal, constants.BlinkNormalTicks},
	{PhaseBold, render.Bold, constants.BlinkBoldTicks},
	{PhaseNormal2, render.Normal, constants.BlinkNormalTicks},
}

// Blinker is a star cycling Dim, Normal, Bold, Normal after a one-time delay
// The symbol is written once on entering a stage; the surface retains it
type Blinker struct {
	row, col  int
	symbol    rune
	delay     int
	stage     int // index into blinkCycle, -1 until the delay has elapsed
	remaining int
}

// NewBlinker creates a star; delay is the number of ticks drawn as nothing
func NewBlinker(row, col int, symbol rune, delay int) *Blinker {
	return &Blinker{
		row:    row,
		col:    col,
		symbol: symbol,
		delay:  max(delay, 0),
		stage:  -1,
	}
}

// Step advances the blink state machine; never completes
func (b *Blinker) Step(s render.Surface) (bool, error) {
	if b.delay > 0 {
		b.delay--
		return false, nil
	}

	if b.remaining == 0 {
		b.stage = (b.stage + 1) % len(blinkCycle)
		st := blinkCycle[b.stage]
		s.Write(b.row, b.col, b.symbol, st.intensity)
		b.remaining = st.hold
	}
	b.remaining--
	return false, nil
}

// Phase returns the current state
func (b *Blinker) Phase() Phase {
	if b.stage < 0 {
		return PhaseDelay
	}
	return blinkCycle[b.stage].phase
}

// Remaining returns ticks left in the current state
func (b *Blinker) Remaining() int {
	if b.stage < 0 {
		return b.delay
	}
	return b.remaining
}

// Intensity returns the intensity of the current drawing state
// ok is false during the startup delay when nothing is drawn
func (b *Blinker) Intensity() (in render.Intensity, ok bool) {
	if b.stage < 0 {
		return render.Normal, false
	}
	return blinkCycle[b.stage].intensity, true
}

// Position returns the star cell
func (b *Blinker) Position() (row, col int) {
	return b.row, b.col
}
