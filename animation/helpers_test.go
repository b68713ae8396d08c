package animation

import (
	"github.com/lixenwraith/starfield/input"
	"github.com/lixenwraith/starfield/render"
)

type write struct {
	row, col int
	symbol   rune
	in       render.Intensity
}

// recordingSurface wraps a Buffer and logs every write and clear
type recordingSurface struct {
	*render.Buffer
	writes []write
	clears int
}

func newRecordingSurface(rows, cols int) *recordingSurface {
	return &recordingSurface{Buffer: render.NewBuffer(rows, cols)}
}

func (r *recordingSurface) Write(row, col int, symbol rune, in render.Intensity) {
	r.writes = append(r.writes, write{row, col, symbol, in})
	r.Buffer.Write(row, col, symbol, in)
}

func (r *recordingSurface) Clear(row, col int) {
	r.clears++
	r.Buffer.Clear(row, col)
}

func (r *recordingSurface) reset() {
	r.writes = r.writes[:0]
	r.clears = 0
}

// scriptedSource replays controls, then repeats the last one
type scriptedSource struct {
	script []input.Controls
	polls  int
}

func (s *scriptedSource) Poll() input.Controls {
	s.polls++
	if len(s.script) == 0 {
		return input.Neutral
	}
	c := s.script[0]
	if len(s.script) > 1 {
		s.script = s.script[1:]
	}
	return c
}

// countingNotifier counts fire notifications
type countingNotifier struct {
	fired int
}

func (c *countingNotifier) NotifyFire() { c.fired++ }

func step(t interface{ Fatalf(string, ...any) }, task Task, s render.Surface) bool {
	done, err := task.Step(s)
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	return done
}
