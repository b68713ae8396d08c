package animation

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/render"
	"github.com/lixenwraith/starfield/vmath"
)

// runProjectile steps p until done and returns the number of steps taken
func runProjectile(t *testing.T, p *Projectile, s render.Surface, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		if step(t, p, s) {
			return i
		}
	}
	t.Fatalf("projectile did not complete within %d steps", limit)
	return 0
}

// TestProjectileScenarioUpward covers start (10,10), velocity (-1,0), max_row 20
func TestProjectileScenarioUpward(t *testing.T) {
	s := newRecordingSurface(21, 40)
	p := NewProjectile(10, 10, -1, 0, nil)

	// Muzzle flash
	step(t, p, s)
	step(t, p, s)
	if len(s.writes) != 2 || s.writes[0].symbol != '*' || s.writes[1].symbol != 'O' {
		t.Fatalf("muzzle flash writes = %+v, want '*' then 'O'", s.writes)
	}

	s.reset()
	moves := 0
	for {
		done := step(t, p, s)
		if done {
			break
		}
		moves++
		if moves > 100 {
			t.Fatal("projectile never completed")
		}
	}

	if moves != 9 {
		t.Errorf("movement ticks = %d, want 9", moves)
	}
	if len(s.writes) != 9 {
		t.Fatalf("in-flight writes = %d, want 9", len(s.writes))
	}
	for i, w := range s.writes {
		if w.row != 9-i || w.col != 10 || w.symbol != '|' {
			t.Errorf("write %d = %+v, want '|' at (%d, 10)", i, w, 9-i)
		}
	}
	if !p.Done() {
		t.Error("Done() = false after completion")
	}

	// Every drawn cell has been cleared again
	s.Flush()
	for row := 0; row < 21; row++ {
		if c, _ := s.Visible(row, 10); c.Rune != render.Blank {
			t.Errorf("cell (%d, 10) = %q, want blank after completion", row, c.Rune)
		}
	}
}

// TestProjectileLifetime verifies completion after ceil(distance/|v|) ticks past the muzzle flash
// and that every in-flight position is p+kv strictly inside bounds
func TestProjectileLifetime(t *testing.T) {
	tests := []struct {
		name               string
		row, col           float64
		rowSpeed, colSpeed float64
		distance           float64
		speed              float64
	}{
		{"Up", 10, 10, -1, 0, 10, 1},
		{"UpSlow", 10, 10, -0.3, 0, 10, 0.3},
		{"UpFineFromFirstRow", 1, 10, -0.1, 0, 1, 0.1},
		{"Down", 5, 10, 2, 0, 20 - 5, 2},
		{"Right", 10, 10, 0, 1.5, 39 - 10, 1.5},
		{"Left", 10, 7, 0, -0.5, 7, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordingSurface(21, 40)
			maxRow, maxCol := vmath.MaxDrawableBounds(s)
			p := NewProjectile(tt.row, tt.col, tt.rowSpeed, tt.colSpeed, nil)

			step(t, p, s)
			step(t, p, s)

			expectedTicks := int(math.Ceil(tt.distance / tt.speed))
			ticks := 0
			for {
				ticks++
				if step(t, p, s) {
					break
				}
				if ticks > expectedTicks {
					t.Fatalf("still alive after %d ticks, want completion at %d", ticks, expectedTicks)
				}

				row, col := p.Position()
				wantRow := tt.row + float64(ticks)*tt.rowSpeed
				wantCol := tt.col + float64(ticks)*tt.colSpeed
				if math.Abs(row-wantRow) > 1e-9 || math.Abs(col-wantCol) > 1e-9 {
					t.Fatalf("tick %d: position (%v, %v), want (%v, %v)", ticks, row, col, wantRow, wantCol)
				}
				if !vmath.Inside(row, col, float64(maxRow), float64(maxCol)) {
					t.Fatalf("tick %d: alive at (%v, %v) outside bounds", ticks, row, col)
				}
			}

			if ticks != expectedTicks {
				t.Errorf("completed after %d ticks, want %d", ticks, expectedTicks)
			}
		})
	}
}

func TestProjectileSymbolFollowsVelocity(t *testing.T) {
	if got := NewProjectile(5, 5, -0.3, 0, nil).Symbol(); got != constants.ProjectileVertical {
		t.Errorf("vertical symbol = %q, want %q", got, constants.ProjectileVertical)
	}
	if got := NewProjectile(5, 5, 0, 1, nil).Symbol(); got != constants.ProjectileHorizontal {
		t.Errorf("horizontal symbol = %q, want %q", got, constants.ProjectileHorizontal)
	}
	if got := NewProjectile(5, 5, -1, 1, nil).Symbol(); got != constants.ProjectileHorizontal {
		t.Errorf("diagonal symbol = %q, want %q", got, constants.ProjectileHorizontal)
	}
}

// TestProjectileNotifiesOnCreation verifies the fire notification is issued once, at creation
func TestProjectileNotifiesOnCreation(t *testing.T) {
	n := &countingNotifier{}
	p := NewProjectile(10, 10, -1, 0, n)
	if n.fired != 1 {
		t.Fatalf("notifications after creation = %d, want 1", n.fired)
	}

	runProjectile(t, p, newRecordingSurface(21, 40), 100)
	if n.fired != 1 {
		t.Errorf("notifications after flight = %d, want 1", n.fired)
	}
}

// TestProjectileOnBoundary verifies a shot created on or past the border completes right after the flash
func TestProjectileOnBoundary(t *testing.T) {
	tests := []struct {
		name     string
		row, col float64
		rowSpeed float64
	}{
		{"TopBorderInward", 0, 10, 1},
		{"BottomBorderOutward", 20, 10, 1},
		{"Outside", 30, 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordingSurface(21, 40)
			p := NewProjectile(tt.row, tt.col, tt.rowSpeed, 0, nil)
			if steps := runProjectile(t, p, s, 10); steps != 3 {
				t.Errorf("completed on step %d, want 3", steps)
			}
			for _, w := range s.writes {
				if w.symbol == '|' {
					t.Errorf("in-flight symbol drawn at (%d, %d)", w.row, w.col)
				}
			}
		})
	}
}

func TestProjectileSkipsOffSurfaceFlash(t *testing.T) {
	s := newRecordingSurface(21, 40)
	p := NewProjectile(30, 10, -1, 0, nil)

	step(t, p, s)
	step(t, p, s)
	if len(s.writes) != 0 {
		t.Errorf("writes for off-surface flash = %d, want 0", len(s.writes))
	}
}

func TestProjectileStepAfterDone(t *testing.T) {
	s := newRecordingSurface(21, 40)
	p := NewProjectile(1, 10, -1, 0, nil)
	runProjectile(t, p, s, 10)

	done, err := p.Step(s)
	if !done || !errors.Is(err, ErrFinished) {
		t.Errorf("Step after done = (%v, %v), want (true, ErrFinished)", done, err)
	}
}
