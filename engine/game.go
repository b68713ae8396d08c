package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/starfield/animation"
	"github.com/lixenwraith/starfield/asset"
	"github.com/lixenwraith/starfield/audio"
	"github.com/lixenwraith/starfield/config"
	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/input"
	"github.com/lixenwraith/starfield/render"
	"github.com/lixenwraith/starfield/vmath"
)

// Deps are the collaborators a Game draws on; only Surface and Frames are required
type Deps struct {
	Surface  render.Surface
	Input    input.Source
	Notifier audio.Notifier
	Frames   []asset.Frame
	Rand     *rand.Rand
	Logger   *slog.Logger
	Clock    Clock
}

// Game is the assembled scene: stars, the opening shot, and the ship
type Game struct {
	cfg       *config.Config
	deps      Deps
	scheduler *Scheduler
	stars     []*animation.Blinker
	ship      *animation.Ship
}

// NewGame validates the surface against the ship frames and populates the scheduler
// Task order is stars, then the initial projectile, then the ship
func NewGame(cfg *config.Config, deps Deps, maxTicks uint64) (*Game, error) {
	if deps.Surface == nil {
		return nil, errors.New("game requires a surface")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rows, cols := deps.Surface.Size()
	if err := asset.Fit(deps.Frames, rows, cols); err != nil {
		return nil, err
	}

	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if deps.Notifier == nil {
		deps.Notifier = audio.Silent{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := []Option{WithLogger(deps.Logger)}
	if deps.Clock != nil {
		opts = append(opts, WithClock(deps.Clock))
	}

	g := &Game{
		cfg:  cfg,
		deps: deps,
		scheduler: NewScheduler(SchedulerConfig{
			TickInterval: cfg.Tick,
			MaxTicks:     maxTicks,
		}, deps.Surface, opts...),
	}

	g.placeStars(vmath.MaxDrawableBounds(deps.Surface))

	g.scheduler.Add(animation.NewProjectile(
		float64(rows/2-1), float64(cols/2+2),
		cfg.Projectile.RowSpeed, cfg.Projectile.ColSpeed,
		deps.Notifier,
	))

	ship, err := animation.NewShip(float64(rows/2), float64(cols/2), cfg.Step, deps.Frames, deps.Input)
	if err != nil {
		return nil, err
	}
	if cfg.PlayerFire {
		ship.OnFire = g.fire
	}
	g.ship = ship
	g.scheduler.Add(ship)

	deps.Logger.Info("scene ready",
		"rows", rows, "cols", cols,
		"stars", len(g.stars),
		"frames", len(deps.Frames),
		"player_fire", cfg.PlayerFire)
	return g, nil
}

// placeStars scatters stars strictly inside the border with a random symbol and delay
func (g *Game) placeStars(maxRow, maxCol int) {
	symbols := []rune(constants.StarSymbols)
	delaySpan := constants.StarDelayMaxTicks - constants.StarDelayMinTicks + 1

	g.stars = make([]*animation.Blinker, 0, g.cfg.Stars)
	for range g.cfg.Stars {
		row := constants.Margin + g.deps.Rand.IntN(maxRow-constants.Margin)
		col := constants.Margin + g.deps.Rand.IntN(maxCol-constants.Margin)
		symbol := symbols[g.deps.Rand.IntN(len(symbols))]
		delay := constants.StarDelayMinTicks + g.deps.Rand.IntN(delaySpan)

		b := animation.NewBlinker(row, col, symbol, delay)
		g.stars = append(g.stars, b)
		g.scheduler.Add(b)
	}
}

// fire spawns a player shot; it joins the pool on the next tick
func (g *Game) fire(row, col float64) {
	g.scheduler.Add(animation.NewProjectile(
		row, col,
		g.cfg.Projectile.RowSpeed, g.cfg.Projectile.ColSpeed,
		g.deps.Notifier,
	))
}

// Run drives the scheduler until ctx is cancelled, the tick limit is hit, or a task fails
func (g *Game) Run(ctx context.Context) error {
	return g.scheduler.Run(ctx)
}

// Scheduler exposes the underlying scheduler
func (g *Game) Scheduler() *Scheduler {
	return g.scheduler
}

// Stars returns the placed stars in scheduling order
func (g *Game) Stars() []*animation.Blinker {
	return g.stars
}

// Ship returns the player ship
func (g *Game) Ship() *animation.Ship {
	return g.ship
}
