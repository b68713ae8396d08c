package constants

// Star Blink Cycle (ticks held in each phase)
const (
	BlinkDimTicks     = 20
	BlinkNormalTicks  = 3
	BlinkBoldTicks    = 5
	BlinkPeriodTicks  = BlinkDimTicks + BlinkNormalTicks + BlinkBoldTicks + BlinkNormalTicks
	StarDelayMinTicks = 10
	StarDelayMaxTicks = 20
)

// StarSymbols are the glyphs a star is drawn with, picked at random per star
const StarSymbols = "+*.:"

// Projectile
const (
	// ProjectileRowSpeed is the default vertical velocity (cells per tick, negative is up)
	ProjectileRowSpeed = -0.3

	// ProjectileColSpeed is the default horizontal velocity
	ProjectileColSpeed = 0.0

	ProjectileFlashSmall = '*'
	ProjectileFlashLarge = 'O'
	ProjectileHorizontal = '-'
	ProjectileVertical   = '|'
)

// Ship
const (
	// ShipFrameHoldTicks is how many consecutive ticks each ship frame is shown
	ShipFrameHoldTicks = 2
)
