package constants

import "time"

// Animation Loop Timing
const (
	// TickInterval is the fixed scheduling quantum; every active task is resumed once per tick
	TickInterval = 100 * time.Millisecond
)

// Setup Defaults
const (
	// StarCount is the number of blinking stars placed at setup
	StarCount = 190

	// ShipStep is the ship displacement in cells per tick of held input
	ShipStep = 15

	// Margin keeps stars off the border row/column
	Margin = 1
)
