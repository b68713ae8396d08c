package audio

// Notifier receives fire-and-forget "shot fired" events
type Notifier interface {
	NotifyFire()
}

// Silent discards notifications
type Silent struct{}

// NotifyFire does nothing
func (Silent) NotifyFire() {}

// Beeper is the subset of tcell.Screen that rings the terminal bell
type Beeper interface {
	Beep() error
}

// Bell rings the terminal bell on fire
type Bell struct {
	beeper Beeper
}

// NewBell wraps a terminal screen
func NewBell(b Beeper) *Bell {
	return &Bell{beeper: b}
}

// NotifyFire rings the bell; failures are ignored since the event has no observer
func (b *Bell) NotifyFire() {
	if b.beeper == nil {
		return
	}
	_ = b.beeper.Beep()
}
