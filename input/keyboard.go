package input

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrQuit is returned by Keyboard.Run when a quit key is pressed
var ErrQuit = errors.New("quit requested")

// pendingCapacity bounds intents buffered between two polls; extra presses are dropped
const pendingCapacity = 64

// Keyboard is a Source fed by tcell key events
// Run consumes events on its own goroutine; Poll drains from the animation goroutine
type Keyboard struct {
	table   *KeyTable
	pending chan Intent
}

// NewKeyboard creates a keyboard source; nil table selects DefaultKeyTable
func NewKeyboard(table *KeyTable) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{
		table:   table,
		pending: make(chan Intent, pendingCapacity),
	}
}

// Run forwards resolved intents until ctx ends, events closes, or a quit key arrives
func (k *Keyboard) Run(ctx context.Context, events <-chan tcell.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			in := k.table.Resolve(key)
			switch in.Type {
			case IntentNone:
				continue
			case IntentQuit:
				return ErrQuit
			}
			select {
			case k.pending <- in:
			default:
			}
		}
	}
}

// Poll drains pending intents without blocking
// The latest press wins on each axis; any fire press sets Fire
func (k *Keyboard) Poll() Controls {
	c := Neutral
	for {
		select {
		case in := <-k.pending:
			switch in.Type {
			case IntentMove:
				if in.Rows != 0 {
					c.Rows = in.Rows
				}
				if in.Cols != 0 {
					c.Cols = in.Cols
				}
			case IntentFire:
				c.Fire = true
			}
		default:
			return c
		}
	}
}
