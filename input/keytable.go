package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  intentQuit,
			tcell.KeyCtrlQ:  intentQuit,
			tcell.KeyEscape: intentQuit,
			tcell.KeyUp:     intentUp,
			tcell.KeyDown:   intentDown,
			tcell.KeyLeft:   intentLeft,
			tcell.KeyRight:  intentRight,
		},

		Runes: map[rune]Intent{
			'q': intentQuit,
			' ': intentFire,
			// vi motions
			'k': intentUp,
			'j': intentDown,
			'h': intentLeft,
			'l': intentRight,
			// wasd
			'w': intentUp,
			's': intentDown,
			'a': intentLeft,
			'd': intentRight,
		},
	}
}

// Resolve maps a key event to its intent; unbound keys resolve to IntentNone
func (t *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev == nil {
		return intentNone
	}
	if ev.Key() == tcell.KeyRune {
		if in, ok := t.Runes[ev.Rune()]; ok {
			return in
		}
		return intentNone
	}
	if in, ok := t.SpecialKeys[ev.Key()]; ok {
		return in
	}
	return intentNone
}
