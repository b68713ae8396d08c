package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit            // q, Esc, Ctrl+C, Ctrl+Q
	IntentMove            // arrows, hjkl, wasd
	IntentFire            // space
)

// Intent is a resolved key press
// Rows/Cols carry the direction of IntentMove; zero on the other axis
type Intent struct {
	Type IntentType
	Rows int
	Cols int
}

var (
	intentNone  = Intent{Type: IntentNone}
	intentQuit  = Intent{Type: IntentQuit}
	intentFire  = Intent{Type: IntentFire}
	intentUp    = Intent{Type: IntentMove, Rows: -1}
	intentDown  = Intent{Type: IntentMove, Rows: 1}
	intentLeft  = Intent{Type: IntentMove, Cols: -1}
	intentRight = Intent{Type: IntentMove, Cols: 1}
)
