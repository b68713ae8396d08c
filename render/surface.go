package render

// Intensity selects how brightly a symbol is drawn
type Intensity uint8

const (
	Normal Intensity = iota
	Dim
	Bold
)

// String returns the intensity name
func (i Intensity) String() string {
	switch i {
	case Normal:
		return "Normal"
	case Dim:
		return "Dim"
	case Bold:
		return "Bold"
	default:
		return "Unknown"
	}
}

// Blank is the rune a cleared cell holds
const Blank = ' '

// Surface is a bounded grid of character cells addressed as (row, col)
// Writes are buffered until Flush; writes outside Size are ignored
type Surface interface {
	Write(row, col int, symbol rune, in Intensity)
	Clear(row, col int)
	Size() (rows, cols int)
	Flush()
}
