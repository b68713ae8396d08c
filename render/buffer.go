package render

// Cell is one character cell of a Buffer
type Cell struct {
	Rune      rune
	Intensity Intensity
}

var blankCell = Cell{Rune: Blank, Intensity: Normal}

// Buffer is an in-memory Surface with a back buffer for pending writes and a
// front buffer holding the last flushed state
type Buffer struct {
	back    []Cell
	front   []Cell
	touched []bool // written since last flush
	rows    int
	cols    int
	flushes int
}

// NewBuffer creates a blank buffer with the specified dimensions
func NewBuffer(rows, cols int) *Buffer {
	b := &Buffer{}
	b.Resize(rows, cols)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(rows, cols int) {
	size := rows * cols
	if cap(b.back) < size {
		b.back = make([]Cell, size)
		b.front = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.back = b.back[:size]
		b.front = b.front[:size]
		b.touched = b.touched[:size]
	}
	b.rows = rows
	b.cols = cols
	b.Reset()
}

// Reset blanks both buffers using exponential copy
func (b *Buffer) Reset() {
	if len(b.back) == 0 {
		return
	}
	b.back[0] = blankCell
	b.touched[0] = false
	for filled := 1; filled < len(b.back); filled *= 2 {
		copy(b.back[filled:], b.back[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
	copy(b.front, b.back)
}

// inBounds returns true if in surface bounds
func (b *Buffer) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Write stores a symbol in the back buffer
func (b *Buffer) Write(row, col int, symbol rune, in Intensity) {
	if !b.inBounds(row, col) {
		return
	}
	idx := row*b.cols + col
	b.back[idx] = Cell{Rune: symbol, Intensity: in}
	b.touched[idx] = true
}

// Clear blanks a cell in the back buffer
func (b *Buffer) Clear(row, col int) {
	b.Write(row, col, Blank, Normal)
}

// Size returns (rows, cols)
func (b *Buffer) Size() (rows, cols int) {
	return b.rows, b.cols
}

// Flush publishes touched cells to the front buffer
func (b *Buffer) Flush() {
	for i, t := range b.touched {
		if t {
			b.front[i] = b.back[i]
			b.touched[i] = false
		}
	}
	b.flushes++
}

// ===== INSPECTION =====

// Pending returns the back buffer cell, including unflushed writes
func (b *Buffer) Pending(row, col int) (Cell, bool) {
	if !b.inBounds(row, col) {
		return Cell{}, false
	}
	return b.back[row*b.cols+col], true
}

// Visible returns the cell as of the last Flush
func (b *Buffer) Visible(row, col int) (Cell, bool) {
	if !b.inBounds(row, col) {
		return Cell{}, false
	}
	return b.front[row*b.cols+col], true
}

// Flushes returns the number of Flush calls
func (b *Buffer) Flushes() int {
	return b.flushes
}

// Lines renders the visible buffer as text, one string per row
func (b *Buffer) Lines() []string {
	lines := make([]string, b.rows)
	row := make([]rune, b.cols)
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			row[x] = b.front[y*b.cols+x].Rune
		}
		lines[y] = string(row)
	}
	return lines
}
