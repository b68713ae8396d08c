package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode"

	"github.com/lixenwraith/starfield/vmath"
)

//go:embed frames/*.txt
var framesFS embed.FS

// DefaultFramePaths are the embedded ship frames, in animation order
var DefaultFramePaths = []string{
	"frames/rocket_frame_1.txt",
	"frames/rocket_frame_2.txt",
}

var (
	ErrNoFrames       = errors.New("no frames supplied")
	ErrEmptyFrame     = errors.New("frame has no visible cells")
	ErrMalformedFrame = errors.New("frame contains non-printable characters")
	ErrFrameTooLarge  = errors.New("frame does not fit the drawable area")
)

// Frame is an immutable text bitmap; spaces are transparent
type Frame struct {
	lines []string
	rows  int
	cols  int
}

// Parse builds a Frame from raw file text
// Trailing newlines are dropped, leading whitespace is kept for alignment
func Parse(text string) (Frame, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")

	visible := false
	for _, r := range text {
		if r == '\n' {
			continue
		}
		if !unicode.IsPrint(r) {
			return Frame{}, fmt.Errorf("rune %q: %w", r, ErrMalformedFrame)
		}
		if r != ' ' {
			visible = true
		}
	}
	if !visible {
		return Frame{}, ErrEmptyFrame
	}

	lines := strings.Split(text, "\n")
	rows, cols := vmath.Measure(lines)
	return Frame{lines: lines, rows: rows, cols: cols}, nil
}

// Lines returns the frame rows; callers must not modify the slice
func (f Frame) Lines() []string {
	return f.lines
}

// Size returns the frame extent in cells
func (f Frame) Size() (rows, cols int) {
	return f.rows, f.cols
}

// Load reads and parses frames from fsys in the given order
func Load(fsys fs.FS, paths ...string) ([]Frame, error) {
	if len(paths) == 0 {
		return nil, ErrNoFrames
	}

	frames := make([]Frame, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read frame %s: %w", p, err)
		}
		f, err := Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse frame %s: %w", p, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Defaults loads the embedded rocket frames
func Defaults() ([]Frame, error) {
	return Load(framesFS, DefaultFramePaths...)
}

// Extent returns the bounding size over all frames
func Extent(frames []Frame) (rows, cols int) {
	for _, f := range frames {
		rows = max(rows, f.rows)
		cols = max(cols, f.cols)
	}
	return rows, cols
}

// Fit verifies every frame can be placed inside the border of a rows x cols surface
// with the one-cell margin the ship clamp enforces
func Fit(frames []Frame, rows, cols int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	frameRows, frameCols := Extent(frames)
	maxRow, maxCol := rows-1, cols-1
	if maxRow-frameRows < 1 || maxCol-frameCols < 1 {
		return fmt.Errorf("frame %dx%d on surface %dx%d: %w", frameRows, frameCols, rows, cols, ErrFrameTooLarge)
	}
	return nil
}
