package input

// Controls is one poll result: direction on each axis in {-1, 0, 1} and a fire request
type Controls struct {
	Rows int
	Cols int
	Fire bool
}

// Neutral is returned when nothing is pending
var Neutral = Controls{}

// Source yields the controls accumulated since the previous poll
// Poll must not block
type Source interface {
	Poll() Controls
}

// SourceFunc adapts a function to Source
type SourceFunc func() Controls

// Poll calls f
func (f SourceFunc) Poll() Controls {
	return f()
}
