// Package animation implements the resumable routines driven by the scheduler.
//
// Each Task is an explicit state machine: Step advances it by exactly one tick,
// issues that tick's surface writes, and reports whether the task has finished.
// Tasks never block; the scheduler flushes the surface after every task has stepped.
package animation

import (
	"errors"

	"github.com/lixenwraith/starfield/render"
)

// ErrFinished is returned when a task is stepped after reporting done
var ErrFinished = errors.New("task stepped after completion")

// Task is one resumable animation routine
type Task interface {
	// Step advances one tick. done=true removes the task from the pool;
	// a non-nil error aborts the whole run
	Step(s render.Surface) (done bool, err error)
}
