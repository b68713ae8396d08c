package engine

import (
	"github.com/lixenwraith/starfield/animation"
)

// Pool is the ordered active set of tasks
// Tasks must be comparable (pointer types) since membership is keyed by identity
// While frozen (during a tick) additions are staged and join on thaw
type Pool struct {
	tasks   []animation.Task
	members map[animation.Task]struct{}
	staged  []animation.Task
	frozen  bool
}

// NewPool creates a pool holding tasks in order, skipping duplicates
func NewPool(tasks ...animation.Task) *Pool {
	p := &Pool{members: make(map[animation.Task]struct{}, len(tasks))}
	for _, t := range tasks {
		p.Add(t)
	}
	return p
}

// Add appends t, or stages it if a tick is in progress
// Returns false for nil or a task already present or staged
func (p *Pool) Add(t animation.Task) bool {
	if t == nil {
		return false
	}
	if _, ok := p.members[t]; ok {
		return false
	}
	p.members[t] = struct{}{}
	if p.frozen {
		p.staged = append(p.staged, t)
	} else {
		p.tasks = append(p.tasks, t)
	}
	return true
}

// Remove deletes t preserving the order of the rest
func (p *Pool) Remove(t animation.Task) bool {
	if _, ok := p.members[t]; !ok {
		return false
	}
	delete(p.members, t)
	for i, existing := range p.tasks {
		if existing == t {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			return true
		}
	}
	for i, existing := range p.staged {
		if existing == t {
			p.staged = append(p.staged[:i], p.staged[i+1:]...)
			return true
		}
	}
	return true
}

// Snapshot returns a copy of the active tasks in insertion order
func (p *Pool) Snapshot() []animation.Task {
	return append([]animation.Task(nil), p.tasks...)
}

// Len returns the number of active tasks, excluding staged ones
func (p *Pool) Len() int {
	return len(p.tasks)
}

// Staged returns the number of tasks waiting for the current tick to end
func (p *Pool) Staged() int {
	return len(p.staged)
}

func (p *Pool) freeze() {
	p.frozen = true
}

// thaw ends the tick and admits staged tasks
func (p *Pool) thaw() {
	p.frozen = false
	p.tasks = append(p.tasks, p.staged...)
	p.staged = p.staged[:0]
}
