package engine

import "testing"

func TestPoolAddRejectsNilAndDuplicates(t *testing.T) {
	a := &countingTask{name: "a"}
	p := NewPool(a, nil, a)

	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
	if p.Add(a) {
		t.Error("Add of present task = true, want false")
	}
	if p.Add(nil) {
		t.Error("Add(nil) = true, want false")
	}
}

func TestPoolRemovePreservesOrder(t *testing.T) {
	a, b, c := &countingTask{name: "a"}, &countingTask{name: "b"}, &countingTask{name: "c"}
	p := NewPool(a, b, c)

	if !p.Remove(b) {
		t.Fatal("Remove(b) = false")
	}
	if p.Remove(b) {
		t.Error("second Remove(b) = true, want false")
	}

	got := p.Snapshot()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Snapshot() = %v, want [a c]", got)
	}

	// Removed task can be re-added at the tail
	if !p.Add(b) {
		t.Error("re-Add(b) = false")
	}
	if got := p.Snapshot(); got[2] != b {
		t.Errorf("re-added task at %v, want tail", got)
	}
}

func TestPoolStagingWhileFrozen(t *testing.T) {
	a, b := &countingTask{name: "a"}, &countingTask{name: "b"}
	p := NewPool(a)

	p.freeze()
	p.Add(b)
	if p.Len() != 1 || p.Staged() != 1 {
		t.Errorf("frozen Len=%d Staged=%d, want 1 1", p.Len(), p.Staged())
	}
	if p.Add(b) {
		t.Error("Add of staged task = true, want false")
	}

	p.thaw()
	if p.Len() != 2 || p.Staged() != 0 {
		t.Errorf("thawed Len=%d Staged=%d, want 2 0", p.Len(), p.Staged())
	}
}

func TestPoolRemoveStaged(t *testing.T) {
	a := &countingTask{name: "a"}
	p := NewPool()

	p.freeze()
	p.Add(a)
	if !p.Remove(a) {
		t.Error("Remove of staged task = false")
	}
	p.thaw()
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPoolSnapshotIsCopy(t *testing.T) {
	a, b := &countingTask{name: "a"}, &countingTask{name: "b"}
	p := NewPool(a)

	snap := p.Snapshot()
	p.Add(b)
	if len(snap) != 1 {
		t.Errorf("snapshot changed after Add: len %d", len(snap))
	}
}
