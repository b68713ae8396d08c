package engine

import (
	"sync"
	"testing"
	"time"
)

func TestTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	<-provider.After(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms after After(10ms), got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(1 * time.Hour)
	if now := mock.Now(); !now.Equal(startTime.Add(time.Hour)) {
		t.Errorf("Expected time to be %v after Advance, got %v", startTime.Add(time.Hour), now)
	}

	fired := <-mock.After(30 * time.Minute)
	expected := startTime.Add(90 * time.Minute)
	if !fired.Equal(expected) {
		t.Errorf("After fired at %v, want %v", fired, expected)
	}
	if waits := mock.Waits(); len(waits) != 1 || waits[0] != 30*time.Minute {
		t.Errorf("Waits() = %v, want [30m]", waits)
	}
}

func TestMockTimeProviderStepCost(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)
	mock.SetStepCost(5 * time.Millisecond)

	a := mock.Now()
	b := mock.Now()
	if b.Sub(a) != 5*time.Millisecond {
		t.Errorf("consecutive Now() differ by %v, want 5ms", b.Sub(a))
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(1 * time.Millisecond)
			}
		}()
	}
	wg.Wait()

	// 5 writers * 50 advances * 1ms
	expected := startTime.Add(250 * time.Millisecond)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after concurrent operations, got %v", expected, now)
	}
}

func TestClockInterface(t *testing.T) {
	var _ Clock = &TimeProvider{}
	var _ Clock = &MockTimeProvider{}
}
