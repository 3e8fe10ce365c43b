package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalDue(t *testing.T) {
	now := time.Now()
	j := &job{name: "tick", interval: time.Minute, lastRun: now.Add(-2 * time.Minute)}

	assert.True(t, j.due(now))

	j.lastRun = now.Add(-30 * time.Second)
	assert.False(t, j.due(now))
}

func TestDailyAtDue(t *testing.T) {
	j := &job{name: "snapshot", at: "02:30"}

	at := time.Date(2026, 8, 29, 2, 30, 15, 0, time.UTC)
	assert.True(t, j.due(at))

	// Second trigger within the same minute is suppressed.
	j.lastRun = at
	assert.False(t, j.due(at.Add(20*time.Second)))

	// Wrong minute never fires.
	j.lastRun = time.Time{}
	assert.False(t, j.due(time.Date(2026, 8, 29, 2, 31, 0, 0, time.UTC)))
}

func TestDispatchSkipsOverlap(t *testing.T) {
	started := make(chan struct{})
	done := make(chan struct{})
	ran := 0
	j := &job{name: "slow", interval: time.Second, task: func() {
		ran++
		close(started)
		<-done
	}}

	j.dispatch()
	<-started

	j.dispatch() // skipped while the first run holds the slot
	close(done)

	// Wait for the first run to release its slot; the mutex orders the
	// task's write to ran before our read.
	deadline := time.Now().Add(time.Second)
	for {
		j.mu.Lock()
		running := j.running
		j.mu.Unlock()
		if !running || time.Now().After(deadline) {
			break
		}
		time.Sleep(time.Millisecond)
	}

	assert.Equal(t, 1, ran)
}
