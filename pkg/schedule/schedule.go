// Package schedule runs named background jobs on a fixed interval or once a
// day at a given wall-clock time. It drives the nightly CSV snapshot.
//
//	schedule.Every("cache-warm", 10*time.Minute, warmCaches)
//	schedule.DailyAt("export-snapshot", "02:30", archiveExports)
//	schedule.Start(ctx)
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/shashiranjanraj/stocktracker/pkg/logger"
)

type job struct {
	name     string
	interval time.Duration
	at       string // "15:04", daily jobs only
	task     func()
	lastRun  time.Time
	running  bool
	mu       sync.Mutex
}

var (
	regMu sync.Mutex
	jobs  []*job
)

// Every registers a job that runs on a fixed interval. The first run happens
// one interval after Start, not immediately.
func Every(name string, interval time.Duration, task func()) {
	register(&job{name: name, interval: interval, lastRun: time.Now(), task: task})
}

// DailyAt registers a job that runs once a day at the given "15:04" time.
func DailyAt(name, at string, task func()) {
	register(&job{name: name, at: at, task: task})
}

func register(j *job) {
	regMu.Lock()
	jobs = append(jobs, j)
	regMu.Unlock()
}

// Start runs the dispatcher in the background until ctx is done.
func Start(ctx context.Context) {
	go run(ctx)
	logger.Info("scheduler started", "jobs", len(jobs))
}

func run(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("scheduler stopped")
			return
		case now := <-ticker.C:
			regMu.Lock()
			due := make([]*job, 0, len(jobs))
			for _, j := range jobs {
				if j.due(now) {
					due = append(due, j)
				}
			}
			regMu.Unlock()

			for _, j := range due {
				j.dispatch()
			}
		}
	}
}

func (j *job) due(now time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.at != "" {
		target, err := time.Parse("15:04", j.at)
		if err != nil {
			return false
		}
		if now.Hour() != target.Hour() || now.Minute() != target.Minute() {
			return false
		}
		// Only once within the trigger minute.
		return now.Sub(j.lastRun) > time.Minute
	}

	return now.Sub(j.lastRun) >= j.interval
}

// dispatch runs the job in a goroutine. A slow run is never overlapped by the
// next tick.
func (j *job) dispatch() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		logger.Warn("scheduled job still running, skipping", "job", j.name)
		return
	}
	j.running = true
	j.lastRun = time.Now()
	j.mu.Unlock()

	go func() {
		defer func() {
			j.mu.Lock()
			j.running = false
			j.mu.Unlock()
			if r := recover(); r != nil {
				logger.Error("scheduled job panicked", "job", j.name, "panic", r)
			}
		}()

		logger.Info("scheduled job running", "job", j.name)
		j.task()
	}()
}
