package monitoring

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// GoroutineMonitor tracks goroutine counts for a long-running server. A
// replay server leaks goroutines most easily through abandoned blocking
// samplers, so the daemon runs one of these.
type GoroutineMonitor struct {
	mu             sync.RWMutex
	baseline       int
	peak           int
	checkInterval  time.Duration
	alertThreshold int
	lastAlert      time.Time
	alertCooldown  time.Duration
	stopChan       chan struct{}
}

// NewGoroutineMonitor creates a monitor with the current count as baseline.
func NewGoroutineMonitor() *GoroutineMonitor {
	baseline := runtime.NumGoroutine()
	return &GoroutineMonitor{
		baseline:       baseline,
		peak:           baseline,
		checkInterval:  30 * time.Second,
		alertThreshold: 1000,
		alertCooldown:  5 * time.Minute,
		stopChan:       make(chan struct{}),
	}
}

// Start begins monitoring goroutines
func (gm *GoroutineMonitor) Start() {
	go gm.monitor()
	log.Info().
		Int("baseline", gm.baseline).
		Msg("Started goroutine monitoring")
}

// Stop stops the monitor
func (gm *GoroutineMonitor) Stop() {
	close(gm.stopChan)
}

func (gm *GoroutineMonitor) monitor() {
	ticker := time.NewTicker(gm.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			gm.check()
		case <-gm.stopChan:
			return
		}
	}
}

func (gm *GoroutineMonitor) check() {
	current := runtime.NumGoroutine()

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if current > gm.peak {
		gm.peak = current
	}

	if current > gm.alertThreshold && time.Since(gm.lastAlert) > gm.alertCooldown {
		gm.lastAlert = time.Now()
		log.Warn().
			Int("current", current).
			Int("baseline", gm.baseline).
			Int("peak", gm.peak).
			Msg("Goroutine count above threshold, possible leak")
	}
}

// Peak returns the highest goroutine count observed.
func (gm *GoroutineMonitor) Peak() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.peak
}
