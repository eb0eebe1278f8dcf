package profiler

import (
	"log"
	"runtime"
	"time"
)

// Snapshot is one interval of frame and memory statistics.
type Snapshot struct {
	FPS          float64
	AvgFrame     time.Duration
	MaxFrame     time.Duration
	Draws        int
	HeapMB       float64
	AllocRateMB  float64
	SysMB        float64
	GCCount      uint32
	LastPauseUs  uint64
	MaxPauseUs   uint64
	LoggedFrames int
}

// Profiler tracks frame rate, frame time and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	maxFrame       time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now   func() time.Time
	quiet bool
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often statistics are reported. Defaults to 1 second.
func WithUpdateInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces the time source.
//
// Parameters:
//   - now: returns the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithQuiet suppresses the log line; Tick still returns the snapshot.
func WithQuiet(quiet bool) ProfilerOption {
	return func(p *Profiler) {
		p.quiet = quiet
	}
}

// NewProfiler creates a new Profiler. The first interval starts now.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.Reset()
	return p
}

// Reset starts a new interval, discarding frames counted so far. Call it when profiling is
// switched back on so the first report does not cover the time it was off.
func (p *Profiler) Reset() {
	t := p.now()
	p.frameCount = 0
	p.maxFrame = 0
	p.lastTime = t
	p.lastFrame = t
}

// Tick should be called once per presented frame.
// Reports statistics when the update interval has elapsed: FPS, average and worst frame time,
// draws of the last frame, heap usage, allocation rate, GC count and pause times, total memory.
//
// Parameters:
//   - draws: the number of draw calls issued this frame
//
// Returns:
//   - Snapshot: the statistics of the interval, zero if nothing was reported
//   - bool: true if the interval elapsed this tick
func (p *Profiler) Tick(draws int) (Snapshot, bool) {
	currentTime := p.now()
	p.frameCount++
	p.maxFrame = max(p.maxFrame, currentTime.Sub(p.lastFrame))
	p.lastFrame = currentTime

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return Snapshot{}, false
	}

	runtime.ReadMemStats(&p.memStats)
	snap := Snapshot{
		FPS:          float64(p.frameCount) / elapsed.Seconds(),
		AvgFrame:     elapsed / time.Duration(p.frameCount),
		MaxFrame:     p.maxFrame,
		Draws:        draws,
		HeapMB:       float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:        float64(p.memStats.Sys) / 1024 / 1024,
		AllocRateMB:  float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:      p.memStats.NumGC,
		LoggedFrames: p.frameCount,
	}

	// PauseNs is a circular buffer of the last 256 pauses
	if gcCount := snap.GCCount; gcCount > 0 {
		snap.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			snap.MaxPauseUs = max(snap.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	if !p.quiet {
		log.Printf("[Profiler] FPS: %.2f | Frame: %.2f ms avg, %.2f ms max | Draws: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			snap.FPS, ms(snap.AvgFrame), ms(snap.MaxFrame), snap.Draws, snap.HeapMB, snap.AllocRateMB,
			snap.GCCount, snap.LastPauseUs, snap.MaxPauseUs, snap.SysMB)
	}

	p.frameCount = 0
	p.maxFrame = 0
	p.lastTime = currentTime
	p.lastGCCount = snap.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return snap, true
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
