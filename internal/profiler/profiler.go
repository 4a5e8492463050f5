// Package profiler reports frame rate and memory figures through zap.
package profiler

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Profiler counts frames and logs FPS and heap figures once per interval.
type Profiler struct {
	log      *zap.Logger
	interval time.Duration
	now      func() time.Time

	frames    int
	last      time.Time
	lastGC    uint32
	lastAlloc uint64
	mem       runtime.MemStats
}

// New returns stats reporting every second at debug level.
func New(log *zap.Logger) *Profiler {
	return newWithClock(log, time.Second, time.Now)
}

func newWithClock(log *zap.Logger, interval time.Duration, now func() time.Time) *Profiler {
	return &Profiler{log: log, interval: interval, now: now, last: now()}
}

// Tick records one frame. It returns true when a report was emitted.
func (s *Profiler) Tick(frame uint64) bool {
	s.frames++
	now := s.now()
	elapsed := now.Sub(s.last)
	if elapsed < s.interval {
		return false
	}

	if s.log.Core().Enabled(zap.DebugLevel) {
		runtime.ReadMemStats(&s.mem)
		const mb = 1 << 20
		allocRate := float64(s.mem.TotalAlloc-s.lastAlloc) / mb / elapsed.Seconds()
		s.log.Debug("frame stats",
			zap.Uint64("frame", frame),
			zap.Float64("fps", float64(s.frames)/elapsed.Seconds()),
			zap.Float64("heap_mb", float64(s.mem.HeapAlloc)/mb),
			zap.Float64("alloc_mb_s", allocRate),
			zap.Uint32("gc", s.mem.NumGC-s.lastGC),
		)
		s.lastGC = s.mem.NumGC
		s.lastAlloc = s.mem.TotalAlloc
	}

	s.frames = 0
	s.last = now
	return true
}
