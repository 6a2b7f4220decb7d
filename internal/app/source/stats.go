//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=source
package source

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"logpanel/internal/app/message"
	"logpanel/internal/config/logger"
)

// Usage is one resource sample of the current process
type Usage struct {
	CPU        float64
	MEM        float64 // in MB
	Goroutines int
}

// Sampler measures the current process
type Sampler interface {
	Sample() (Usage, error)
}

type processSampler struct {
	pid int32
}

// NewProcessSampler samples this process with gopsutil
func NewProcessSampler() Sampler {
	return &processSampler{pid: int32(os.Getpid())} // #nosec G115 -- PIDs fit in int32
}

func (s *processSampler) Sample() (Usage, error) {
	proc, err := process.NewProcess(s.pid)
	if err != nil {
		return Usage{}, err
	}

	usage := Usage{Goroutines: runtime.NumGoroutine()}

	if cpu, err := proc.CPUPercent(); err == nil {
		usage.CPU = cpu
	}

	if mem, err := proc.MemoryInfo(); err == nil {
		usage.MEM = float64(mem.RSS) / 1024 / 1024
	}

	return usage, nil
}

// Stats logs a resource heartbeat at a fixed interval
type Stats struct {
	interval time.Duration
	sampler  Sampler
	log      logger.Logger
}

// NewStats creates a heartbeat source
func NewStats(interval time.Duration, sampler Sampler, log logger.Logger) *Stats {
	return &Stats{
		interval: interval,
		sampler:  sampler,
		log:      log,
	}
}

// Name identifies the source in logs
func (s *Stats) Name() string {
	return "stats"
}

// Run samples once per interval until ctx is done
func (s *Stats) Run(ctx context.Context, sink Sink) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.beat(sink); err != nil {
				return err
			}
		}
	}
}

func (s *Stats) beat(sink Sink) error {
	usage, err := s.sampler.Sample()
	if err != nil {
		s.log.Debug().Err(err).Msg("Failed to sample process stats")
		return sink.Log(message.Warn, fmt.Sprintf("stats unavailable: %v", err))
	}

	return sink.Log(message.Info, fmt.Sprintf("cpu %.1f%% rss %.1f MB goroutines %d", usage.CPU, usage.MEM, usage.Goroutines))
}
