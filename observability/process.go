// Package observability exposes figures about the running process itself.
package observability

import (
	"bot-lab/contract"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.ProcessStats = (*ProcessStats)(nil)

// ProcessStats reads uptime and resident memory of the current process.
type ProcessStats struct {
	startedAt time.Time
	proc      *process.Process
}

func NewProcessStats(startedAt time.Time) (*ProcessStats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &ProcessStats{startedAt: startedAt, proc: p}, nil
}

func (s *ProcessStats) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

// MemoryBytes returns the resident set size.
func (s *ProcessStats) MemoryBytes() (uint64, error) {
	memInfo, err := s.proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return memInfo.RSS, nil
}
