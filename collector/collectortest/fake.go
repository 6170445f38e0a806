// Package collectortest provides an in-memory collector.Source for tests.
package collectortest

import (
	"context"
	"errors"
	"fmt"

	"hostscan/collector"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// ErrNoSuchProcess mimics a process exiting mid-scan
var ErrNoSuchProcess = errors.New("process does not exist")

// Proc is a fake process. Err fails every lookup, UserErr only the owner.
type Proc struct {
	Pid     int32
	Command string
	CPU     float64
	User    string
	VMS     uint64
	Err     error
	UserErr error
}

func (p *Proc) PID() int32 { return p.Pid }

func (p *Proc) Name(context.Context) (string, error) {
	return p.Command, p.Err
}

func (p *Proc) CPUPercent(context.Context) (float64, error) {
	return p.CPU, p.Err
}

func (p *Proc) Username(context.Context) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.User, p.UserErr
}

func (p *Proc) MemoryInfo(context.Context) (*process.MemoryInfoStat, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return &process.MemoryInfoStat{VMS: p.VMS}, nil
}

// Source serves fixed host state. A mount point missing from Usage fails
// its usage lookup.
type Source struct {
	UnameInfo collector.Uname
	UnameErr  error
	Model     string
	Physical  int
	Logical   int
	Memory    mem.VirtualMemoryStat

	Procs    []*Proc
	ProcsErr error

	Parts    []disk.PartitionStat
	PartsErr error
	Usage    map[string]disk.UsageStat

	Conns    []gopsnet.ConnectionStat
	ConnsErr error
}

var _ collector.Source = (*Source)(nil)

// NewSource returns a small healthy host named node
func NewSource(node string) *Source {
	return &Source{
		UnameInfo: collector.Uname{
			Node:    node,
			Release: "6.1.0",
			Version: "#1 SMP",
			Machine: "x86_64",
		},
		Model:    "Test CPU",
		Physical: 2,
		Logical:  4,
		Memory: mem.VirtualMemoryStat{
			Total:       8 * 1024 * 1024,
			Used:        2 * 1024 * 1024,
			UsedPercent: 25,
		},
	}
}

func (s *Source) Uname(context.Context) (collector.Uname, error) {
	return s.UnameInfo, s.UnameErr
}

func (s *Source) CPUModel(context.Context) (string, error) {
	return s.Model, nil
}

func (s *Source) CPUCounts(_ context.Context, logical bool) (int, error) {
	if logical {
		return s.Logical, nil
	}
	return s.Physical, nil
}

func (s *Source) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	m := s.Memory
	return &m, nil
}

func (s *Source) Processes(context.Context) ([]collector.Proc, error) {
	if s.ProcsErr != nil {
		return nil, s.ProcsErr
	}
	out := make([]collector.Proc, 0, len(s.Procs))
	for _, p := range s.Procs {
		out = append(out, p)
	}
	return out, nil
}

func (s *Source) Partitions(context.Context) ([]disk.PartitionStat, error) {
	return s.Parts, s.PartsErr
}

func (s *Source) DiskUsage(_ context.Context, path string) (*disk.UsageStat, error) {
	u, ok := s.Usage[path]
	if !ok {
		return nil, fmt.Errorf("statfs %s: permission denied", path)
	}
	return &u, nil
}

func (s *Source) Connections(context.Context) ([]gopsnet.ConnectionStat, error) {
	return s.Conns, s.ConnsErr
}
