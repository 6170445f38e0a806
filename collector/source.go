package collector

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// Uname mirrors the fields of uname(2) the system facts need
type Uname struct {
	Node    string
	Release string
	Version string
	Machine string
}

// Proc is a single process as seen by the collectors
type Proc interface {
	PID() int32
	Name(ctx context.Context) (string, error)
	CPUPercent(ctx context.Context) (float64, error)
	Username(ctx context.Context) (string, error)
	MemoryInfo(ctx context.Context) (*process.MemoryInfoStat, error)
}

// Source is the OS introspection provider behind a Collector
type Source interface {
	Uname(ctx context.Context) (Uname, error)
	CPUModel(ctx context.Context) (string, error)
	CPUCounts(ctx context.Context, logical bool) (int, error)
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	Processes(ctx context.Context) ([]Proc, error)
	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
	Connections(ctx context.Context) ([]gopsnet.ConnectionStat, error)
}

// HostSource reads the local host with gopsutil
type HostSource struct{}

func NewHostSource() *HostSource {
	return &HostSource{}
}

func (HostSource) CPUModel(ctx context.Context) (string, error) {
	info, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if len(info) == 0 {
		return "", nil
	}
	return info[0].ModelName, nil
}

func (HostSource) CPUCounts(ctx context.Context, logical bool) (int, error) {
	return cpu.CountsWithContext(ctx, logical)
}

func (HostSource) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (HostSource) Processes(ctx context.Context) ([]Proc, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Proc, 0, len(procs))
	for _, p := range procs {
		out = append(out, hostProc{p: p})
	}
	return out, nil
}

// Partitions lists physical devices only
func (HostSource) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

func (HostSource) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (HostSource) Connections(ctx context.Context) ([]gopsnet.ConnectionStat, error) {
	return gopsnet.ConnectionsWithContext(ctx, "inet")
}

type hostProc struct {
	p *process.Process
}

func (h hostProc) PID() int32 { return h.p.Pid }

func (h hostProc) Name(ctx context.Context) (string, error) {
	return h.p.NameWithContext(ctx)
}

func (h hostProc) CPUPercent(ctx context.Context) (float64, error) {
	return h.p.CPUPercentWithContext(ctx)
}

func (h hostProc) Username(ctx context.Context) (string, error) {
	return h.p.UsernameWithContext(ctx)
}

func (h hostProc) MemoryInfo(ctx context.Context) (*process.MemoryInfoStat, error) {
	return h.p.MemoryInfoWithContext(ctx)
}
