package collector

import (
	"context"
	"fmt"

	"hostscan/models"
)

// System gathers host identity, CPU topology and memory usage. Any failure
// is returned since every output file name depends on the node name.
func (c *Collector) System(ctx context.Context) (*models.SystemFacts, error) {
	uname, err := c.src.Uname(ctx)
	if err != nil {
		return nil, fmt.Errorf("read uname: %w", err)
	}

	physical, err := c.src.CPUCounts(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("count physical cpus: %w", err)
	}
	logical, err := c.src.CPUCounts(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("count logical cpus: %w", err)
	}

	processor, err := c.src.CPUModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cpu info: %w", err)
	}
	if processor == "" {
		processor = uname.Machine
	}

	memInfo, err := c.src.VirtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("read virtual memory: %w", err)
	}

	return &models.SystemFacts{
		Node:           uname.Node,
		Release:        uname.Release,
		Version:        uname.Version,
		Machine:        uname.Machine,
		Processor:      processor,
		PhysicalCPUs:   physical,
		LogicalCPUs:    logical,
		TotalMemKB:     float64(memInfo.Total) / 1024,
		UsedMemKB:      float64(memInfo.Used) / 1024,
		UsedMemPercent: memInfo.UsedPercent,
	}, nil
}
