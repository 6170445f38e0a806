package collector

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"hostscan/models"
)

// Processes lists every visible process with its cpu usage. Processes that
// exit or deny access mid-scan are left out.
func (c *Collector) Processes(ctx context.Context) ([]models.ProcessRecord, Skipped) {
	logger := c.log("process")

	procs, err := c.src.Processes(ctx)
	if err != nil {
		logger.Error("Failed to get processes", slog.Any("error", err))
		return nil, nil
	}

	var skipped Skipped
	results := make([]models.ProcessRecord, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name(ctx)
		if err != nil {
			skipped.add(pidItem(p.PID()), err)
			continue
		}
		cpu, err := p.CPUPercent(ctx)
		if err != nil {
			skipped.add(pidItem(p.PID()), err)
			continue
		}

		results = append(results, models.ProcessRecord{
			PID:        p.PID(),
			CPUPercent: cpu,
			Name:       name,
		})
	}

	logSkipped(logger, skipped)
	return results, skipped
}

// TopMemory returns up to TopLimit processes ordered by virtual memory size,
// largest first. Equal sizes keep enumeration order.
func (c *Collector) TopMemory(ctx context.Context) ([]models.TopMemoryRecord, Skipped) {
	logger := c.log("top")

	procs, err := c.src.Processes(ctx)
	if err != nil {
		logger.Error("Failed to get processes", slog.Any("error", err))
		return nil, nil
	}

	var skipped Skipped
	procList := make([]models.TopMemoryRecord, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name(ctx)
		if err != nil {
			skipped.add(pidItem(p.PID()), err)
			continue
		}
		memInfo, err := p.MemoryInfo(ctx)
		if err != nil {
			skipped.add(pidItem(p.PID()), err)
			continue
		}

		// owner lookups fail for short lived users, keep the row
		username, err := p.Username(ctx)
		if err != nil {
			logger.Debug("username unavailable", slog.Int("pid", int(p.PID())), slog.Any("error", err))
		}

		procList = append(procList, models.TopMemoryRecord{
			PID:      p.PID(),
			Username: username,
			Name:     name,
			VMSMB:    float64(memInfo.VMS) / (1024 * 1024),
		})
	}

	slices.SortStableFunc(procList, func(a, b models.TopMemoryRecord) int {
		return cmp.Compare(b.VMSMB, a.VMSMB)
	})

	limit := min(TopLimit, len(procList))

	logSkipped(logger, skipped)
	return procList[:limit], skipped
}
