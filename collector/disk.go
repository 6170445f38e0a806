package collector

import (
	"context"
	"fmt"
	"log/slog"

	"hostscan/models"
)

// Disks reports usage for each mounted partition. A partition whose usage
// can not be read is logged and skipped, only a failed listing is an error.
func (c *Collector) Disks(ctx context.Context) ([]models.DiskRecord, Skipped, error) {
	logger := c.log("disk")

	partitions, err := c.src.Partitions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list partitions: %w", err)
	}

	var skipped Skipped
	disks := make([]models.DiskRecord, 0, len(partitions))
	for _, part := range partitions {
		usage, err := c.src.DiskUsage(ctx, part.Mountpoint)
		if err != nil {
			logger.Error("Error on disk info",
				slog.String("device", part.Device),
				slog.String("mount_point", part.Mountpoint),
				slog.Any("error", err))
			skipped.add(part.Mountpoint, err)
			continue
		}

		disks = append(disks, models.DiskRecord{
			Device:      part.Device,
			MountPoint:  part.Mountpoint,
			FSType:      part.Fstype,
			TotalBytes:  usage.Total,
			UsedBytes:   usage.Used,
			UsedPercent: usage.UsedPercent,
		})
	}

	return disks, skipped, nil
}
