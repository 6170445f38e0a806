package models

// DiskRecord holds usage of one mounted partition
type DiskRecord struct {
	Device      string
	MountPoint  string
	FSType      string
	TotalBytes  uint64
	UsedBytes   uint64
	UsedPercent float64
}

func (d DiskRecord) Row() []string {
	return []string{
		d.Device,
		d.MountPoint,
		d.FSType,
		formatUint(d.TotalBytes),
		formatUint(d.UsedBytes),
		formatFloat(d.UsedPercent),
	}
}
