package models

import "strconv"

// ProcessRecord is one entry of the full process listing
type ProcessRecord struct {
	PID        int32
	CPUPercent float64
	Name       string
}

func (p ProcessRecord) Row() []string {
	return []string{strconv.FormatInt(int64(p.PID), 10), formatFloat(p.CPUPercent), p.Name}
}

// TopMemoryRecord is one entry of the top processes by virtual memory
type TopMemoryRecord struct {
	PID      int32
	Username string
	Name     string
	VMSMB    float64 // virtual memory size in MB
}

func (p TopMemoryRecord) Row() []string {
	return []string{strconv.FormatInt(int64(p.PID), 10), p.Username, p.Name, formatFloat(p.VMSMB)}
}
