package models

import "strconv"

// Record is a single CSV row
type Record interface {
	Row() []string
}

// Column headers per discovery mode
var (
	SystemFields = []string{
		"system_node", "system_release", "system_version", "system_machine",
		"system_processor", "physical_proc_count", "logical_proc_count",
		"system_total_mem", "system_mem_used", "system_mem_used_perc",
	}
	ProcessFields   = []string{"pid", "cpu_percent", "name"}
	TopMemoryFields = []string{"pid", "username", "name", "vms"}
	DiskFields      = []string{"name", "mount_point", "type", "total_size", "used_size", "percent_used"}
	NetworkFields   = []string{"protocol", "localaddr", "raddr", "status", "pid", "program"}
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// Records widens a typed slice to []Record
func Records[R Record](recs []R) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, r)
	}
	return out
}
