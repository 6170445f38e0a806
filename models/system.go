package models

import "strconv"

// SystemFacts holds base host identity, CPU topology and memory usage
type SystemFacts struct {
	Node           string
	Release        string
	Version        string
	Machine        string
	Processor      string
	PhysicalCPUs   int
	LogicalCPUs    int
	TotalMemKB     float64
	UsedMemKB      float64
	UsedMemPercent float64
}

func (s *SystemFacts) Row() []string {
	return []string{
		s.Node,
		s.Release,
		s.Version,
		s.Machine,
		s.Processor,
		strconv.Itoa(s.PhysicalCPUs),
		strconv.Itoa(s.LogicalCPUs),
		formatFloat(s.TotalMemKB),
		formatFloat(s.UsedMemKB),
		formatFloat(s.UsedMemPercent),
	}
}
