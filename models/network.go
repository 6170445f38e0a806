package models

import "strconv"

// NetworkRecord is one inet socket joined with its owning process
type NetworkRecord struct {
	Protocol   string
	LocalAddr  string
	RemoteAddr string // empty when the socket has no peer
	Status     string
	PID        int32 // 0 when the owner is unknown
	Program    string
}

func (n NetworkRecord) Row() []string {
	pid := ""
	if n.PID != 0 {
		pid = strconv.FormatInt(int64(n.PID), 10)
	}
	return []string{n.Protocol, n.LocalAddr, n.RemoteAddr, n.Status, pid, n.Program}
}
