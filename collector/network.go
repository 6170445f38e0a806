package collector

import (
	"context"
	"fmt"
	"log/slog"
	"syscall"

	"hostscan/models"
)

const (
	unknownProgram   = "?"
	programNameWidth = 15
)

type protoKey struct {
	family   uint32
	sockType uint32
}

var protocols = map[protoKey]string{
	{syscall.AF_INET, syscall.SOCK_STREAM}:  "tcp",
	{syscall.AF_INET6, syscall.SOCK_STREAM}: "tcp6",
	{syscall.AF_INET, syscall.SOCK_DGRAM}:   "udp",
	{syscall.AF_INET6, syscall.SOCK_DGRAM}:  "udp6",
}

// ProtocolFor names the protocol of an (address family, socket type) pair
func ProtocolFor(family, sockType uint32) (string, bool) {
	proto, ok := protocols[protoKey{family: family, sockType: sockType}]
	return proto, ok
}

// Connections lists inet sockets with the name of the owning process. If the
// connection table can not be read the whole call fails with
// ErrElevatedPrivilege. A socket with an unknown family/type pair is skipped.
func (c *Collector) Connections(ctx context.Context) ([]models.NetworkRecord, Skipped, error) {
	logger := c.log("network")

	caps := DetectCapabilities(c.logger)
	if !caps.Privileged {
		logger.Warn("not running privileged, sockets of other users may be missing")
	}

	conns, err := c.src.Connections(ctx)
	if err != nil {
		if hint := caps.hint(); hint != "" {
			return nil, nil, fmt.Errorf("%w (%s): %w", ErrElevatedPrivilege, hint, err)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrElevatedPrivilege, err)
	}

	names := c.processNames(ctx)

	var skipped Skipped
	results := make([]models.NetworkRecord, 0, len(conns))
	for _, conn := range conns {
		proto, ok := ProtocolFor(conn.Family, conn.Type)
		if !ok {
			err := fmt.Errorf("unknown family/type pair (%d, %d)", conn.Family, conn.Type)
			logger.Warn("skipping connection", slog.String("laddr", formatAddr(conn.Laddr)), slog.Any("error", err))
			skipped.add(formatAddr(conn.Laddr), err)
			continue
		}

		program, ok := names[conn.Pid]
		if !ok {
			program = unknownProgram
		}

		results = append(results, models.NetworkRecord{
			Protocol:   proto,
			LocalAddr:  formatAddr(conn.Laddr),
			RemoteAddr: formatAddr(conn.Raddr),
			Status:     conn.Status,
			PID:        conn.Pid,
			Program:    truncate(program, programNameWidth),
		})
	}

	return results, skipped, nil
}

// processNames maps pid to process name from a fresh enumeration
func (c *Collector) processNames(ctx context.Context) map[int32]string {
	names := make(map[int32]string)
	procs, err := c.src.Processes(ctx)
	if err != nil {
		c.log("network").Warn("process names unavailable", slog.Any("error", err))
		return names
	}
	for _, p := range procs {
		if name, err := p.Name(ctx); err == nil {
			names[p.PID()] = name
		}
	}
	return names
}
