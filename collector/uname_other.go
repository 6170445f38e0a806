//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package collector

import (
	"context"

	"github.com/shirou/gopsutil/v3/host"
)

// Uname falls back to gopsutil where uname(2) is not available
func (HostSource) Uname(ctx context.Context) (Uname, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Uname{}, err
	}
	return Uname{
		Node:    info.Hostname,
		Release: info.KernelVersion,
		Version: info.PlatformVersion,
		Machine: info.KernelArch,
	}, nil
}
