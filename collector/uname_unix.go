//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package collector

import (
	"context"

	"golang.org/x/sys/unix"
)

func (HostSource) Uname(_ context.Context) (Uname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Uname{}, err
	}
	return Uname{
		Node:    unix.ByteSliceToString(u.Nodename[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Version: unix.ByteSliceToString(u.Version[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
