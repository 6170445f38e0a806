package collector

import (
	"fmt"
	"log/slog"
	"strconv"

	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// Renders an address as ip:port. A socket without a peer still carries a
// wildcard address with port 0, which renders empty.
func formatAddr(a gopsnet.Addr) string {
	if a.IP == "" || a.Port == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", a.IP, a.Port)
}

// Cuts s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func pidItem(pid int32) string {
	return "pid " + strconv.FormatInt(int64(pid), 10)
}

func logSkipped(logger *slog.Logger, skipped Skipped) {
	for _, s := range skipped {
		logger.Debug("skipped", slog.String("item", s.Item), slog.Any("error", s.Reason))
	}
}
