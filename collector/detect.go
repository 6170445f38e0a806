package collector

import (
	"log/slog"
	"os"
	"runtime"
	"sync"
)

type Capabilities struct {
	Privileged  bool
	NeedsProcFS bool
	HasProcFS   bool
}

// hint names the likely reason the connection table could not be read
func (c Capabilities) hint() string {
	switch {
	case c.NeedsProcFS && !c.HasProcFS:
		return "procfs is not mounted"
	case !c.Privileged:
		return "not running as root"
	default:
		return ""
	}
}

var (
	caps     Capabilities
	capsOnce sync.Once
)

// DetectCapabilities probes the run once and logs what it found
func DetectCapabilities(logger *slog.Logger) Capabilities {
	capsOnce.Do(func() {
		caps = Capabilities{
			Privileged:  os.Geteuid() == 0,
			NeedsProcFS: runtime.GOOS == "linux",
			HasProcFS:   fileExists("/proc/self/stat"),
		}

		logger.Debug("capabilities",
			slog.Bool("privileged", caps.Privileged),
			slog.Bool("procfs", caps.HasProcFS))
	})
	return caps
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
