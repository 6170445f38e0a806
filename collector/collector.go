package collector

import (
	"errors"
	"log/slog"
)

// ErrElevatedPrivilege is returned when the connection table can not be read
// as a whole, which on most hosts means the scan was not run as root.
var ErrElevatedPrivilege = errors.New("network discovery requires elevated privilege")

// TopLimit is the number of processes kept by TopMemory
const TopLimit = 10

// Skip records an item left out of a listing and why
type Skip struct {
	Item   string
	Reason error
}

// Skipped lists the items a collector omitted
type Skipped []Skip

func (s *Skipped) add(item string, reason error) {
	*s = append(*s, Skip{Item: item, Reason: reason})
}

// Collector reads host state through a Source and maps it into records.
// Every method is a read-only snapshot of the current host.
type Collector struct {
	src    Source
	logger *slog.Logger
}

// New returns a Collector over src. A nil src reads the local host, a nil
// logger falls back to slog.Default.
func New(src Source, logger *slog.Logger) *Collector {
	if src == nil {
		src = NewHostSource()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{src: src, logger: logger}
}

func (c *Collector) log(name string) *slog.Logger {
	return c.logger.With(slog.String("collector", name))
}
