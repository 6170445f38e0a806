package report

import (
	"strings"
	"time"
)

const (
	timestampLayout = "060102_150405"
	extension       = ".csv"
)

// FileName builds {prefix}_{node}_{YYMMDD_HHMMSS}.csv. Names generated in the
// same second for the same prefix and node collide.
func FileName(prefix, node string, t time.Time) string {
	return strings.Join([]string{prefix, node, t.Format(timestampLayout)}, "_") + extension
}
