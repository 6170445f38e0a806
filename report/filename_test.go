package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	assert.Equal(t, "disk_host1_240102_030405.csv", FileName("disk", "host1", at))
}

func TestFileName_Distinct(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

	base := FileName("diskinfo", "host1", at)
	assert.Equal(t, base, FileName("diskinfo", "host1", at.Add(300*time.Millisecond)))
	assert.NotEqual(t, base, FileName("diskinfo", "host1", at.Add(time.Second)))
	assert.NotEqual(t, base, FileName("netinfo", "host1", at))
	assert.NotEqual(t, base, FileName("diskinfo", "host2", at))
}
