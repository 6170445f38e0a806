package collector_test

import (
	"context"
	"errors"
	"testing"

	"hostscan/collector"
	"hostscan/collector/collectortest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem(t *testing.T) {
	src := collectortest.NewSource("host1")
	c := collector.New(src, nil)

	facts, err := c.System(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "host1", facts.Node)
	assert.Equal(t, "6.1.0", facts.Release)
	assert.Equal(t, "#1 SMP", facts.Version)
	assert.Equal(t, "x86_64", facts.Machine)
	assert.Equal(t, "Test CPU", facts.Processor)
	assert.Equal(t, 2, facts.PhysicalCPUs)
	assert.Equal(t, 4, facts.LogicalCPUs)
	assert.Equal(t, float64(8*1024), facts.TotalMemKB)
	assert.Equal(t, float64(2*1024), facts.UsedMemKB)
	assert.Equal(t, 25.0, facts.UsedMemPercent)
}

func TestSystem_ProcessorFallsBackToMachine(t *testing.T) {
	src := collectortest.NewSource("host1")
	src.Model = ""

	facts, err := collector.New(src, nil).System(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x86_64", facts.Processor)
}

func TestSystem_UnameFailureIsFatal(t *testing.T) {
	src := collectortest.NewSource("host1")
	boom := errors.New("uname failed")
	src.UnameErr = boom

	facts, err := collector.New(src, nil).System(context.Background())
	assert.Nil(t, facts)
	assert.ErrorIs(t, err, boom)
}
