package collector_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hostscan/collector"
	"hostscan/collector/collectortest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mb = 1024 * 1024

func TestProcesses(t *testing.T) {
	src := collectortest.NewSource("host1")
	src.Procs = []*collectortest.Proc{
		{Pid: 1, Command: "init", CPU: 0.5},
		{Pid: 42, Err: collectortest.ErrNoSuchProcess},
		{Pid: 7, Command: "sshd", CPU: 1.25},
	}

	recs, skipped := collector.New(src, nil).Processes(context.Background())

	require.Len(t, recs, 2)
	assert.Equal(t, int32(1), recs[0].PID)
	assert.Equal(t, "init", recs[0].Name)
	assert.Equal(t, 0.5, recs[0].CPUPercent)
	assert.Equal(t, int32(7), recs[1].PID)

	require.Len(t, skipped, 1)
	assert.Equal(t, "pid 42", skipped[0].Item)
	assert.ErrorIs(t, skipped[0].Reason, collectortest.ErrNoSuchProcess)
}

func TestProcesses_Empty(t *testing.T) {
	c := collector.New(collectortest.NewSource("host1"), nil)

	recs, skipped := c.Processes(context.Background())
	assert.Empty(t, recs)
	assert.Empty(t, skipped)

	top, skipped := c.TopMemory(context.Background())
	assert.Empty(t, top)
	assert.Empty(t, skipped)
}

func TestProcesses_EnumerationFailureIsNotFatal(t *testing.T) {
	src := collectortest.NewSource("host1")
	src.ProcsErr = errors.New("no procfs")

	recs, _ := collector.New(src, nil).Processes(context.Background())
	assert.Empty(t, recs)
}

func TestTopMemory_SortedAndTruncated(t *testing.T) {
	src := collectortest.NewSource("host1")
	for i := range 25 {
		src.Procs = append(src.Procs, &collectortest.Proc{
			Pid:     int32(i + 1),
			Command: fmt.Sprintf("proc-%d", i+1),
			User:    "root",
			VMS:     uint64((i*7)%13) * mb,
		})
	}

	top, _ := collector.New(src, nil).TopMemory(context.Background())

	require.Len(t, top, collector.TopLimit)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].VMSMB, top[i].VMSMB, "index %d", i)
	}
	assert.Equal(t, 12.0, top[0].VMSMB)
}

func TestTopMemory_FewerThanLimit(t *testing.T) {
	src := collectortest.NewSource("host1")
	src.Procs = []*collectortest.Proc{
		{Pid: 1, Command: "a", VMS: 1 * mb},
		{Pid: 2, Command: "b", VMS: 3 * mb},
		{Pid: 3, Command: "c", Err: collectortest.ErrNoSuchProcess},
	}

	top, skipped := collector.New(src, nil).TopMemory(context.Background())

	require.Len(t, top, 2)
	assert.Equal(t, int32(2), top[0].PID)
	assert.Equal(t, 3.0, top[0].VMSMB)
	assert.Len(t, skipped, 1)
}

func TestTopMemory_StableOnTies(t *testing.T) {
	src := collectortest.NewSource("host1")
	src.Procs = []*collectortest.Proc{
		{Pid: 10, Command: "first", VMS: 5 * mb},
		{Pid: 11, Command: "big", VMS: 9 * mb},
		{Pid: 12, Command: "second", VMS: 5 * mb},
		{Pid: 13, Command: "third", VMS: 5 * mb},
	}

	top, _ := collector.New(src, nil).TopMemory(context.Background())

	pids := make([]int32, 0, len(top))
	for _, r := range top {
		pids = append(pids, r.PID)
	}
	assert.Equal(t, []int32{11, 10, 12, 13}, pids)
}

func TestTopMemory_KeepsRowWhenOwnerUnknown(t *testing.T) {
	src := collectortest.NewSource("host1")
	src.Procs = []*collectortest.Proc{
		{Pid: 5, Command: "daemon", VMS: 2 * mb, UserErr: errors.New("unknown userid 1234")},
	}

	top, skipped := collector.New(src, nil).TopMemory(context.Background())

	require.Len(t, top, 1)
	assert.Equal(t, "", top[0].Username)
	assert.Empty(t, skipped)
}
