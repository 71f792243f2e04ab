package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpu_TickMergesConsecutiveTicks(t *testing.T) {
	cpu := NewCpu(2)
	assert.True(t, cpu.Tick(0, 1))
	assert.False(t, cpu.Tick(1, 1))
	assert.False(t, cpu.Tick(2, 1))
	assert.True(t, cpu.Tick(3, 2))
	assert.True(t, cpu.Tick(4, 1))

	assert.Equal(t, []Interval{
		{StartTime: 0, EndTime: 3, ProcessId: 1},
		{StartTime: 3, EndTime: 4, ProcessId: 2},
		{StartTime: 4, EndTime: 5, ProcessId: 1},
	}, cpu.Timeline)
	assert.Equal(t, CpuMetric{UtilizationTime: 5}, cpu.Metric)
}

func TestCpu_IdleBreaksInterval(t *testing.T) {
	cpu := NewCpu(1)
	cpu.Tick(0, 7)
	cpu.Idle(1)
	assert.True(t, cpu.Tick(2, 7))

	assert.Equal(t, []Interval{
		{StartTime: 0, EndTime: 1, ProcessId: 7},
		{StartTime: 2, EndTime: 3, ProcessId: 7},
	}, cpu.Timeline)
	assert.Equal(t, 1, cpu.Metric.IdleTime)
}

func TestCpu_Dispatch(t *testing.T) {
	cpu := NewCpu(2)
	cpu.Dispatch(0, 1, 4)
	cpu.Idle(2)
	cpu.Dispatch(6, 2, 3)

	assert.Equal(t, []Interval{
		{StartTime: 0, EndTime: 4, ProcessId: 1},
		{StartTime: 6, EndTime: 9, ProcessId: 2},
	}, cpu.Timeline)
	assert.Equal(t, CpuMetric{UtilizationTime: 7, IdleTime: 2}, cpu.Metric)
}
