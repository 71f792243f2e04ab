package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/its-aleezA/cpu-scheduling-simulator/internal/responses"
)

func sampleResponse() responses.ScheduleResponse {
	details := []responses.ProcessResponse{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 4, Priority: 2, CompletionTime: 7, TurnAroundTime: 7, WaitingTime: 3},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1, CompletionTime: 4, TurnAroundTime: 3, WaitingTime: 0},
	}
	gantt := []responses.GanttEntry{
		{ProcessId: 1, StartTime: 0, EndTime: 1},
		{ProcessId: 2, StartTime: 1, EndTime: 4},
		{ProcessId: 1, StartTime: 4, EndTime: 7},
	}
	return responses.ScheduleResponse{
		Policy:                "priority-preemptive",
		Algorithm:             "Priority (Preemptive)",
		TotalTime:             7,
		ContextSwitches:       2,
		AverageWaitingTime:    1.5,
		AverageTurnAroundTime: 5,
		CpuUtilization:        1,
		CpuThroughput:         2.0 / 7.0,
		Details:               details,
		Gantt:                 gantt,
	}
}

func TestWriteGantt(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, sampleResponse())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	assert.Equal(t, "Gantt Chart:", lines[1])
	assert.Equal(t, "|   P1   |   P2   |   P1   |", lines[3])
	assert.Equal(t, []string{"0", "1", "4", "7"}, strings.Fields(lines[5]))
}

func TestWriteGantt_IdleGap(t *testing.T) {
	response := responses.ScheduleResponse{
		TotalTime: 6,
		Gantt: []responses.GanttEntry{
			{ProcessId: 1, StartTime: 0, EndTime: 2},
			{ProcessId: 2, StartTime: 5, EndTime: 6},
		},
	}
	var buf bytes.Buffer
	WriteGantt(&buf, response)
	output := buf.String()

	assert.Contains(t, output, "|   P1   |  idle  |   P2   |")
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Equal(t, []string{"0", "2", "5", "6"}, strings.Fields(lines[len(lines)-1]))
}

func TestWriteGantt_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, responses.ScheduleResponse{})
	assert.Contains(t, buf.String(), "(empty)")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResponse())
	output := buf.String()

	assert.Contains(t, output, "Process ID")
	assert.Contains(t, output, "Turnaround")
	assert.Contains(t, output, "P1")
	assert.Contains(t, output, "P2")
	assert.Contains(t, output, "1.50")
	assert.Contains(t, output, "5.00")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, sampleResponse())
	output := buf.String()

	assert.Contains(t, output, "Priority (Preemptive)")
	assert.Contains(t, output, "Gantt Chart:")
	assert.Contains(t, output, "Context switches: 2")
	assert.Contains(t, output, "CPU utilization: 100.00%")
}

func TestWriteComparison(t *testing.T) {
	first := sampleResponse()
	second := sampleResponse()
	second.Algorithm = "First Come First Serve (FCFS)"

	var buf bytes.Buffer
	WriteComparison(&buf, []responses.ScheduleResponse{first, second})
	output := buf.String()

	assert.Contains(t, output, "Priority (Preemptive)")
	assert.Contains(t, output, "First Come First Serve (FCFS)")
	assert.Contains(t, output, "100.0%")
}
