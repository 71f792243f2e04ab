package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-aleezA/cpu-scheduling-simulator/internal/requests"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/responses"
)

func execute(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeWorkload(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCmd_Report(t *testing.T) {
	path := writeWorkload(t, "workload.csv", "1,4,0,2\n2,3,1,1\n")

	output, err := execute(t, "run", "-p", "priority-preemptive", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Priority (Preemptive)")
	assert.Contains(t, output, "|   P1   |   P2   |   P1   |")
}

func TestRunCmd_JSON(t *testing.T) {
	path := writeWorkload(t, "workload.yaml", "jobs:\n  - arrival_time: 0\n    burst_time: 5\n  - arrival_time: 1\n    burst_time: 3\n")

	output, err := execute(t, "run", "-p", "1", "-f", path, "--json")
	require.NoError(t, err)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &response))
	assert.Equal(t, "fcfs", response.Policy)
	assert.Equal(t, 8, response.TotalTime)
	require.Len(t, response.Details, 2)
	assert.Equal(t, 4, response.Details[1].WaitingTime)
}

func TestRunCmd_Errors(t *testing.T) {
	_, err := execute(t, "run", "-p", "lottery", "-n", "3", "--json=false")
	assert.Error(t, err)

	path := writeWorkload(t, "bad.csv", "1,0,0\n")
	_, err = execute(t, "run", "-p", "fcfs", "-n", "0", "-f", path)
	var invalid *requests.InvalidProcessError
	assert.ErrorAs(t, err, &invalid)
}

func TestCompareCmd(t *testing.T) {
	output, err := execute(t, "compare", "-n", "5", "--seed", "11")
	require.NoError(t, err)
	assert.Contains(t, output, "First Come First Serve (FCFS)")
	assert.Contains(t, output, "Priority (Preemptive)")
}

func TestGenerateCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated.yaml")
	_, err := execute(t, "generate", "-n", "4", "--seed", "3", "--max-burst", "6", "--priority", "-o", out)
	require.NoError(t, err)

	request, err := requests.LoadFile(out)
	require.NoError(t, err)
	require.Len(t, request.Jobs, 4)
	for i, job := range request.Jobs {
		assert.Equal(t, i, job.ArrivalTime)
		assert.LessOrEqual(t, job.BurstTime, 6)
		assert.GreaterOrEqual(t, job.Priority, 1)
	}
}
