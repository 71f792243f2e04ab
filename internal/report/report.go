// Package report renders schedule responses as text: a process table and a Gantt chart.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/its-aleezA/cpu-scheduling-simulator/internal/responses"
)

const cellWidth = 9

// WriteTitle prints the algorithm name framed by rules.
func WriteTitle(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if title == "" {
		title = response.Policy
	}
	rule := strings.Repeat("=", len(title)+4)
	fmt.Fprintf(w, "\n%s\n  %s\n%s\n", rule, title, rule)
}

// WriteTable prints one row per process followed by an averages footer.
func WriteTable(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintln(w, "\nProcess Execution Table:")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Process ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})
	for _, p := range response.Details {
		table.Append([]string{
			"P" + strconv.Itoa(p.ProcessId),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.TurnAroundTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
		fmt.Sprintf("%.2f", response.AverageResponseTime),
	})
	table.Render()
}

// WriteSummary prints the CPU level metrics.
func WriteSummary(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintf(w, "\nTotal time: %d  Idle: %d  Context switches: %d\n",
		response.TotalTime, response.IdleTime, response.ContextSwitches)
	fmt.Fprintf(w, "CPU utilization: %.2f%%  Throughput: %.3f processes/tick\n",
		response.CpuUtilization*100, response.CpuThroughput)
}

// WriteGantt draws one box per execution interval. Idle stretches between
// intervals get their own box so boundaries always line up with the ticks.
func WriteGantt(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintln(w, "\nGantt Chart:")
	if len(response.Gantt) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}

	labels := make([]string, 0, len(response.Gantt))
	boundaries := []int{response.Gantt[0].StartTime}
	end := response.Gantt[0].StartTime
	for _, entry := range response.Gantt {
		if entry.StartTime > end {
			labels = append(labels, "idle")
			boundaries = append(boundaries, entry.StartTime)
		}
		labels = append(labels, "P"+strconv.Itoa(entry.ProcessId))
		boundaries = append(boundaries, entry.EndTime)
		end = entry.EndTime
	}
	if response.TotalTime > end {
		labels = append(labels, "idle")
		boundaries = append(boundaries, response.TotalTime)
	}

	var sb strings.Builder
	rule := " " + strings.Repeat("-", len(labels)*cellWidth) + "\n"
	sb.WriteString(rule)
	sb.WriteString("|")
	for _, label := range labels {
		sb.WriteString(center(label, cellWidth-1))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	sb.WriteString(rule)
	for _, boundary := range boundaries {
		sb.WriteString(fmt.Sprintf("%-*d", cellWidth, boundary))
	}
	sb.WriteString("\n")
	fmt.Fprint(w, sb.String())
}

// WriteComparison prints one summary row per policy.
func WriteComparison(w io.Writer, all []responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Policy", "Avg Waiting", "Avg Turnaround", "Avg Response", "Total Time", "Switches", "Utilization"})
	for _, response := range all {
		table.Append([]string{
			response.Algorithm,
			fmt.Sprintf("%.2f", response.AverageWaitingTime),
			fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", response.AverageResponseTime),
			strconv.Itoa(response.TotalTime),
			strconv.Itoa(response.ContextSwitches),
			fmt.Sprintf("%.1f%%", response.CpuUtilization*100),
		})
	}
	table.Render()
}

// Write renders the full report for one response.
func Write(w io.Writer, response responses.ScheduleResponse) {
	WriteTitle(w, response)
	WriteTable(w, response)
	WriteGantt(w, response)
	WriteSummary(w, response)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
