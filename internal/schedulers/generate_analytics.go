package schedulers

import (
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/core"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/responses"
)

func generateResponse(result Result) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Proccesses))
	firstDispatch := firstDispatchTimes(result.Timeline)
	for _, proccess := range result.Proccesses {
		proccessDetails = append(proccessDetails, generateProcessDetails(proccess, firstDispatch[proccess.ProcessId]))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := calculateAverage(proccessDetails)

	gantt := make([]responses.GanttEntry, 0, len(result.Timeline))
	for _, interval := range result.Timeline {
		gantt = append(gantt, responses.GanttEntry{
			ProcessId: interval.ProcessId,
			StartTime: interval.StartTime,
			EndTime:   interval.EndTime,
		})
	}

	var utilization, throughput float64
	if result.MaxCompletionTime > 0 {
		utilization = float64(result.Metric.UtilizationTime) / float64(result.MaxCompletionTime)
		throughput = float64(len(result.Proccesses)) / float64(result.MaxCompletionTime)
	}
	contextSwitches := countContextSwitches(gantt)

	return responses.ScheduleResponse{
		Policy:                result.Policy.String(),
		Algorithm:             result.Policy.Title(),
		TotalTime:             result.MaxCompletionTime,
		IdleTime:              result.Metric.IdleTime,
		ContextSwitches:       contextSwitches,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Gantt:                 gantt,
	}
}

func generateProcessDetails(proccess core.Proccess, firstDispatch int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      proccess.ProcessId,
		ArrivalTime:    proccess.ArrivalTime,
		BurstTime:      proccess.BurstTime,
		Priority:       proccess.Priority,
		CompletionTime: proccess.CompletionTime,
		ResponseTime:   firstDispatch - proccess.ArrivalTime,
		TurnAroundTime: proccess.TurnAroundTime,
		WaitingTime:    proccess.WaitingTime,
	}
}

func firstDispatchTimes(timeline []core.Interval) map[int]int {
	first := make(map[int]int, len(timeline))
	for _, interval := range timeline {
		if _, ok := first[interval.ProcessId]; !ok {
			first[interval.ProcessId] = interval.StartTime
		}
	}
	return first
}

// calculateAverage returns the mean waiting, response and turnaround times.
func calculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}
	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
	}
	proccessCount := float64(len(proccessDetails))
	return float64(waitingTimeSum) / proccessCount, float64(responseTimeSum) / proccessCount, float64(turnAroundTimeSum) / proccessCount
}

// countContextSwitches counts hand-overs between different processes. A process
// resuming after an idle stretch is not a switch.
func countContextSwitches(gantt []responses.GanttEntry) int {
	switches := 0
	for i := 1; i < len(gantt); i++ {
		if gantt[i].ProcessId != gantt[i-1].ProcessId {
			switches++
		}
	}
	return switches
}
