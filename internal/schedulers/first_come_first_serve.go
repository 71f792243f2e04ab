package schedulers

import (
	"sort"

	"github.com/its-aleezA/cpu-scheduling-simulator/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes arriving on the same tick keep their input order.
func ScheduleFirstComeFirstServe(proccesses []core.Proccess) (Result, error) {
	jobs, err := privateCopy(proccesses)
	if err != nil {
		return Result{}, err
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	cpu := core.NewCpu(len(jobs))
	currentTime := 0
	for i := range jobs {
		proccess := &jobs[i]
		if currentTime < proccess.ArrivalTime {
			cpu.Idle(proccess.ArrivalTime - currentTime)
			currentTime = proccess.ArrivalTime
		}
		debugLog.Println("pid:", proccess.ProcessId, "dispatched at", currentTime)
		cpu.Dispatch(currentTime, proccess.ProcessId, proccess.BurstTime)
		currentTime += proccess.BurstTime
		proccess.Complete(currentTime)
	}
	return newResult(FCFS, jobs, cpu), nil
}
