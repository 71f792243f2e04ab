package schedulers

import "github.com/its-aleezA/cpu-scheduling-simulator/internal/core"

// ScheduleShortestJobFirst gives the free CPU to the arrived process with the
// smallest burst and lets it finish.
func ScheduleShortestJobFirst(proccesses []core.Proccess) (Result, error) {
	jobs, err := privateCopy(proccesses)
	if err != nil {
		return Result{}, err
	}
	return runNonPreemptive(SJFNonPreemptive, jobs, byBurstTime)
}

// ScheduleShortestRemainingTimeFirst is preemptive SJF: every tick the arrived
// process with the least remaining work owns the CPU.
func ScheduleShortestRemainingTimeFirst(proccesses []core.Proccess) (Result, error) {
	jobs, err := privateCopy(proccesses)
	if err != nil {
		return Result{}, err
	}
	return runPreemptive(SJFPreemptive, jobs, byRemainingTime)
}
