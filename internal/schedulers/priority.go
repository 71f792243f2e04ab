package schedulers

import "github.com/its-aleezA/cpu-scheduling-simulator/internal/core"

// SchedulePriority gives the free CPU to the arrived process with the lowest
// priority value and lets it finish.
func SchedulePriority(proccesses []core.Proccess) (Result, error) {
	jobs, err := privateCopy(proccesses)
	if err != nil {
		return Result{}, err
	}
	return runNonPreemptive(PriorityNonPreemptive, jobs, byPriority)
}

// SchedulePreemptivePriority re-evaluates priorities every tick, so a more
// important arrival takes the CPU immediately.
func SchedulePreemptivePriority(proccesses []core.Proccess) (Result, error) {
	jobs, err := privateCopy(proccesses)
	if err != nil {
		return Result{}, err
	}
	return runPreemptive(PriorityPreemptive, jobs, byPriority)
}
