package requests

import "math/rand"

// Generate builds n jobs with sequential arrivals (P_i arrives at tick i-1) and
// bursts drawn from [1, maxBurst]. Priorities are drawn from [1, n] only when
// withPriority is set, otherwise they stay 0.
func Generate(n, maxBurst int, withPriority bool, rng *rand.Rand) ScheduleRequests {
	if maxBurst <= 0 {
		maxBurst = 1
	}
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{
			ProcessId:   i + 1,
			ArrivalTime: i,
			BurstTime:   rng.Intn(maxBurst) + 1,
		}
		if withPriority {
			jobs[i].Priority = rng.Intn(n) + 1
		}
	}
	return ScheduleRequests{Jobs: jobs}
}
