package requests

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}
type ScheduleRequests struct {
	Policy string `json:"policy,omitempty" yaml:"policy,omitempty"`
	Jobs   []Job  `json:"jobs" yaml:"jobs"`
}

// Normalize assigns ids 1..N in input order when the request carries none,
// then validates every job. The request is modified in place.
func (r *ScheduleRequests) Normalize() error {
	if len(r.Jobs) == 0 {
		return ErrNoProcesses
	}
	unassigned := true
	for _, job := range r.Jobs {
		if job.ProcessId != 0 {
			unassigned = false
			break
		}
	}
	if unassigned {
		for i := range r.Jobs {
			r.Jobs[i].ProcessId = i + 1
		}
	}
	return r.Validate()
}

// Validate checks the attributes the schedulers rely on for termination.
func (r *ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int]bool, len(r.Jobs))
	for _, job := range r.Jobs {
		if job.ProcessId <= 0 {
			return &InvalidProcessError{ProcessId: job.ProcessId, Field: "process_id", Value: job.ProcessId, Reason: "must be positive"}
		}
		if seen[job.ProcessId] {
			return &InvalidProcessError{ProcessId: job.ProcessId, Field: "process_id", Value: job.ProcessId, Reason: "must be unique"}
		}
		seen[job.ProcessId] = true
		if job.ArrivalTime < 0 {
			return &InvalidProcessError{ProcessId: job.ProcessId, Field: "arrival_time", Value: job.ArrivalTime, Reason: "must not be negative"}
		}
		if job.BurstTime <= 0 {
			return &InvalidProcessError{ProcessId: job.ProcessId, Field: "burst_time", Value: job.BurstTime, Reason: "must be greater than 0"}
		}
	}
	return nil
}

// WithoutPriority returns a copy of the request with every priority reset to 0.
func (r ScheduleRequests) WithoutPriority() ScheduleRequests {
	jobs := make([]Job, len(r.Jobs))
	copy(jobs, r.Jobs)
	for i := range jobs {
		jobs[i].Priority = 0
	}
	r.Jobs = jobs
	return r
}
