package core

import "github.com/its-aleezA/cpu-scheduling-simulator/internal/requests"

// Proccess is one schedulable unit of work. Identity, arrival, burst and priority
// are fixed at creation; the remaining fields are written by the scheduler.
type Proccess struct {
	ProcessId   int
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value means higher priority

	RemainingTime  int
	CompletionTime int
	TurnAroundTime int
	WaitingTime    int
	IsCompleted    bool
}

func NewProccess(job requests.Job) Proccess {
	return Proccess{
		ProcessId:     job.ProcessId,
		ArrivalTime:   job.ArrivalTime,
		BurstTime:     job.BurstTime,
		Priority:      job.Priority,
		RemainingTime: job.BurstTime,
	}
}

// NewProccesses converts jobs to records in request order.
func NewProccesses(jobs []requests.Job) []Proccess {
	proccesses := make([]Proccess, len(jobs))
	for i, job := range jobs {
		proccesses[i] = NewProccess(job)
	}
	return proccesses
}

// Eligible reports whether the process may take the CPU at tick now.
// Preemptive schedulers additionally require remaining work.
func (p *Proccess) Eligible(now int, preemptive bool) bool {
	if p.IsCompleted || p.ArrivalTime > now {
		return false
	}
	return !preemptive || p.RemainingTime > 0
}

// Complete records the metrics of a process that finished at tick now.
// It has no effect on an already completed process.
func (p *Proccess) Complete(now int) {
	if p.IsCompleted {
		return
	}
	p.RemainingTime = 0
	p.CompletionTime = now
	p.TurnAroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnAroundTime - p.BurstTime
	p.IsCompleted = true
}
