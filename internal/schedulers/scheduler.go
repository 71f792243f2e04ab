package schedulers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/its-aleezA/cpu-scheduling-simulator/internal/core"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/requests"
)

// ErrSimulationBound is returned when simulated time passes the latest tick at
// which a valid workload could still be running.
var ErrSimulationBound = errors.New("simulation exceeded time bound")

var debugLog = log.New(io.Discard, "", log.LstdFlags)

// SetVerbose toggles per-tick dispatch logging.
func SetVerbose(verbose bool) {
	if verbose {
		debugLog.SetOutput(log.Writer())
		return
	}
	debugLog.SetOutput(io.Discard)
}

// Result is what a policy produces: the finished records in scheduling order
// and the merged execution timeline.
type Result struct {
	Policy            Policy
	Proccesses        []core.Proccess
	Timeline          []core.Interval
	MaxCompletionTime int
	Metric            core.CpuMetric
}

// selectionKey is the value a policy minimizes when picking the next process.
type selectionKey func(p *core.Proccess) int

func byBurstTime(p *core.Proccess) int     { return p.BurstTime }
func byRemainingTime(p *core.Proccess) int { return p.RemainingTime }
func byPriority(p *core.Proccess) int      { return p.Priority }

// pickEligible returns the index of the eligible process with the smallest key
// or -1 when nothing can run at tick now. Equal keys resolve to the lowest index.
func pickEligible(proccesses []core.Proccess, now int, preemptive bool, key selectionKey) int {
	idx := -1
	for i := range proccesses {
		p := &proccesses[i]
		if !p.Eligible(now, preemptive) {
			continue
		}
		if idx == -1 || key(p) < key(&proccesses[idx]) {
			idx = i
		}
	}
	return idx
}

// timeBound is the latest completion time any valid workload can reach: the CPU
// may sit idle until the last arrival, then has at most every burst left to run.
func timeBound(proccesses []core.Proccess) int {
	maxArrival, totalBurst := 0, 0
	for _, p := range proccesses {
		if p.ArrivalTime > maxArrival {
			maxArrival = p.ArrivalTime
		}
		totalBurst += p.BurstTime
	}
	return maxArrival + totalBurst
}

func checkBound(now, bound int) error {
	if now > bound {
		return fmt.Errorf("%w: t=%d, bound=%d", ErrSimulationBound, now, bound)
	}
	return nil
}

// privateCopy validates the records and gives a policy its own copy so one run
// never leaks into another.
func privateCopy(proccesses []core.Proccess) ([]core.Proccess, error) {
	if err := validate(proccesses); err != nil {
		return nil, err
	}
	cp := make([]core.Proccess, len(proccesses))
	copy(cp, proccesses)
	for i := range cp {
		cp[i].RemainingTime = cp[i].BurstTime
		cp[i].CompletionTime, cp[i].TurnAroundTime, cp[i].WaitingTime = 0, 0, 0
		cp[i].IsCompleted = false
	}
	return cp, nil
}

// validate rejects records that would make the simulation meaningless.
func validate(proccesses []core.Proccess) error {
	if len(proccesses) == 0 {
		return requests.ErrNoProcesses
	}
	seen := make(map[int]bool, len(proccesses))
	for _, p := range proccesses {
		switch {
		case p.ProcessId <= 0:
			return &requests.InvalidProcessError{ProcessId: p.ProcessId, Field: "process_id", Value: p.ProcessId, Reason: "must be positive"}
		case seen[p.ProcessId]:
			return &requests.InvalidProcessError{ProcessId: p.ProcessId, Field: "process_id", Value: p.ProcessId, Reason: "must be unique"}
		case p.ArrivalTime < 0:
			return &requests.InvalidProcessError{ProcessId: p.ProcessId, Field: "arrival_time", Value: p.ArrivalTime, Reason: "must not be negative"}
		case p.BurstTime <= 0:
			return &requests.InvalidProcessError{ProcessId: p.ProcessId, Field: "burst_time", Value: p.BurstTime, Reason: "must be greater than 0"}
		}
		seen[p.ProcessId] = true
	}
	return nil
}

// runNonPreemptive repeatedly hands the free CPU to the eligible process with
// the smallest key and lets it finish.
func runNonPreemptive(policy Policy, proccesses []core.Proccess, key selectionKey) (Result, error) {
	cpu := core.NewCpu(len(proccesses))
	bound := timeBound(proccesses)
	now, completed := 0, 0
	for completed < len(proccesses) {
		if err := checkBound(now, bound); err != nil {
			return Result{}, err
		}
		idx := pickEligible(proccesses, now, false, key)
		if idx == -1 {
			cpu.Idle(1)
			now++
			continue
		}
		proccess := &proccesses[idx]
		debugLog.Println("pid:", proccess.ProcessId, "dispatched at", now)
		cpu.Dispatch(now, proccess.ProcessId, proccess.BurstTime)
		now += proccess.BurstTime
		proccess.Complete(now)
		completed++
		debugLog.Println("pid:", proccess.ProcessId, "completed at", now)
	}
	return newResult(policy, proccesses, cpu), nil
}

// runPreemptive re-evaluates ownership of the CPU every tick.
func runPreemptive(policy Policy, proccesses []core.Proccess, key selectionKey) (Result, error) {
	cpu := core.NewCpu(len(proccesses))
	bound := timeBound(proccesses)
	now, completed := 0, 0
	for completed < len(proccesses) {
		if err := checkBound(now, bound); err != nil {
			return Result{}, err
		}
		idx := pickEligible(proccesses, now, true, key)
		if idx == -1 {
			cpu.Idle(1)
			now++
			continue
		}
		proccess := &proccesses[idx]
		if cpu.Tick(now, proccess.ProcessId) {
			debugLog.Println("pid:", proccess.ProcessId, "context switch at", now)
		}
		proccess.RemainingTime--
		now++
		if proccess.RemainingTime == 0 {
			proccess.Complete(now)
			completed++
			debugLog.Println("pid:", proccess.ProcessId, "completed at", now)
		}
	}
	return newResult(policy, proccesses, cpu), nil
}

func newResult(policy Policy, proccesses []core.Proccess, cpu *core.Cpu) Result {
	result := Result{
		Policy:     policy,
		Proccesses: proccesses,
		Timeline:   cpu.Timeline,
		Metric:     cpu.Metric,
	}
	for _, p := range proccesses {
		if p.CompletionTime > result.MaxCompletionTime {
			result.MaxCompletionTime = p.CompletionTime
		}
	}
	return result
}
