package schedulers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/its-aleezA/cpu-scheduling-simulator/internal/core"
)

var ErrUnknownPolicy = errors.New("unknown scheduling policy")

// Policy selects one of the supported scheduling algorithms. The numeric values
// match the order the algorithms are offered in.
type Policy int

const (
	FCFS Policy = iota + 1
	SJFNonPreemptive
	SJFPreemptive
	PriorityNonPreemptive
	PriorityPreemptive
)

var policyNames = map[Policy]string{
	FCFS:                  "fcfs",
	SJFNonPreemptive:      "sjf",
	SJFPreemptive:         "srtf",
	PriorityNonPreemptive: "priority",
	PriorityPreemptive:    "priority-preemptive",
}

var policyTitles = map[Policy]string{
	FCFS:                  "First Come First Serve (FCFS)",
	SJFNonPreemptive:      "Shortest Job First (Non-Preemptive)",
	SJFPreemptive:         "Shortest Job First (Preemptive)",
	PriorityNonPreemptive: "Priority (Non-Preemptive)",
	PriorityPreemptive:    "Priority (Preemptive)",
}

var policyAliases = map[string]Policy{
	"fcfs":                    FCFS,
	"first-come-first-serve":  FCFS,
	"sjf":                     SJFNonPreemptive,
	"sjf-non-preemptive":      SJFNonPreemptive,
	"srtf":                    SJFPreemptive,
	"sjf-preemptive":          SJFPreemptive,
	"priority":                PriorityNonPreemptive,
	"priority-non-preemptive": PriorityNonPreemptive,
	"priority-preemptive":     PriorityPreemptive,
}

// Policies lists every policy in menu order.
func Policies() []Policy {
	return []Policy{FCFS, SJFNonPreemptive, SJFPreemptive, PriorityNonPreemptive, PriorityPreemptive}
}

// ParsePolicy accepts a policy name, one of its aliases or its menu number.
func ParsePolicy(value string) (Policy, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.ReplaceAll(key, "_", "-")
	if policy, ok := policyAliases[key]; ok {
		return policy, nil
	}
	if n, err := strconv.Atoi(key); err == nil && Policy(n).Valid() {
		return Policy(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
}

func (p Policy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// Title is the human readable algorithm name.
func (p Policy) Title() string {
	return policyTitles[p]
}

// UsesPriority reports whether process priorities influence the policy.
func (p Policy) UsesPriority() bool {
	return p == PriorityNonPreemptive || p == PriorityPreemptive
}

func (p Policy) Preemptive() bool {
	return p == SJFPreemptive || p == PriorityPreemptive
}

// Run dispatches to the scheduling function of the policy.
func Run(policy Policy, proccesses []core.Proccess) (Result, error) {
	switch policy {
	case FCFS:
		return ScheduleFirstComeFirstServe(proccesses)
	case SJFNonPreemptive:
		return ScheduleShortestJobFirst(proccesses)
	case SJFPreemptive:
		return ScheduleShortestRemainingTimeFirst(proccesses)
	case PriorityNonPreemptive:
		return SchedulePriority(proccesses)
	case PriorityPreemptive:
		return SchedulePreemptivePriority(proccesses)
	}
	return Result{}, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
}
