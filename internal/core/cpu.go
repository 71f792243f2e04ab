package core

// Interval is a maximal span during which one process held the CPU.
type Interval struct {
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
	ProcessId int `json:"process_id"`
}

type CpuMetric struct {
	UtilizationTime int
	IdleTime        int
}

// Cpu records which process owns the processor over time and folds
// consecutive ticks of the same process into one Interval.
type Cpu struct {
	Timeline []Interval
	Metric   CpuMetric
	lastPid  int
}

func NewCpu(capacity int) *Cpu {
	return &Cpu{Timeline: make([]Interval, 0, capacity)}
}

// Dispatch runs pid uninterrupted for burst ticks starting at now.
func (c *Cpu) Dispatch(now, pid, burst int) {
	c.Timeline = append(c.Timeline, Interval{StartTime: now, EndTime: now + burst, ProcessId: pid})
	c.Metric.UtilizationTime += burst
	c.lastPid = 0
}

// Tick runs pid for the single tick [now, now+1). A new interval opens only when
// pid differs from the process that ran the previous tick.
func (c *Cpu) Tick(now, pid int) (switched bool) {
	if c.lastPid != pid || len(c.Timeline) == 0 {
		c.Timeline = append(c.Timeline, Interval{StartTime: now, EndTime: now + 1, ProcessId: pid})
		c.lastPid = pid
		switched = true
	} else {
		c.Timeline[len(c.Timeline)-1].EndTime = now + 1
	}
	c.Metric.UtilizationTime++
	return switched
}

// Idle accounts ticks without a runnable process. The next Tick always
// opens a fresh interval.
func (c *Cpu) Idle(ticks int) {
	c.Metric.IdleTime += ticks
	c.lastPid = 0
}
