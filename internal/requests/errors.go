package requests

import (
	"errors"
	"fmt"
)

// ErrNoProcesses is returned when a request carries no jobs at all.
var ErrNoProcesses = errors.New("no processes to schedule")

// InvalidProcessError reports a job attribute that would make the simulation meaningless.
type InvalidProcessError struct {
	ProcessId int
	Field     string
	Value     int
	Reason    string
}

func (e *InvalidProcessError) Error() string {
	return fmt.Sprintf("invalid process P%d: %s=%d %s", e.ProcessId, e.Field, e.Value, e.Reason)
}
