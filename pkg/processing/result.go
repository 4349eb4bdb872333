package processing

// Status is the state of a single task.
type Status int

const (
	StatusPending Status = iota
	StatusSkipped
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSkipped:
		return "skipped"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TaskState records what happened to one task.
type TaskState struct {
	Title      string
	Status     Status
	SkipReason string
	Err        error
}

// Result is the final state of a pipeline run. FailedIndex is -1 when
// the pipeline completed.
type Result struct {
	Tasks       []TaskState
	FailedIndex int
	Err         error
}

// Completed reports whether every task succeeded or was skipped.
func (r *Result) Completed() bool { return r.Err == nil }

// Aborted reports whether a task failed.
func (r *Result) Aborted() bool { return r.Err != nil }
