package processing

import (
	"log/slog"

	"github.com/systemstart/stylekit/pkg/steps"
)

// Observer is notified every time a task changes state.
type Observer func(index int, state TaskState)

// Run executes steps strictly in order. A skipped step is never run. The
// first failure aborts the pipeline and leaves every later task pending;
// nothing that already ran is undone.
func Run(list []steps.Step, ctx steps.StepContext, observe Observer) *Result {
	result := &Result{
		Tasks:       make([]TaskState, len(list)),
		FailedIndex: -1,
	}
	for i, s := range list {
		result.Tasks[i] = TaskState{Title: s.Name(), Status: StatusPending}
	}

	for i, s := range list {
		if !runTask(i, s, ctx, result, observe) {
			return result
		}
	}

	slog.Info("pipeline completed", "tasks", len(list))
	return result
}

func runTask(i int, s steps.Step, ctx steps.StepContext, result *Result, observe Observer) bool {
	state := &result.Tasks[i]

	if reason, skip := s.Skip(ctx); skip {
		state.Status = StatusSkipped
		state.SkipReason = reason
		slog.Info("task skipped", "index", i, "task", state.Title, "reason", reason)
		notify(observe, i, *state)
		return true
	}

	slog.Info("running task", "index", i, "task", state.Title)

	if err := s.Run(ctx); err != nil {
		state.Status = StatusFailed
		state.Err = err
		result.FailedIndex = i
		result.Err = err
		slog.Error("task failed", "index", i, "task", state.Title, "error", err)
		notify(observe, i, *state)
		return false
	}

	state.Status = StatusSucceeded
	slog.Debug("task succeeded", "index", i, "task", state.Title)
	notify(observe, i, *state)
	return true
}

func notify(observe Observer, i int, state TaskState) {
	if observe != nil {
		observe(i, state)
	}
}

