package result

import (
	"github.com/google/uuid"
)

// StepResult groups the results produced while a single step was on screen.
type StepResult struct {
	Result

	Results []Item
}

// NewStepResult returns a StepResult for identifier holding items.
func NewStepResult(identifier string, items ...Item) *StepResult {
	step := &StepResult{Result: NewResult(identifier)}
	step.Append(items...)
	return step
}

// Append adds items to the group, skipping nil entries.
func (s *StepResult) Append(items ...Item) {
	for _, item := range items {
		if item == nil {
			continue
		}
		s.Results = append(s.Results, item)
	}
}

// ResultForIdentifier returns the first child whose identifier matches.
func (s *StepResult) ResultForIdentifier(identifier string) (Item, bool) {
	if s == nil {
		return nil, false
	}
	for _, item := range s.Results {
		if item.ResultIdentifier() == identifier {
			return item, true
		}
	}
	return nil, false
}

// FirstResult returns the first child result.
func (s *StepResult) FirstResult() (Item, bool) {
	if s == nil || len(s.Results) == 0 {
		return nil, false
	}
	return s.Results[0], true
}

// TaskResult holds the step results of one run of a task.
type TaskResult struct {
	Result

	RunID   uuid.UUID
	Results []*StepResult
}

// NewTaskResult returns a TaskResult for the task identifier with a fresh run id.
func NewTaskResult(identifier string) *TaskResult {
	return &TaskResult{Result: NewResult(identifier), RunID: uuid.New()}
}

// Append adds step results to the task, skipping nil entries.
func (t *TaskResult) Append(steps ...*StepResult) {
	for _, step := range steps {
		if step == nil {
			continue
		}
		t.Results = append(t.Results, step)
	}
}

// StepResultForIdentifier returns the step result with the given identifier.
func (t *TaskResult) StepResultForIdentifier(identifier string) (*StepResult, bool) {
	if t == nil {
		return nil, false
	}
	for _, step := range t.Results {
		if step.Identifier == identifier {
			return step, true
		}
	}
	return nil, false
}
