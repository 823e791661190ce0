package domain

import "time"

// TaskStatus enumerates Google Tasks item states.
type TaskStatus string

const (
	TaskNeedsAction TaskStatus = "needsAction"
	TaskCompleted   TaskStatus = "completed"
)

// TaskItem is a normalized task from the tasks provider.
type TaskItem struct {
	ID     string
	Title  string
	Notes  string
	Due    *time.Time
	Status TaskStatus
}

// Done reports whether the task has been completed.
func (t TaskItem) Done() bool {
	return t.Status == TaskCompleted
}
