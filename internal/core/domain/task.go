package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the sort rank of a priority, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
)

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusIncomplete
	}
	return StatusCompleted
}

// Task is one remote task. The ID is assigned by the API; the client never
// fabricates one.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
	Status      Status
}

// WithStatusToggled returns a copy of the task with its status flipped. The
// receiver is left untouched.
func (t Task) WithStatusToggled() Task {
	t.Status = t.Status.Toggled()
	return t
}

// Overdue reports whether the task's due date has passed. Completed tasks are
// never overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

// NewTask carries the fields of a task that does not exist remotely yet.
type NewTask struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
	Status      Status
}

// DefaultNewTask mirrors the defaults of the create form: due today, medium
// priority, incomplete.
func DefaultNewTask(now time.Time) NewTask {
	return NewTask{
		DueDate:  now,
		Priority: PriorityMedium,
		Status:   StatusIncomplete,
	}
}
