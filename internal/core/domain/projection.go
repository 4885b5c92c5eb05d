package domain

import (
	"sort"
	"strings"
)

type Tab string

const (
	TabAll        Tab = "all"
	TabIncomplete Tab = "incomplete"
	TabCompleted  Tab = "completed"
)

type SortKey string

const (
	SortDueDate  SortKey = "due_date"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
)

// ViewState is the ephemeral display state of the task list.
type ViewState struct {
	Query string
	Sort  SortKey
	Tab   Tab
}

func DefaultViewState() ViewState {
	return ViewState{Sort: SortDueDate, Tab: TabAll}
}

// Project derives the displayable subset of tasks: tab filter, then
// case-insensitive text filter over title and description, then a stable sort
// by the selected key. The input slice is never mutated.
func Project(tasks []Task, view ViewState) []Task {
	out := make([]Task, 0, len(tasks))
	query := strings.ToLower(view.Query)
	for _, task := range tasks {
		if !matchesTab(task, view.Tab) {
			continue
		}
		if query != "" && !matchesQuery(task, query) {
			continue
		}
		out = append(out, task)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], view.Sort)
	})

	return out
}

func matchesTab(task Task, tab Tab) bool {
	switch tab {
	case TabCompleted:
		return task.Status == StatusCompleted
	case TabIncomplete:
		return task.Status == StatusIncomplete
	default:
		return true
	}
}

func matchesQuery(task Task, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(task.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(task.Description), lowerQuery)
}

func less(a, b Task, key SortKey) bool {
	switch key {
	case SortDueDate:
		return a.DueDate.Before(b.DueDate)
	case SortPriority:
		return a.Priority.Rank() < b.Priority.Rank()
	default:
		// Any other key sorts lexicographically; title is the canonical one.
		return a.Title < b.Title
	}
}
