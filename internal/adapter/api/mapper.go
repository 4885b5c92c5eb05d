package api

import (
	"time"

	"go.uber.org/zap"

	"github.com/edimundos/todo-interface/internal/core/domain"
)

// The API stores due dates as ISO-8601 timestamps but some rows carry a bare
// calendar date.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

func mapTaskItemToDomainTask(item taskItem) domain.Task {
	return domain.Task{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		DueDate:     parseDueDate(item.DueDate),
		Priority:    domain.Priority(item.Priority),
		Status:      domain.Status(item.Status),
	}
}

func mapTaskItemsToDomainTasks(items []taskItem) []domain.Task {
	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, mapTaskItemToDomainTask(item))
	}
	return tasks
}

func toTaskItem(task domain.Task) taskItem {
	return taskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate.UTC().Format(time.RFC3339),
		Priority:    string(task.Priority),
		Status:      string(task.Status),
	}
}

func toNewTaskPayload(task domain.NewTask) newTaskPayload {
	return newTaskPayload{
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate.UTC().Format(time.RFC3339),
		Priority:    string(task.Priority),
		Status:      string(task.Status),
	}
}

func parseDueDate(value string) time.Time {
	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	zap.L().Warn("unparseable due date", zap.String("due_date", value))
	return time.Time{}
}
