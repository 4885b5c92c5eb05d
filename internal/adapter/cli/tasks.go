package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/edimundos/todo-interface/internal/core/domain"
	"github.com/edimundos/todo-interface/pkg/apierrors"
)

const dueDateLayout = "2006-01-02"

func (c *CLI) listCommand() *cobra.Command {
	var tab, query, sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with optional filtering, searching and sorting",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch domain.Tab(tab) {
			case domain.TabAll, domain.TabIncomplete, domain.TabCompleted:
			default:
				return c.usage(fmt.Errorf("unknown tab %q (use all, incomplete or completed)", tab))
			}

			c.ctrl.SetTab(domain.Tab(tab))
			c.ctrl.SetQuery(query)
			c.ctrl.SetSort(domain.SortKey(sortKey))

			if err := c.ctrl.Refresh(cmd.Context()); err != nil {
				return c.report(err, apierrors.MsgFailListTasks)
			}

			projected := c.ctrl.Projection()
			if len(projected) == 0 {
				if len(c.ctrl.Tasks()) == 0 {
					c.notify(apierrors.MsgNoTasks)
				} else {
					c.notify(apierrors.MsgNoMatches)
				}
				return nil
			}

			renderTasks(c.out, projected, time.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&tab, "tab", string(domain.TabAll), "Status tab: all, incomplete or completed")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive search over title and description")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", string(domain.SortDueDate), "Sort key: due_date, priority or title")

	return cmd
}

func (c *CLI) addCommand() *cobra.Command {
	var (
		title, description string
		due                string
		priority, status   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			task := domain.DefaultNewTask(time.Now())
			task.Title = title
			task.Description = description
			if cmd.Flags().Changed("priority") {
				task.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("status") {
				task.Status = domain.Status(status)
			}
			if cmd.Flags().Changed("due") {
				parsed, err := time.Parse(dueDateLayout, due)
				if err != nil {
					return c.usage(fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", due))
				}
				task.DueDate = parsed
			}

			if err := c.ctrl.CreateTask(cmd.Context(), task); err != nil {
				return c.report(err, apierrors.MsgFailCreateTask)
			}
			c.notify(apierrors.MsgTaskCreated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVar(&due, "due", "", "Due date as YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority: low, medium or high")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusIncomplete), "Status: incomplete or completed")

	return cmd
}

func (c *CLI) editCommand() *cobra.Command {
	var (
		title, description string
		due                string
		priority, status   string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.findTask(cmd, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				task.Title = title
			}
			if cmd.Flags().Changed("description") {
				task.Description = description
			}
			if cmd.Flags().Changed("priority") {
				task.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("status") {
				task.Status = domain.Status(status)
			}
			if cmd.Flags().Changed("due") {
				parsed, parseErr := time.Parse(dueDateLayout, due)
				if parseErr != nil {
					return c.usage(fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", due))
				}
				task.DueDate = parsed
			}

			if err := c.ctrl.UpdateTask(cmd.Context(), task); err != nil {
				return c.report(err, apierrors.MsgFailUpdateTask)
			}
			c.notify(apierrors.MsgTaskUpdated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date as YYYY-MM-DD")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority: low, medium or high")
	cmd.Flags().StringVar(&status, "status", "", "New status: incomplete or completed")

	return cmd
}

func (c *CLI) toggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between incomplete and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.findTask(cmd, args[0])
			if err != nil {
				return err
			}
			if err := c.ctrl.ToggleStatus(cmd.Context(), task); err != nil {
				return c.report(err, apierrors.MsgFailUpdateTask)
			}
			c.notify(apierrors.MsgTaskUpdated)
			return nil
		},
	}
}

func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return c.report(err, apierrors.MsgInvalidTaskID)
			}
			if err := c.ctrl.DeleteTask(cmd.Context(), id); err != nil {
				return c.report(err, apierrors.MsgFailDeleteTask)
			}
			c.notify(apierrors.MsgTaskDeleted)
			return nil
		},
	}
}

// findTask refreshes the collection and looks the id up in it, so edits
// always start from the server's latest copy.
func (c *CLI) findTask(cmd *cobra.Command, rawID string) (domain.Task, error) {
	id, err := parseTaskID(rawID)
	if err != nil {
		return domain.Task{}, c.report(err, apierrors.MsgInvalidTaskID)
	}

	if err := c.ctrl.Refresh(cmd.Context()); err != nil {
		return domain.Task{}, c.report(err, apierrors.MsgFailListTasks)
	}
	for _, task := range c.ctrl.Tasks() {
		if task.ID == id {
			return task, nil
		}
	}
	return domain.Task{}, c.report(fmt.Errorf("task %d not found", id), apierrors.MsgTaskNotFound)
}

func parseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("invalid task id %q", raw)}
	}
	return id, nil
}
