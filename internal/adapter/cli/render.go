package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/edimundos/todo-interface/internal/core/domain"
)

const descriptionColumnWidth = 40

// renderTasks prints the projected task list as an aligned table. Overdue
// tasks get a marker next to their due date.
func renderTasks(out io.Writer, tasks []domain.Task, now time.Time) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDUE\tPRIORITY\tSTATUS\tDESCRIPTION")
	for _, task := range tasks {
		due := task.DueDate.Format("2006-01-02")
		if task.Overdue(now) {
			due += " !"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Title,
			due,
			task.Priority,
			task.Status,
			truncate(task.Description, descriptionColumnWidth),
		)
	}
	_ = w.Flush()
}

// truncate shortens s to at most max runes, cutting on rune boundaries so
// multi-byte text stays valid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
