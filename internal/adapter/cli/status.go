package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/edimundos/todo-interface/internal/core/domain"
)

const (
	statusOk   = "ok"
	statusDown = "down"
)

// statusCommand reports what the client can see: whether a session token is
// stored and whether the API currently accepts it.
func (c *CLI) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and API status",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(c.out, "time:     %s\n", time.Now().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(c.out, "language: %s\n", c.lang)

			if !c.ctrl.HasSession() {
				fmt.Fprintln(c.out, "session:  absent")
				fmt.Fprintf(c.out, "api:      %s\n", "unknown (log in to check)")
				return nil
			}
			fmt.Fprintln(c.out, "session:  present")

			apiStatus := statusOk
			if err := c.ctrl.Refresh(cmd.Context()); err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					apiStatus = "unauthorized"
				} else {
					apiStatus = statusDown
				}
			}
			fmt.Fprintf(c.out, "api:      %s\n", apiStatus)
			return nil
		},
	}
}
