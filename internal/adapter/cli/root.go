package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/edimundos/todo-interface/internal/app/controller"
	"github.com/edimundos/todo-interface/internal/core/domain"
	"github.com/edimundos/todo-interface/pkg/apierrors"
)

// CLI binds the view-state controller to a cobra command tree. Every
// user-facing message goes through the translator.
type CLI struct {
	ctrl   *controller.Controller
	lang   string
	out    io.Writer
	errOut io.Writer
}

func New(ctrl *controller.Controller, lang string, out, errOut io.Writer) *CLI {
	return &CLI{ctrl: ctrl, lang: lang, out: out, errOut: errOut}
}

// Root builds the command tree.
func (c *CLI) Root(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskmaster",
		Short:         "TaskMaster - manage your tasks from the terminal",
		Long:          `TaskMaster is a command-line client for the TaskMaster task API: log in once, then list, search, sort, create, edit, toggle and delete your tasks.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(c.loginCommand())
	root.AddCommand(c.registerCommand())
	root.AddCommand(c.logoutCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.toggleCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.statusCommand())

	return root
}

// notify prints a translated informational message.
func (c *CLI) notify(msgKey string) {
	fmt.Fprintln(c.out, apierrors.GetTransErrorMsg(msgKey, c.lang))
}

// report translates a failure for the user and passes it up for the exit
// code. Nil stays nil.
func (c *CLI) report(err error, fallbackKey string) error {
	if err == nil {
		return nil
	}
	clientErr := apierrors.Describe(err, fallbackKey, c.lang)
	fmt.Fprintln(c.errOut, clientErr.Message)
	return clientErr
}

// usage surfaces a locally detected input error (bad flag value, malformed
// date) before passing it up. Returning a ClientErr tells main the message
// already reached the user.
func (c *CLI) usage(err error) error {
	clientErr := apierrors.ClientErr{Kind: domain.FailureValidation, Message: err.Error()}
	fmt.Fprintln(c.errOut, clientErr.Message)
	return clientErr
}
