package cli

import (
	"github.com/spf13/cobra"

	"github.com/edimundos/todo-interface/pkg/apierrors"
)

func (c *CLI) loginCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ctrl.Login(cmd.Context(), username, password); err != nil {
				return c.report(err, apierrors.MsgLoginFailed)
			}
			c.notify(apierrors.MsgLoginSuccess)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")

	return cmd
}

func (c *CLI) registerCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ctrl.Register(cmd.Context(), username, password); err != nil {
				return c.report(err, apierrors.MsgRegisterFailed)
			}
			c.notify(apierrors.MsgRegisterSuccess)

			// Same flow as the registration form: a successful registration
			// logs the new account in right away.
			if err := c.ctrl.Login(cmd.Context(), username, password); err != nil {
				return c.report(err, apierrors.MsgLoginFailed)
			}
			c.notify(apierrors.MsgLoginSuccess)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (minimum 6 characters)")

	return cmd
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ctrl.Logout(); err != nil {
				return c.report(err, apierrors.MsgSessionExpired)
			}
			c.notify(apierrors.MsgLogoutSuccess)
			return nil
		},
	}
}
