package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewPingCommand creates the ping command.
func NewPingCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ping",
		Short:         "Check that the server is reachable",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.auth.Ping(ctx); err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Message("pong")
			})
		},
	}
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	var userName string

	cmd := &cobra.Command{
		Use:           "register",
		Short:         "Create an account and log in",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				name, password, err := credentials(cmd, userName)
				if err != nil {
					return err
				}
				defer wipe(password)

				if err := app.auth.Register(ctx, name, password); err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Message(fmt.Sprintf("Registered and logged in as %s", name))
			})
		},
	}

	cmd.Flags().StringVarP(&userName, "user", "u", "", "user name (prompted when empty)")
	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var userName string

	cmd := &cobra.Command{
		Use:           "login",
		Short:         "Log in and store the session locally",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				name, password, err := credentials(cmd, userName)
				if err != nil {
					return err
				}
				defer wipe(password)

				if err := app.auth.Login(ctx, name, password); err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Message(fmt.Sprintf("Logged in as %s", name))
			})
		},
	}

	cmd.Flags().StringVarP(&userName, "user", "u", "", "user name (prompted when empty)")
	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logout",
		Short:         "Forget the stored session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.auth.Logout(ctx); err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Message("Logged out")
			})
		},
	}
}

// credentials returns the user name from the flag or a prompt, and the
// password read without echo. Prompts go to stderr so json output stays
// clean.
func credentials(cmd *cobra.Command, userName string) (string, []byte, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		var err error
		userName, err = GetSimpleText(bufio.NewReader(cmd.InOrStdin()), "User name", cmd.ErrOrStderr())
		if err != nil {
			return "", nil, err
		}
	}

	password, err := GetPassword(cmd.ErrOrStderr())
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}
