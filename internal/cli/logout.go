package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and remove the stored token",
		Args:  cobra.NoArgs,
		RunE:  runLogout,
	}
}

func runLogout(cmd *cobra.Command, args []string) error {
	if getToken() == "" {
		fmt.Println("Not logged in.")
		return nil
	}

	app := newApp()
	if err := app.actions.Logout(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("✓ Logged out.")
	return nil
}
