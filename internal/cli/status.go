package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sixcities/internal/user"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and session status",
		Long:  "Tests the connection to the server and checks whether the stored session token is still valid.",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	serverURL := getServerURL()
	token := getToken()

	fmt.Printf("Server:  %s\n", serverURL)

	if token == "" {
		fmt.Println("Token:   not stored")
		fmt.Println("\nRun 'six login' to authenticate.")
		return nil
	}

	prefix := token
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	fmt.Printf("Token:   %s…\n", prefix)

	app := newApp()
	app.actions.CheckSession(cmd.Context())

	session := app.store.State().Session
	switch session.Status {
	case user.Auth:
		fmt.Printf("Status:  ✓ logged in as %s\n", session.Profile.Email)
	default:
		fmt.Println("Status:  ✗ session expired or invalid")
		fmt.Println("\nRun 'six login' to re-authenticate.")
	}

	return nil
}
